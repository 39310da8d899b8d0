package hud

import "fmt"

// FormatLapTime formats milliseconds as M:SS.mmm
func FormatLapTime(ms int) string {
	ms = max(ms, 0)
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

// FormatSectorTime formats milliseconds as SS.mmm
func FormatSectorTime(ms int) string {
	ms = max(ms, 0)
	return fmt.Sprintf("%02d.%03d", ms/1000, ms%1000)
}

func FormatSpeed(kmh int) string {
	return fmt.Sprintf("%d km/h", kmh)
}
