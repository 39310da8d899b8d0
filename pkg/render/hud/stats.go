// Package hud computes and draws the per driver stats blocks of the sidebar.
package hud

import (
	"fmt"
	"image/color"

	"github.com/mpapenbr/lapcompare/pkg/model"
)

const sectors = 3

// Stats is the content of one stats block at a given tick.
type Stats struct {
	Name      string
	Team      string
	NameColor color.RGBA
	// Headline shows the live speed until the driver finished, the lap time afterwards
	Headline string
	Finished bool
	// Sectors holds the formatted sector lines, empty while not yet revealed
	Sectors [sectors]string
}

// Compute derives the stats of rec at tick. meta is the resolved driver meta
// which may carry a different team color than rec.Meta.
// The result only depends on tick, a finished driver stays finished for all later ticks.
func Compute(rec *model.DriverRecord, meta model.DriverMeta, tick int) Stats {
	tick = max(tick, 0)
	s := Stats{
		Name:      displayName(meta),
		Team:      meta.TeamName,
		NameColor: meta.TeamColor,
		Finished:  tick >= rec.Len(),
	}
	var sessionTime int64
	if s.Finished {
		s.Headline = FormatLapTime(rec.Lap.LapTime)
	} else {
		sample := rec.Telemetry[tick]
		sessionTime = sample.SessionTime
		s.Headline = FormatSpeed(sample.Speed)
	}
	for i := range sectors {
		duration, completedAt := rec.Lap.SectorTime(i + 1)
		if s.Finished || sessionTime >= completedAt {
			s.Sectors[i] = fmt.Sprintf("Sector %d: %s", i+1, FormatSectorTime(duration))
		}
	}
	return s
}

func displayName(meta model.DriverMeta) string {
	if meta.BroadcastName != "" {
		return meta.BroadcastName
	}
	return meta.Abbreviation
}
