package model

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrEmptySeries      = errors.New("telemetry series is empty")
	ErrSessionTimeOrder = errors.New("session time is not strictly increasing")
	ErrSectorOrder      = errors.New("sector timestamps are not strictly increasing")
)

// Position is a point in raw world units. After normalization it is a canvas point
// where X maps to the vertical and Y to the horizontal canvas axis.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type TelemetrySample struct {
	Position
	SessionTime      int64   `json:"sessionTime"` // ms
	Speed            int     `json:"speed"`       // km/h
	RelativeDistance float64 `json:"relativeDistance"`
}

type LapRecord struct {
	LapTime            int   `json:"lapTime"` // ms
	Sector1Time        int   `json:"sector1Time"`
	Sector2Time        int   `json:"sector2Time"`
	Sector3Time        int   `json:"sector3Time"`
	Sector1SessionTime int64 `json:"sector1SessionTime"`
	Sector2SessionTime int64 `json:"sector2SessionTime"`
	Sector3SessionTime int64 `json:"sector3SessionTime"`
}

// SectorTime returns duration and completion timestamp of sector 1..3
func (l LapRecord) SectorTime(sector int) (duration int, completedAt int64) {
	switch sector {
	case 1:
		return l.Sector1Time, l.Sector1SessionTime
	case 2:
		return l.Sector2Time, l.Sector2SessionTime
	case 3:
		return l.Sector3Time, l.Sector3SessionTime
	default:
		panic(fmt.Sprintf("invalid sector %d", sector))
	}
}

type DriverMeta struct {
	Abbreviation  string     `json:"abbreviation"`
	BroadcastName string     `json:"broadcastName"`
	TeamName      string     `json:"teamName"`
	TeamColor     color.RGBA `json:"teamColor"`
}

type DriverRecord struct {
	Meta      DriverMeta        `json:"driver"`
	Lap       LapRecord         `json:"lap"`
	Telemetry []TelemetrySample `json:"telemetry"`
}

func (d *DriverRecord) Len() int {
	return len(d.Telemetry)
}

// Positions returns a copy of the raw positions of the telemetry series
func (d *DriverRecord) Positions() []Position {
	ret := make([]Position, len(d.Telemetry))
	for i := range d.Telemetry {
		ret[i] = d.Telemetry[i].Position
	}
	return ret
}

// Validate checks the invariants every renderer relies on.
func (d *DriverRecord) Validate() error {
	if len(d.Telemetry) == 0 {
		return fmt.Errorf("driver %s: %w", d.Meta.Abbreviation, ErrEmptySeries)
	}
	for i := 1; i < len(d.Telemetry); i++ {
		if d.Telemetry[i].SessionTime <= d.Telemetry[i-1].SessionTime {
			return fmt.Errorf("driver %s sample %d: %w",
				d.Meta.Abbreviation, i, ErrSessionTimeOrder)
		}
	}
	if !(d.Lap.Sector1SessionTime < d.Lap.Sector2SessionTime &&
		d.Lap.Sector2SessionTime < d.Lap.Sector3SessionTime) {
		return fmt.Errorf("driver %s: %w", d.Meta.Abbreviation, ErrSectorOrder)
	}
	return nil
}
