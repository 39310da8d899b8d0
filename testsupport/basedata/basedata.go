// Package basedata provides deterministic driver records for tests.
package basedata

import (
	"image/color"
	"math"

	"github.com/mpapenbr/lapcompare/pkg/model"
)

const (
	SampleInterval = 100 // ms between two telemetry samples
	sessionStart   = 3_600_000
)

var (
	RedBull = color.RGBA{R: 54, G: 113, B: 198, A: 255}
	Ferrari = color.RGBA{R: 232, G: 0, B: 45, A: 255}
)

// SampleDriver creates a lap around an oval centered at the origin (so raw
// positions include negative values) with n samples. Larger radius values
// result in a larger oval.
func SampleDriver(abbr, team string, teamColor color.RGBA, n, radius int) *model.DriverRecord {
	ret := &model.DriverRecord{
		Meta: model.DriverMeta{
			Abbreviation:  abbr,
			BroadcastName: "DRIVER " + abbr,
			TeamName:      team,
			TeamColor:     teamColor,
		},
		Telemetry: make([]model.TelemetrySample, n),
	}
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		rd := 0.0
		if n > 1 {
			rd = float64(i) / float64(n-1)
		}
		ret.Telemetry[i] = model.TelemetrySample{
			Position: model.Position{
				X: int(math.Round(float64(radius) * math.Cos(angle))),
				Y: int(math.Round(float64(radius) * 1.6 * math.Sin(angle))),
			},
			SessionTime:      int64(sessionStart + i*SampleInterval),
			Speed:            200 + int(math.Round(100*math.Abs(math.Sin(2*angle)))),
			RelativeDistance: rd,
		}
	}
	third := n / 3 * SampleInterval
	ret.Lap = model.LapRecord{
		LapTime:            n * SampleInterval,
		Sector1Time:        third,
		Sector2Time:        third,
		Sector3Time:        n*SampleInterval - 2*third,
		Sector1SessionTime: int64(sessionStart + third),
		Sector2SessionTime: int64(sessionStart + 2*third),
		Sector3SessionTime: int64(sessionStart + n*SampleInterval),
	}
	return ret
}

// SameTeam returns two records sharing one team color with different lengths.
func SameTeam() (a, b *model.DriverRecord) {
	return SampleDriver("VER", "Red Bull Racing", RedBull, 60, 1000),
		SampleDriver("PER", "Red Bull Racing", RedBull, 80, 1100)
}

// DifferentTeams returns two records with distinct team colors.
func DifferentTeams() (a, b *model.DriverRecord) {
	return SampleDriver("VER", "Red Bull Racing", RedBull, 60, 1000),
		SampleDriver("LEC", "Ferrari", Ferrari, 50, 900)
}

// SampleJSON is a record in the format written by the acquisition script.
const SampleJSON = `{
  "driver": {
    "abbreviation": "LEC",
    "broadcastName": "C LECLERC",
    "teamName": "Ferrari",
    "teamColor": "E8002D"
  },
  "lap": {
    "lapTime": 83456,
    "sector1Time": 27123,
    "sector2Time": 30002,
    "sector3Time": 26331,
    "sector1SessionTime": 3627123,
    "sector2SessionTime": 3657125,
    "sector3SessionTime": 3683456
  },
  "telemetry": [
    {"x": -1200, "y": 340, "sessionTime": 3600000, "speed": 281, "relativeDistance": 0.0},
    {"x": -1180, "y": 512, "sessionTime": 3600270, "speed": 285, "relativeDistance": 0.0123},
    {"x": -1150, "y": 690, "sessionTime": 3600540, "speed": 290.0, "relativeDistance": 0.025},
    {"x": -1101, "y": 870, "sessionTime": 3600810, "speed": 293, "relativeDistance": 1}
  ]
}`
