package input

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"

	"github.com/mpapenbr/lapcompare/pkg/model"
)

// Encode writes rec in the record format understood by Parse.
func Encode(rec *model.DriverRecord) []byte {
	c := rec.Meta.TeamColor
	doc := map[string]any{
		"driver": map[string]any{
			"abbreviation":  rec.Meta.Abbreviation,
			"broadcastName": rec.Meta.BroadcastName,
			"teamName":      rec.Meta.TeamName,
			"teamColor":     fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B),
		},
		"lap": map[string]any{
			"lapTime":            rec.Lap.LapTime,
			"sector1Time":        rec.Lap.Sector1Time,
			"sector2Time":        rec.Lap.Sector2Time,
			"sector3Time":        rec.Lap.Sector3Time,
			"sector1SessionTime": rec.Lap.Sector1SessionTime,
			"sector2SessionTime": rec.Lap.Sector2SessionTime,
			"sector3SessionTime": rec.Lap.Sector3SessionTime,
		},
		"telemetry": lo.Map(rec.Telemetry, func(s model.TelemetrySample, _ int) any {
			return map[string]any{
				"x":                s.X,
				"y":                s.Y,
				"sessionTime":      s.SessionTime,
				"speed":            s.Speed,
				"relativeDistance": s.RelativeDistance,
			}
		}),
	}
	return []byte(oj.JSON(doc, &oj.Options{Sort: true}))
}
