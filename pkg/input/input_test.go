//nolint:funlen // ok for tests
package input

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/lapcompare/pkg/model"
	"github.com/mpapenbr/lapcompare/testsupport/basedata"
)

func TestParse(t *testing.T) {
	got, err := Parse([]byte(basedata.SampleJSON))
	require.NoError(t, err)

	wantMeta := model.DriverMeta{
		Abbreviation:  "LEC",
		BroadcastName: "C LECLERC",
		TeamName:      "Ferrari",
		TeamColor:     color.RGBA{R: 0xe8, G: 0x00, B: 0x2d, A: 0xff},
	}
	if diff := cmp.Diff(wantMeta, got.Meta); diff != "" {
		t.Errorf("Meta mismatch (-want +got):\n%s", diff)
	}
	wantLap := model.LapRecord{
		LapTime:            83456,
		Sector1Time:        27123,
		Sector2Time:        30002,
		Sector3Time:        26331,
		Sector1SessionTime: 3627123,
		Sector2SessionTime: 3657125,
		Sector3SessionTime: 3683456,
	}
	if diff := cmp.Diff(wantLap, got.Lap); diff != "" {
		t.Errorf("Lap mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 4, got.Len())
	assert.Equal(t, model.TelemetrySample{
		Position:         model.Position{X: -1150, Y: 690},
		SessionTime:      3600540,
		Speed:            290,
		RelativeDistance: 0.025,
	}, got.Telemetry[2])
	assert.InDelta(t, 1.0, got.Telemetry[3].RelativeDistance, 1e-9)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		want    error
	}{
		{"missing abbreviation", [2]string{`"abbreviation": "LEC",`, ``}, ErrMissingField},
		{"missing lap time", [2]string{`"lapTime": 83456,`, ``}, ErrMissingField},
		{"speed as string", [2]string{`"speed": 281`, `"speed": "281"`}, ErrInvalidField},
		{"bad color", [2]string{`"E8002D"`, `"red"`}, ErrInvalidField},
		{"broadcast name as number", [2]string{`"broadcastName": "C LECLERC"`, `"broadcastName": 16`}, ErrInvalidField},
		{"empty telemetry", [2]string{`"telemetry": [`, `"telemetry": [], "x": [`}, model.ErrEmptySeries},
		{"session time order", [2]string{`"sessionTime": 3600270`, `"sessionTime": 3600000`}, model.ErrSessionTimeOrder},
		{"sector order", [2]string{`"sector2SessionTime": 3657125`, `"sector2SessionTime": 3600000`}, model.ErrSectorOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(basedata.SampleJSON, tt.replace[0], tt.replace[1], 1)
			require.NotEqual(t, basedata.SampleJSON, data)
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseWithoutBroadcastName(t *testing.T) {
	data := strings.Replace(basedata.SampleJSON, `"broadcastName": "C LECLERC",`, ``, 1)
	require.NotEqual(t, basedata.SampleJSON, data)
	got, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, got.Meta.BroadcastName)
	assert.Equal(t, "LEC", got.Meta.Abbreviation)
}

func TestParseMissingSections(t *testing.T) {
	_, err := Parse([]byte(`{"driver": {"abbreviation": "X", "teamName": "T", "teamColor": "000000"}}`))
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = Parse([]byte(`{"driver": 1}`))
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = Parse([]byte(`{"driver": `))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"3671C6", color.RGBA{R: 0x36, G: 0x71, B: 0xc6, A: 0xff}, false},
		{"#ffffff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"000000", color.RGBA{A: 0xff}, false},
		{"fff", color.RGBA{}, true},
		{"zz0000", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "LEC.json")
	require.NoError(t, os.WriteFile(file, []byte(basedata.SampleJSON), 0o600))
	got, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "LEC", got.Meta.Abbreviation)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode(t *testing.T) {
	rec, _ := basedata.DifferentTeams()
	got, err := Parse(Encode(rec))
	require.NoError(t, err)
	if diff := cmp.Diff(rec, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Parse(Encode()) mismatch (-want +got):\n%s", diff)
	}
}
