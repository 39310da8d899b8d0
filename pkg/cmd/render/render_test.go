package render

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/lapcompare/pkg/input"
	"github.com/mpapenbr/lapcompare/pkg/model"
	"github.com/mpapenbr/lapcompare/pkg/output"
	"github.com/mpapenbr/lapcompare/testsupport/basedata"
)

func writeRecord(t *testing.T, dir string, rec *model.DriverRecord) string {
	t.Helper()
	file := filepath.Join(dir, rec.Meta.Abbreviation+".json")
	require.NoError(t, os.WriteFile(file, input.Encode(rec), 0o600))
	return file
}

func TestRenderGIF(t *testing.T) {
	dir := t.TempDir()
	f1 := writeRecord(t, dir, basedata.SampleDriver("VER", "Red Bull Racing", basedata.RedBull, 12, 800))
	f2 := writeRecord(t, dir, basedata.SampleDriver("LEC", "Ferrari", basedata.Ferrari, 9, 700))
	out := filepath.Join(dir, "out.gif")

	cmd := NewRenderCmd()
	cmd.SetArgs([]string{
		"--driver1", f1, "--driver2", f2,
		"--output", out,
		"--tail-frames", "3",
		"--frame-time", "40ms",
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	anim, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, anim.Image, 12+3)
	assert.Equal(t, 4, anim.Delay[0])
}

func TestRenderPNGByDriverCodes(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, basedata.SampleDriver("VER", "Red Bull Racing", basedata.RedBull, 5, 800))
	writeRecord(t, dir, basedata.SampleDriver("PER", "Red Bull Racing", basedata.RedBull, 6, 800))
	out := filepath.Join(dir, "frames")

	cmd := NewRenderCmd()
	cmd.SetArgs([]string{
		"ver", "per",
		"--out-dir", dir,
		"--format", output.FormatPNG,
		"--output", out,
		"--tail-frames", "0",
	})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	valid := writeRecord(t, dir, basedata.SampleDriver("VER", "Red Bull Racing", basedata.RedBull, 5, 800))
	empty := basedata.SampleDriver("NOR", "McLaren", basedata.Ferrari, 5, 800)
	empty.Telemetry = nil
	emptyFile := filepath.Join(dir, "NOR.json")
	require.NoError(t, os.WriteFile(emptyFile, input.Encode(empty), 0o600))
	out := filepath.Join(dir, "never.gif")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no drivers", []string{"--output", out}, ErrNoDrivers},
		{"empty series", []string{"--driver1", valid, "--driver2", emptyFile, "--output", out}, model.ErrEmptySeries},
		{"unknown format", []string{"--driver1", valid, "--driver2", valid, "--format", "avi"}, output.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRenderCmd()
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			cmd.SetArgs(tt.args)
			assert.ErrorIs(t, cmd.Execute(), tt.want)
		})
	}
	// nothing is written when the input is rejected
	assert.NoFileExists(t, out)
}
