package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/lapcompare/pkg/config"
)

func TestLayoutCmd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "layout.yml")
	require.NoError(t, os.WriteFile(file, []byte("thickness: 5\n"), 0o600))

	var out bytes.Buffer
	cmd := NewLayoutCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--layout", file})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "frameTime: 50ms")
	got := config.DefaultLayout()
	require.NoError(t, yaml.Unmarshal(out.Bytes(), got))
	want := config.DefaultLayout()
	want.Thickness = 5
	assert.Equal(t, want, got)
}
