package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/lapcompare/pkg/config"
)

func TestNewLogger(t *testing.T) {
	defer func(level, format, filter string) {
		config.LogLevel, config.LogFormat, config.LogFilter = level, format, filter
	}(config.LogLevel, config.LogFormat, config.LogFilter)

	var buf bytes.Buffer
	config.LogLevel = "warn"
	config.LogFormat = "json"
	config.LogFilter = ""
	l, err := NewLogger(&buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	config.LogFilter = "chatty:*"
	_, err = NewLogger(&buf)
	assert.Error(t, err)
}

func TestFetchParams(t *testing.T) {
	config.Python = "python3"
	config.FetchScript = "fetch.py"
	config.Year = 2024
	config.Event = "Monza"
	config.Session = "R"
	config.DataDir = "out"
	p := FetchParams("HAM", "RUS")
	require.NoError(t, p.Validate())
	assert.Equal(t,
		[]string{"fetch.py", "2024", "Monza", "R", "HAM", "RUS", "out"},
		p.Args())
}
