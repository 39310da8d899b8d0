package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel).Named("render")
	l.Debug("hidden")
	l.Info("frame", Int("tick", 3), String("driver", "VER"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"logger":"render"`)
	assert.Contains(t, out, `"tick":3`)
	assert.Contains(t, out, `"driver":"VER"`)
}

func TestWithFilter(t *testing.T) {
	var buf bytes.Buffer
	base := DevLogger(&buf, DebugLevel)
	l, err := base.WithFilter("*:render.compose")
	require.NoError(t, err)

	l.Named("render.trail").Debug("segment")
	l.Named("render.compose").Debug("frame")

	out := buf.String()
	assert.NotContains(t, out, "segment")
	assert.Contains(t, out, "frame")
}

func TestWithFilterInvalidRules(t *testing.T) {
	_, err := DevLogger(&bytes.Buffer{}, DebugLevel).WithFilter("chatty:*")
	assert.Error(t, err)
}

func TestContextCarrier(t *testing.T) {
	l := DevLogger(&bytes.Buffer{}, DebugLevel).Named("ctx")
	ctx := AddToContext(context.Background(), l)
	assert.Same(t, l, GetFromContext(ctx))
	assert.Same(t, Default(), GetFromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
