// Package input reads the driver records written by the acquisition script.
package input

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/mpapenbr/lapcompare/pkg/model"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")
)

var (
	driverPath    = jp.MustParseString("$.driver")
	lapPath       = jp.MustParseString("$.lap")
	telemetryPath = jp.MustParseString("$.telemetry")
)

// ReadFile parses and validates the record stored in file.
func ReadFile(file string) (*model.DriverRecord, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ret, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return ret, nil
}

// Parse decodes a record and checks the invariants of model.DriverRecord.
func Parse(data []byte) (*model.DriverRecord, error) {
	obj, err := oj.Parse(data)
	if err != nil {
		return nil, err
	}
	ret := &model.DriverRecord{}
	if ret.Meta, err = parseMeta(driverPath.First(obj)); err != nil {
		return nil, err
	}
	if ret.Lap, err = parseLap(lapPath.First(obj)); err != nil {
		return nil, err
	}
	if ret.Telemetry, err = parseTelemetry(telemetryPath.First(obj)); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func parseMeta(v any) (model.DriverMeta, error) {
	m, err := object(v, "driver")
	if err != nil {
		return model.DriverMeta{}, err
	}
	ret := model.DriverMeta{}
	if ret.Abbreviation, err = m.asString("abbreviation"); err != nil {
		return ret, err
	}
	// optional, the abbreviation is used as fallback
	ret.BroadcastName, err = m.asString("broadcastName")
	if err != nil && !errors.Is(err, ErrMissingField) {
		return ret, err
	}
	if ret.TeamName, err = m.asString("teamName"); err != nil {
		return ret, err
	}
	hex, err := m.asString("teamColor")
	if err != nil {
		return ret, err
	}
	if ret.TeamColor, err = ParseColor(hex); err != nil {
		return ret, err
	}
	return ret, nil
}

func parseLap(v any) (model.LapRecord, error) {
	m, err := object(v, "lap")
	if err != nil {
		return model.LapRecord{}, err
	}
	ret := model.LapRecord{}
	ints := []struct {
		key string
		dst *int
	}{
		{"lapTime", &ret.LapTime},
		{"sector1Time", &ret.Sector1Time},
		{"sector2Time", &ret.Sector2Time},
		{"sector3Time", &ret.Sector3Time},
	}
	for _, f := range ints {
		if *f.dst, err = m.asInt(f.key); err != nil {
			return ret, err
		}
	}
	int64s := []struct {
		key string
		dst *int64
	}{
		{"sector1SessionTime", &ret.Sector1SessionTime},
		{"sector2SessionTime", &ret.Sector2SessionTime},
		{"sector3SessionTime", &ret.Sector3SessionTime},
	}
	for _, f := range int64s {
		if *f.dst, err = m.asInt64(f.key); err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func parseTelemetry(v any) ([]model.TelemetrySample, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: telemetry", ErrMissingField)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: telemetry is not a list", ErrInvalidField)
	}
	ret := make([]model.TelemetrySample, 0, len(list))
	for i, item := range list {
		m, err := object(item, fmt.Sprintf("telemetry[%d]", i))
		if err != nil {
			return nil, err
		}
		s := model.TelemetrySample{}
		if s.X, err = m.asInt("x"); err != nil {
			return nil, err
		}
		if s.Y, err = m.asInt("y"); err != nil {
			return nil, err
		}
		if s.SessionTime, err = m.asInt64("sessionTime"); err != nil {
			return nil, err
		}
		if s.Speed, err = m.asInt("speed"); err != nil {
			return nil, err
		}
		if s.RelativeDistance, err = m.asFloat("relativeDistance"); err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	return ret, nil
}

// ParseColor parses RRGGBB with an optional leading '#' into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: team color %q", ErrInvalidField, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: team color %q", ErrInvalidField, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// node is a json object with its location used in error messages
type node struct {
	path string
	m    map[string]any
}

func object(v any, path string) (node, error) {
	if v == nil {
		return node{}, fmt.Errorf("%w: %s", ErrMissingField, path)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return node{}, fmt.Errorf("%w: %s is not an object", ErrInvalidField, path)
	}
	return node{path: path, m: m}, nil
}

func (n node) get(key string) (any, error) {
	v, ok := n.m[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingField, n.path, key)
	}
	return v, nil
}

func (n node) asString(key string) (string, error) {
	v, err := n.get(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s is not a string", ErrInvalidField, n.path, key)
	}
	return s, nil
}

func (n node) asFloat(key string) (float64, error) {
	v, err := n.get(key)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("%w: %s.%s is not a number", ErrInvalidField, n.path, key)
	}
}

func (n node) asInt64(key string) (int64, error) {
	v, err := n.get(key)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int64:
		return x, nil
	case float64:
		return int64(math.Round(x)), nil
	default:
		return 0, fmt.Errorf("%w: %s.%s is not a number", ErrInvalidField, n.path, key)
	}
}

func (n node) asInt(key string) (int, error) {
	v, err := n.asInt64(key)
	return int(v), err
}
