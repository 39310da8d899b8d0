package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout holds the canvas geometry, margins and font sizes.
// It is built once at startup and passed by pointer, it must not be changed afterwards.
//
//nolint:lll // readability
type Layout struct {
	TrackWidth      int `yaml:"trackWidth"`
	TrackHeight     int `yaml:"trackHeight"`
	SidebarWidth    int `yaml:"sidebarWidth"`
	TelemetryHeight int `yaml:"telemetryHeight"`

	Thickness int `yaml:"thickness"` // stroke width of track map trails
	Padding   int `yaml:"padding"`   // reserved margin around track map and telemetry plot

	PaddingLR         int `yaml:"paddingLR"`         // left margin of hud texts
	PaddingTB         int `yaml:"paddingTB"`         // top/bottom margin of the hud blocks
	PaddingTBInner    int `yaml:"paddingTBInner"`    // top margin inside a hud block
	DriverStatsHeight int `yaml:"driverStatsHeight"` // height of one hud block

	PlotAxesLabelsMargin int `yaml:"plotAxesLabelsMargin"` // room for axis labels
	PlotLabelMargin      int `yaml:"plotLabelMargin"`      // gap between axis and label
	DriverTeamMargin     int `yaml:"driverTeamMargin"`     // vertical gap between driver and team name
	NameHeadlineMargin   int `yaml:"nameHeadlineMargin"`   // gap between name block and speed/lap time
	SectorTimesMargin    int `yaml:"sectorTimesMargin"`    // bottom margin of the sector lines

	PlotLabelFontSize float64 `yaml:"plotLabelFontSize"`
	DriverFontSize    float64 `yaml:"driverFontSize"`
	TeamFontSize      float64 `yaml:"teamFontSize"`
	HeadlineFontSize  float64 `yaml:"headlineFontSize"`
	SectorFontSize    float64 `yaml:"sectorFontSize"`

	Background RGB           `yaml:"background"`
	FrameTime  time.Duration `yaml:"frameTime"`
	TailFrames int           `yaml:"tailFrames"` // frames appended after both trails froze
}

// RGB is an opaque color in yaml friendly form
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func DefaultLayout() *Layout {
	thickness := 3
	return &Layout{
		TrackWidth:           512,
		TrackHeight:          512,
		SidebarWidth:         256,
		TelemetryHeight:      256,
		Thickness:            thickness,
		Padding:              thickness * 5,
		PaddingLR:            20,
		PaddingTB:            38,
		PaddingTBInner:       10,
		DriverStatsHeight:    200,
		PlotAxesLabelsMargin: 32,
		PlotLabelMargin:      5,
		DriverTeamMargin:     -5,
		NameHeadlineMargin:   5,
		SectorTimesMargin:    3,
		PlotLabelFontSize:    9,
		DriverFontSize:       20,
		TeamFontSize:         12,
		HeadlineFontSize:     24,
		SectorFontSize:       12,
		Background:           RGB{R: 15, G: 15, B: 15},
		FrameTime:            50 * time.Millisecond,
		TailFrames:           20,
	}
}

// LoadLayout reads yaml overrides from file and applies them onto the defaults.
// An empty path returns the defaults.
func LoadLayout(path string) (*Layout, error) {
	l := DefaultLayout()
	if path == "" {
		return l, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) Validate() error {
	switch {
	case l.TrackWidth <= 2*l.Padding || l.TrackHeight <= 2*l.Padding:
		return fmt.Errorf("%w: track map must be larger than its padding", ErrInvalidLayout)
	case l.PlotWidth() <= l.PlotAxesLabelsMargin || l.PlotHeight() <= l.PlotAxesLabelsMargin:
		return fmt.Errorf("%w: telemetry plot too small for its axes", ErrInvalidLayout)
	case l.SidebarWidth <= 0 || l.TrackHeight < 2*(l.PaddingTB+l.DriverStatsHeight):
		return fmt.Errorf("%w: sidebar cannot hold two stats blocks", ErrInvalidLayout)
	case l.Thickness <= 0:
		return fmt.Errorf("%w: thickness must be positive", ErrInvalidLayout)
	case l.FrameTime < 10*time.Millisecond:
		return fmt.Errorf("%w: frame time below 10ms", ErrInvalidLayout)
	case l.TailFrames < 0:
		return fmt.Errorf("%w: negative tail frames", ErrInvalidLayout)
	}
	return nil
}

func (l *Layout) CanvasWidth() int  { return l.TrackWidth + l.SidebarWidth }
func (l *Layout) CanvasHeight() int { return l.TrackHeight + l.TelemetryHeight }

// PlotWidth is the width of the telemetry plot including the axes label area
func (l *Layout) PlotWidth() int {
	return l.TrackWidth + l.SidebarWidth - 2*l.Padding
}

// PlotHeight is the height of the telemetry plot including the axes label area
func (l *Layout) PlotHeight() int {
	return l.TelemetryHeight - 2*l.Padding
}

// PlotArea is the size of the region the telemetry traces are drawn into
func (l *Layout) PlotArea() image.Point {
	return image.Pt(l.PlotWidth()-l.PlotAxesLabelsMargin, l.PlotHeight()-l.PlotAxesLabelsMargin)
}

func (l *Layout) TrackOrigin() image.Point { return image.Pt(0, 0) }

func (l *Layout) PlotOrigin() image.Point {
	return image.Pt(l.Padding, l.TrackHeight+l.Padding)
}

func (l *Layout) HudOrigin() image.Point { return image.Pt(l.TrackWidth, 0) }
