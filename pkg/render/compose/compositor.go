// Package compose builds the scene of both drivers and assembles the frames.
package compose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mpapenbr/lapcompare/log"
	"github.com/mpapenbr/lapcompare/pkg/config"
	"github.com/mpapenbr/lapcompare/pkg/model"
	"github.com/mpapenbr/lapcompare/pkg/render/colors"
	"github.com/mpapenbr/lapcompare/pkg/render/hud"
	"github.com/mpapenbr/lapcompare/pkg/render/label"
	"github.com/mpapenbr/lapcompare/pkg/render/normalize"
	"github.com/mpapenbr/lapcompare/pkg/render/raster"
	"github.com/mpapenbr/lapcompare/pkg/render/trail"
)

type (
	// Compositor owns all renderers of a run. Frames are composed in a fixed order:
	// track map (driver 1, driver 2), plot base, plot traces (driver 1, driver 2), sidebar.
	Compositor struct {
		layout     *config.Layout
		records    [2]*model.DriverRecord
		resolution colors.Resolution
		norm       normalize.Result
		tracks     [2]trail.Renderer
		plots      [2]trail.Renderer
		plotBase   *image.RGBA
		panel      *hud.Panel
		l          *log.Logger
	}
	Option func(*Compositor)
)

func WithLogger(arg *log.Logger) Option {
	return func(c *Compositor) {
		c.l = arg
	}
}

// NewCompositor validates both records and prepares the renderers.
// The records are not modified.
func NewCompositor(
	layout *config.Layout,
	ts label.Typesetter,
	a, b *model.DriverRecord,
	opts ...Option,
) (*Compositor, error) {
	ret := &Compositor{
		layout:  layout,
		records: [2]*model.DriverRecord{a, b},
		panel:   hud.NewPanel(layout, ts),
		l:       log.Default().Named("render.compose"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	for _, r := range ret.records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	posA, posB := a.Positions(), b.Positions()
	norm, err := normalize.Normalize(posA, posB,
		layout.TrackWidth, layout.TrackHeight, layout.Padding)
	if err != nil {
		return nil, fmt.Errorf("normalize track map: %w", err)
	}
	ret.norm = norm

	ret.resolution = colors.Resolve(a.Meta, b.Meta, layout.Background.RGBA())

	trackSize := image.Pt(layout.TrackWidth, layout.TrackHeight)
	scale := trail.NewPlotScale(layout.PlotArea(), a.Telemetry, b.Telemetry)
	for i, pos := range [2][]model.Position{posA, posB} {
		stroke := ret.resolution.Strokes[i]
		ret.tracks[i] = trail.NewTrack(pos, trackSize, stroke, layout.Thickness)
		ret.plots[i] = trail.NewPlot(ret.records[i].Telemetry, scale, stroke)
	}

	if ret.plotBase, err = trail.PlotBase(layout, ts); err != nil {
		return nil, fmt.Errorf("plot base: %w", err)
	}

	ret.l.Info("scene prepared",
		log.Int("samples1", a.Len()),
		log.Int("samples2", b.Len()),
		log.Float("ratio", norm.Ratio),
		log.Any("offset", norm.Offset),
		log.String("stroke1", hexColor(ret.resolution.Strokes[0])),
		log.String("stroke2", hexColor(ret.resolution.Strokes[1])),
		log.Bool("disambiguated", ret.resolution.Disambiguated),
		log.Any("degenerate", ret.resolution.Degenerate),
		log.Int("maxSpeed", scale.MaxSpeed),
	)
	return ret, nil
}

// Resolution returns the colors used for this run
func (c *Compositor) Resolution() colors.Resolution {
	return c.resolution
}

// Normalization returns the transformation applied to the track map positions
func (c *Compositor) Normalization() normalize.Result {
	return c.norm
}

// Lengths returns the number of telemetry samples of both drivers
func (c *Compositor) Lengths() (a, b int) {
	return c.records[0].Len(), c.records[1].Len()
}

// Advance moves all trail renderers to tick
func (c *Compositor) Advance(tick int) {
	for i := range c.records {
		c.tracks[i].Advance(tick)
		c.plots[i].Advance(tick)
	}
}

// Stats computes the sidebar content of both drivers for tick
func (c *Compositor) Stats(tick int) [2]hud.Stats {
	var ret [2]hud.Stats
	for i, r := range c.records {
		ret[i] = hud.Compute(r, c.resolution.Metas[i], tick)
	}
	return ret
}

// Compose creates a new frame from the current state of all renderers.
// The frame is owned by the caller.
func (c *Compositor) Compose(tick int) *image.RGBA {
	l := c.layout
	frame := raster.NewCanvas(l.CanvasWidth(), l.CanvasHeight(), l.Background.RGBA())

	for _, t := range c.tracks {
		raster.Overlay(frame, t.Snapshot(), l.TrackOrigin())
	}
	plotOrigin := l.PlotOrigin()
	raster.Overlay(frame, c.plotBase, plotOrigin)
	traceOrigin := plotOrigin.Add(image.Pt(l.PlotAxesLabelsMargin, 0))
	for _, p := range c.plots {
		raster.Overlay(frame, p.Snapshot(), traceOrigin)
	}
	raster.Overlay(frame, c.panel.Sidebar(c.Stats(tick)), l.HudOrigin())
	return frame
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
