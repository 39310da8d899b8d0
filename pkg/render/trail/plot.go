package trail

import (
	"image"
	"image/color"

	"github.com/samber/lo"

	"github.com/mpapenbr/lapcompare/pkg/model"
	"github.com/mpapenbr/lapcompare/pkg/render/raster"
)

// PlotScale maps telemetry samples into the plot area. It is shared by both
// drivers so the speed axis is identical for them.
type PlotScale struct {
	Width    int
	Height   int
	MaxSpeed int
}

func NewPlotScale(area image.Point, series ...[]model.TelemetrySample) PlotScale {
	maxSpeed := 0
	for _, s := range series {
		if len(s) == 0 {
			continue
		}
		maxSpeed = max(maxSpeed, lo.MaxBy(s, func(a, b model.TelemetrySample) bool {
			return a.Speed > b.Speed
		}).Speed)
	}
	return PlotScale{Width: area.X, Height: area.Y, MaxSpeed: maxSpeed}
}

// Point returns the plot position of a sample: x follows the lap distance,
// higher speeds are drawn nearer to the top.
func (s PlotScale) Point(t model.TelemetrySample) image.Point {
	x := int(float64(s.Width) * t.RelativeDistance)
	if s.MaxSpeed <= 0 {
		return image.Pt(x, s.Height)
	}
	y := s.Height - int(float64(s.Height)*(float64(t.Speed)/float64(s.MaxSpeed)))
	return image.Pt(x, y)
}

// Plot draws the speed over distance trace of one driver.
type Plot struct {
	samples []model.TelemetrySample
	scale   PlotScale
	color   color.NRGBA
	buf     *image.NRGBA
	prev    *image.Point
}

var _ Renderer = (*Plot)(nil)

func NewPlot(samples []model.TelemetrySample, scale PlotScale, c color.NRGBA) *Plot {
	return &Plot{
		samples: samples,
		scale:   scale,
		color:   c,
		buf:     raster.NewLayer(scale.Width, scale.Height),
	}
}

func (p *Plot) Advance(tick int) {
	if tick < 0 || tick >= len(p.samples) {
		return
	}
	cur := p.scale.Point(p.samples[tick])
	if p.prev != nil {
		raster.Line(p.buf, *p.prev, cur, p.color)
	}
	p.prev = &cur
}

func (p *Plot) Snapshot() *image.NRGBA {
	return p.buf
}
