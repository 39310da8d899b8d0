package trail

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/mpapenbr/lapcompare/pkg/config"
	"github.com/mpapenbr/lapcompare/pkg/render/label"
	"github.com/mpapenbr/lapcompare/pkg/render/raster"
)

const (
	distanceLabel = "DISTANCE"
	speedLabel    = "SPEED"
)

// PlotBase draws the static part of the telemetry plot: both axes, the
// distance label below the x axis and the rotated speed label left of the y axis.
// The result has the size of the whole plot (including the label margin).
func PlotBase(layout *config.Layout, ts label.Typesetter) (*image.RGBA, error) {
	w, h := layout.PlotWidth(), layout.PlotHeight()
	m := layout.PlotAxesLabelsMargin
	axisY := float64(h-m) + 0.5
	axisX := float64(m) + 0.5

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetColor(color.White)
	dc.SetLineWidth(1)
	dc.DrawLine(axisX, axisY, float64(w), axisY)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("distance axis: %w", err)
	}
	dc.DrawLine(axisX, 0, axisX, axisY)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("speed axis: %w", err)
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		img = image.NewRGBA(image.Rect(0, 0, w, h))
		raster.Overlay(img, dc.Image(), image.Point{})
	}

	f := label.Font{Weight: label.Regular, Size: layout.PlotLabelFontSize}

	dw := ts.Advance(f, distanceLabel)
	ts.Draw(img, f, distanceLabel,
		(w-m)/2+m-dw/2,
		h-m+layout.PlotLabelMargin,
		color.White)

	sw, lh := ts.Advance(f, speedLabel), ts.LineHeight(f)
	speed := image.NewRGBA(image.Rect(0, 0, sw, lh))
	ts.Draw(speed, f, speedLabel, 0, 0, color.White)
	raster.Overlay(img, raster.Rotate270(speed),
		image.Pt(m-layout.PlotLabelMargin-lh, (h-m)/2-sw/2))

	return img, nil
}
