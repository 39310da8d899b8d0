// Package normalize maps raw trajectories of two drivers into canvas space.
//
// Sample X maps to the vertical canvas axis and sample Y to the horizontal one,
// hence X is checked against the target height and Y against the target width.
package normalize

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/mpapenbr/lapcompare/pkg/model"
)

var ErrInvalidTarget = errors.New("target dimensions must be positive")

type Extrema struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Result describes the transformation applied by Normalize
type Result struct {
	Shift  model.Position // applied to get rid of negative values
	Ratio  float64        // divisor used for downscaling, 1 if no scaling was needed
	Offset model.Position // applied for centering
}

// FindExtrema computes the combined bounding box of both series.
func FindExtrema(a, b []model.Position) (Extrema, error) {
	if len(a) == 0 || len(b) == 0 {
		return Extrema{}, model.ErrEmptySeries
	}
	all := append(append(make([]model.Position, 0, len(a)+len(b)), a...), b...)
	xs := lo.Map(all, func(p model.Position, _ int) int { return p.X })
	ys := lo.Map(all, func(p model.Position, _ int) int { return p.Y })
	return Extrema{
		MinX: lo.Min(xs), MaxX: lo.Max(xs),
		MinY: lo.Min(ys), MaxY: lo.Max(ys),
	}, nil
}

// Normalize fits both series into (width-2*margin) x (height-2*margin) and centers
// them within width x height. Both slices are modified in place.
func Normalize(a, b []model.Position, width, height, margin int) (Result, error) {
	shift, ratio, err := Fit(a, b, width-2*margin, height-2*margin)
	if err != nil {
		return Result{}, err
	}
	offset, err := Center(a, b, width, height)
	if err != nil {
		return Result{}, err
	}
	return Result{Shift: shift, Ratio: ratio, Offset: offset}, nil
}

// Fit shifts both series into the non-negative range and, if they exceed the
// target, divides every coordinate by the same ratio.
// The ratio is derived from the maximum values after shifting, not from the span.
//
//nolint:gocritic // named results would hide the order
func Fit(a, b []model.Position, width, height int) (model.Position, float64, error) {
	if width <= 0 || height <= 0 {
		return model.Position{}, 0, fmt.Errorf("%w: %dx%d", ErrInvalidTarget, width, height)
	}
	ext, err := FindExtrema(a, b)
	if err != nil {
		return model.Position{}, 0, err
	}

	shift := model.Position{}
	if ext.MinX < 0 {
		shift.X = -ext.MinX
		ext.MaxX += shift.X
	}
	if ext.MinY < 0 {
		shift.Y = -ext.MinY
		ext.MaxY += shift.Y
	}
	if shift.X != 0 || shift.Y != 0 {
		translate(a, shift)
		translate(b, shift)
	}

	ratio := 1.0
	if ext.MaxX > height || ext.MaxY > width {
		ratio = math.Max(
			float64(ext.MaxX)/float64(height),
			float64(ext.MaxY)/float64(width))
		scale(a, ratio)
		scale(b, ratio)
	}
	return shift, ratio, nil
}

// Center translates both series by the same offset so that their combined
// bounding box sits in the middle of width x height. The offset includes moving
// the lower bound of the box to zero, which is a no-op for data produced by Fit
// whenever a non-negativity shift took place.
func Center(a, b []model.Position, width, height int) (model.Position, error) {
	ext, err := FindExtrema(a, b)
	if err != nil {
		return model.Position{}, err
	}
	offset := model.Position{
		X: (height-(ext.MaxX-ext.MinX))/2 - ext.MinX,
		Y: (width-(ext.MaxY-ext.MinY))/2 - ext.MinY,
	}
	translate(a, offset)
	translate(b, offset)
	return offset, nil
}

func translate(s []model.Position, d model.Position) {
	for i := range s {
		s[i].X += d.X
		s[i].Y += d.Y
	}
}

func scale(s []model.Position, ratio float64) {
	for i := range s {
		s[i].X = int(math.Round(float64(s[i].X) / ratio))
		s[i].Y = int(math.Round(float64(s[i].Y) / ratio))
	}
}
