// Package raster contains the pixel level primitives used by the renderers.
//
// Line drawing replaces pixels instead of blending them. A translucent trail
// therefore keeps its exact color no matter how often it overlaps itself and is
// blended exactly once, when the layer is composited onto the frame.
package raster

import (
	"image"
	"image/color"
	"iter"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// NewLayer creates a fully transparent layer
func NewLayer(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// NewCanvas creates an opaque canvas filled with bg
func NewCanvas(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// LinePoints yields the pixels of the segment from p0 to p1 (both included)
// in the order of the Bresenham algorithm.
func LinePoints(p0, p1 image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx := abs(p1.X - p0.X)
		dy := -abs(p1.Y - p0.Y)
		sx, sy := sign(p1.X-p0.X), sign(p1.Y-p0.Y)
		e := dx + dy
		x, y := p0.X, p0.Y
		for {
			if !yield(image.Pt(x, y)) {
				return
			}
			if x == p1.X && y == p1.Y {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x += sx
			}
			if e2 <= dx {
				e += dx
				y += sy
			}
		}
	}
}

// Line draws a one pixel wide segment
func Line(img *image.NRGBA, p0, p1 image.Point, c color.NRGBA) {
	for p := range LinePoints(p0, p1) {
		setClipped(img, p.X, p.Y, c)
	}
}

// ThickLine stamps a filled disk of radius ceil(thickness/2) on every pixel of
// the segment which results in round caps and joins.
func ThickLine(img *image.NRGBA, p0, p1 image.Point, c color.NRGBA, thickness int) {
	radius := (thickness + 1) / 2
	for p := range LinePoints(p0, p1) {
		FillDisk(img, p, radius, c)
	}
}

// FillDisk sets all pixels within radius around center
func FillDisk(img *image.NRGBA, center image.Point, radius int, c color.NRGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				setClipped(img, center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// Overlay composites src onto dst with its origin placed at at (source-over).
func Overlay(dst draw.Image, src image.Image, at image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

// Rotate270 rotates src by 90 degrees counter clockwise.
func Rotate270(src image.Image) *image.RGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	// maps source (x,y) to destination (y, w-x)
	s2d := f64.Aff3{
		0, 1, float64(-sb.Min.Y),
		-1, 0, float64(w + sb.Min.X),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, sb, draw.Src, nil)
	return dst
}

func setClipped(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.SetNRGBA(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
