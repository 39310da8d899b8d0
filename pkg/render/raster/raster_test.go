//nolint:funlen // ok for tests
package raster

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var red = color.NRGBA{R: 255, A: 128}

func TestLinePoints(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   []image.Point
	}{
		{
			name: "single point",
			p0:   image.Pt(3, 3), p1: image.Pt(3, 3),
			want: []image.Point{{3, 3}},
		},
		{
			name: "horizontal",
			p0:   image.Pt(0, 1), p1: image.Pt(3, 1),
			want: []image.Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
		{
			name: "vertical upwards",
			p0:   image.Pt(2, 2), p1: image.Pt(2, 0),
			want: []image.Point{{2, 2}, {2, 1}, {2, 0}},
		},
		{
			name: "diagonal",
			p0:   image.Pt(0, 0), p1: image.Pt(-2, 2),
			want: []image.Point{{0, 0}, {-1, 1}, {-2, 2}},
		},
		{
			name: "shallow slope",
			p0:   image.Pt(0, 0), p1: image.Pt(4, 2),
			want: []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(LinePoints(tt.p0, tt.p1))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LinePoints() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineIsSymmetricInLength(t *testing.T) {
	a := slices.Collect(LinePoints(image.Pt(1, 7), image.Pt(23, 2)))
	b := slices.Collect(LinePoints(image.Pt(23, 2), image.Pt(1, 7)))
	assert.Len(t, b, len(a))
	assert.Equal(t, image.Pt(23, 2), a[len(a)-1])
}

func TestLineReplacesPixels(t *testing.T) {
	img := NewLayer(5, 5)
	Line(img, image.Pt(0, 2), image.Pt(4, 2), red)
	Line(img, image.Pt(2, 0), image.Pt(2, 4), red)
	// the crossing pixel is not blended twice
	assert.Equal(t, red, img.NRGBAAt(2, 2))
	assert.Equal(t, red, img.NRGBAAt(0, 2))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0))
}

func TestLineClips(t *testing.T) {
	img := NewLayer(3, 3)
	assert.NotPanics(t, func() {
		Line(img, image.Pt(-5, -5), image.Pt(10, 10), red)
	})
	assert.Equal(t, red, img.NRGBAAt(1, 1))
}

func TestFillDisk(t *testing.T) {
	img := NewLayer(7, 7)
	FillDisk(img, image.Pt(3, 3), 2, red)

	count := 0
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			if img.NRGBAAt(x, y) == red {
				count++
			}
		}
	}
	assert.Equal(t, 13, count)
	assert.Equal(t, red, img.NRGBAAt(5, 3))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(5, 5))
}

func TestThickLineWidth(t *testing.T) {
	img := NewLayer(20, 11)
	ThickLine(img, image.Pt(3, 5), image.Pt(16, 5), red, 3)

	column := func(x int) int {
		n := 0
		for y := 0; y < 11; y++ {
			if img.NRGBAAt(x, y).A != 0 {
				n++
			}
		}
		return n
	}
	// radius 2 around every pixel of the segment
	for x := 3; x <= 16; x++ {
		assert.Equal(t, 5, column(x), "column %d", x)
	}
	// round caps
	assert.Equal(t, 1, column(1))
	assert.Equal(t, 0, column(0))
}

func TestNewCanvas(t *testing.T) {
	bg := color.RGBA{R: 15, G: 15, B: 15, A: 255}
	c := NewCanvas(4, 3, bg)
	assert.Equal(t, image.Rect(0, 0, 4, 3), c.Bounds())
	assert.Equal(t, bg, c.RGBAAt(3, 2))
}

func TestOverlay(t *testing.T) {
	dst := NewCanvas(6, 6, color.Black)
	src := NewLayer(2, 2)
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{G: 255, A: 255})

	Overlay(dst, src, image.Pt(3, 2))

	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(3, 2))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, dst.RGBAAt(4, 3))
	// transparent source pixels leave the destination untouched
	assert.Equal(t, color.RGBA{A: 255}, dst.RGBAAt(4, 2))
}

func TestRotate270(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	mark := color.RGBA{R: 200, A: 255}
	other := color.RGBA{B: 200, A: 255}
	src.SetRGBA(0, 0, mark)  // top left
	src.SetRGBA(2, 1, other) // bottom right

	dst := Rotate270(src)

	assert.Equal(t, image.Rect(0, 0, 2, 3), dst.Bounds())
	// counter clockwise: top left ends up bottom left, bottom right ends up top right
	assert.Equal(t, mark, dst.RGBAAt(0, 2))
	assert.Equal(t, other, dst.RGBAAt(1, 0))
}
