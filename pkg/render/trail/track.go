package trail

import (
	"image"
	"image/color"

	"github.com/mpapenbr/lapcompare/pkg/model"
	"github.com/mpapenbr/lapcompare/pkg/render/raster"
)

// Track draws the trail on the track map.
type Track struct {
	points    []model.Position
	color     color.NRGBA
	thickness int
	buf       *image.NRGBA
}

var _ Renderer = (*Track)(nil)

// NewTrack expects normalized points. Sample X is used as vertical, Y as
// horizontal canvas coordinate.
func NewTrack(points []model.Position, size image.Point, c color.NRGBA, thickness int) *Track {
	return &Track{
		points:    points,
		color:     c,
		thickness: thickness,
		buf:       raster.NewLayer(size.X, size.Y),
	}
}

func (t *Track) Advance(tick int) {
	if tick < 0 || tick+1 >= len(t.points) {
		return
	}
	raster.ThickLine(t.buf,
		canvasPoint(t.points[tick]),
		canvasPoint(t.points[tick+1]),
		t.color, t.thickness)
}

func (t *Track) Snapshot() *image.NRGBA {
	return t.buf
}

func canvasPoint(p model.Position) image.Point {
	return image.Pt(p.Y, p.X)
}
