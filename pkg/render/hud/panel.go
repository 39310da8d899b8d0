package hud

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/mpapenbr/lapcompare/pkg/config"
	"github.com/mpapenbr/lapcompare/pkg/render/label"
)

// Panel draws stats blocks according to the layout.
type Panel struct {
	layout *config.Layout
	ts     label.Typesetter

	nameFont     label.Font
	teamFont     label.Font
	headlineFont label.Font
	sectorFont   label.Font
}

func NewPanel(layout *config.Layout, ts label.Typesetter) *Panel {
	return &Panel{
		layout:       layout,
		ts:           ts,
		nameFont:     label.Font{Weight: label.Bold, Size: layout.DriverFontSize},
		teamFont:     label.Font{Weight: label.Regular, Size: layout.TeamFontSize},
		headlineFont: label.Font{Weight: label.Bold, Size: layout.HeadlineFontSize},
		sectorFont:   label.Font{Weight: label.Regular, Size: layout.SectorFontSize},
	}
}

// BlockSize is the size of a single stats block
func (p *Panel) BlockSize() image.Point {
	return image.Pt(p.layout.SidebarWidth, p.layout.DriverStatsHeight)
}

// DrawBlock renders s with the top left corner of the block at origin.
func (p *Panel) DrawBlock(dst draw.Image, origin image.Point, s Stats) {
	l := p.layout
	nameH := p.ts.LineHeight(p.nameFont)
	teamH := p.ts.LineHeight(p.teamFont)

	y := origin.Y + l.PaddingTBInner
	p.ts.Draw(dst, p.nameFont, s.Name, origin.X+l.PaddingLR, y, s.NameColor)
	p.ts.Draw(dst, p.teamFont, s.Team, origin.X+l.PaddingLR, y+nameH+l.DriverTeamMargin, color.White)

	// the driver/team margin only offsets the team line
	y += nameH + teamH + l.NameHeadlineMargin
	hw := p.ts.Advance(p.headlineFont, s.Headline)
	p.ts.Draw(dst, p.headlineFont, s.Headline, origin.X+(l.SidebarWidth-hw)/2, y, color.White)

	sh := p.ts.LineHeight(p.sectorFont)
	y = origin.Y + l.DriverStatsHeight - len(s.Sectors)*sh - l.SectorTimesMargin
	for i, line := range s.Sectors {
		p.ts.Draw(dst, p.sectorFont, line, origin.X+l.PaddingLR, y+i*sh, color.White)
	}
}

// BlockOrigins returns the positions of both blocks relative to the sidebar
func (p *Panel) BlockOrigins() [2]image.Point {
	l := p.layout
	return [2]image.Point{
		image.Pt(0, l.PaddingTB),
		image.Pt(0, l.TrackHeight-l.PaddingTB-l.DriverStatsHeight),
	}
}

// Sidebar renders a transparent sidebar holding the blocks of both drivers.
func (p *Panel) Sidebar(stats [2]Stats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.layout.SidebarWidth, p.layout.TrackHeight))
	for i, at := range p.BlockOrigins() {
		p.DrawBlock(img, at, stats[i])
	}
	return img
}
