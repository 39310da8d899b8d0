// Package colors derives the stroke colors of both drivers from their team colors.
package colors

import (
	"image/color"
	"math"

	"github.com/mpapenbr/lapcompare/pkg/model"
)

// Resolution is computed once per run.
type Resolution struct {
	// Strokes are the translucent drawing colors for the trails of driver 1 and 2
	Strokes [2]color.NRGBA
	// Metas carry the team colors to be used for labels. The second one holds the
	// complementary color if both drivers share a team color.
	Metas         [2]model.DriverMeta
	Disambiguated bool
	// Degenerate is set per driver if its color could not be expressed as a
	// translucent color over the background and is drawn opaque instead.
	Degenerate [2]bool
}

// Resolve disambiguates equal team colors and derives translucent stroke colors
// which reproduce the (possibly disambiguated) team color when drawn over bg.
// The metas are passed by value, the caller propagates Resolution.Metas.
func Resolve(m1, m2 model.DriverMeta, bg color.RGBA) Resolution {
	ret := Resolution{Metas: [2]model.DriverMeta{m1, m2}}
	if m1.TeamColor == m2.TeamColor {
		ret.Metas[1].TeamColor = Complementary(m2.TeamColor)
		ret.Disambiguated = true
	}
	for i := range ret.Metas {
		var ok bool
		ret.Strokes[i], ok = ReverseBlend(ret.Metas[i].TeamColor, bg)
		ret.Degenerate[i] = !ok
	}
	return ret
}

// Complementary computes max+min-c for each color channel, alpha is kept.
func Complementary(c color.RGBA) color.RGBA {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	sum := int(hi) + int(lo)
	return color.RGBA{
		R: uint8(sum - int(c.R)),
		G: uint8(sum - int(c.G)),
		B: uint8(sum - int(c.B)),
		A: c.A,
	}
}

// ReverseBlend solves alpha*F + (1-alpha)*bg = target for a single alpha and the
// foreground F. The largest per channel alpha is used for all channels, F is
// derived from the stored alpha byte.
// If no positive alpha exists the opaque target is returned with ok=false.
func ReverseBlend(target, bg color.RGBA) (ret color.NRGBA, ok bool) {
	t := [3]float64{float64(target.R), float64(target.G), float64(target.B)}
	b := [3]float64{float64(bg.R), float64(bg.G), float64(bg.B)}

	alpha := math.Inf(-1)
	for i := range t {
		// a channel already at the background value says nothing about alpha,
		// a white background channel cannot be solved for alpha at all
		if t[i] == b[i] || b[i] == 255 {
			continue
		}
		alpha = math.Max(alpha, (t[i]-b[i])/(255-b[i]))
	}
	if alpha <= 0 {
		return color.NRGBA{R: target.R, G: target.G, B: target.B, A: 0xff}, false
	}

	a := clampByte(alpha * 256)
	if a == 0 {
		a = 1
	}
	// solve F with the alpha a compositor actually reads from the byte
	q := float64(a) / 255
	var f [3]uint8
	for i := range t {
		f[i] = clampByte((t[i] - (1-q)*b[i]) / q)
	}
	return color.NRGBA{R: f[0], G: f[1], B: f[2], A: a}, true
}

func clampByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
