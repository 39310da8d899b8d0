// Package label renders text labels onto raster layers.
package label

import (
	"fmt"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Weight int

const (
	Regular Weight = iota
	Bold
)

// Font selects a face by weight and size (points at 72 dpi, i.e. pixels)
type Font struct {
	Weight Weight
	Size   float64
}

// Typesetter measures and draws single line texts.
type Typesetter interface {
	// Advance returns the width of s in pixels
	Advance(f Font, s string) int
	// LineHeight returns ascent+descent+gap in pixels
	LineHeight(f Font) int
	// Draw renders s with the top left corner of its line box at (x,y)
	Draw(dst draw.Image, f Font, s string, x, y int, col color.Color)
}

type Option func(cfg *options)

type options struct {
	regular []byte
	bold    []byte
}

// WithFontData replaces the embedded font for the given weight
func WithFontData(w Weight, data []byte) Option {
	return func(cfg *options) {
		switch w {
		case Regular:
			cfg.regular = data
		case Bold:
			cfg.bold = data
		}
	}
}

// GoText is a Typesetter backed by gogpu/gg text rendering.
// Not safe for concurrent use.
type GoText struct {
	sources map[Weight]*text.FontSource
	faces   map[Font]text.Face
}

var _ Typesetter = (*GoText)(nil)

func NewTypesetter(opts ...Option) (*GoText, error) {
	cfg := options{regular: goregular.TTF, bold: gobold.TTF}
	for _, opt := range opts {
		opt(&cfg)
	}
	regular, err := text.NewFontSource(cfg.regular)
	if err != nil {
		return nil, fmt.Errorf("regular font: %w", err)
	}
	bold, err := text.NewFontSource(cfg.bold)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("bold font: %w", err)
	}
	return &GoText{
		sources: map[Weight]*text.FontSource{Regular: regular, Bold: bold},
		faces:   make(map[Font]text.Face),
	}, nil
}

func (t *GoText) Close() error {
	var ret error
	for _, s := range t.sources {
		if err := s.Close(); err != nil && ret == nil {
			ret = err
		}
	}
	return ret
}

func (t *GoText) face(f Font) text.Face {
	if face, ok := t.faces[f]; ok {
		return face
	}
	src, ok := t.sources[f.Weight]
	if !ok {
		src = t.sources[Regular]
	}
	face := src.Face(f.Size)
	t.faces[f] = face
	return face
}

func (t *GoText) Advance(f Font, s string) int {
	if s == "" {
		return 0
	}
	return int(math.Ceil(t.face(f).Advance(s)))
}

func (t *GoText) LineHeight(f Font) int {
	return int(math.Ceil(t.face(f).Metrics().LineHeight()))
}

func (t *GoText) Draw(dst draw.Image, f Font, s string, x, y int, col color.Color) {
	if s == "" {
		return
	}
	face := t.face(f)
	text.Draw(dst, s, face, float64(x), float64(y)+face.Metrics().Ascent, col)
}
