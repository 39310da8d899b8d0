package output

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"

	"github.com/mpapenbr/lapcompare/log"
)

const (
	maxPaletteSize = 256
	// about 600 MB of paletted 768x768 frames
	DefaultFrameWarning = 1000
)

type (
	// GIF collects quantized frames and encodes the looping animation on Close.
	// gif.EncodeAll needs the complete animation, so every paletted frame is
	// kept in memory until Close.
	GIF struct {
		w            io.Writer
		closer       io.Closer
		drawer       draw.Drawer
		quantizer    draw.Quantizer
		seed         color.Palette
		frameWarning int
		warned       bool
		anim         gif.GIF
		l            *log.Logger
	}
	GIFOption func(*GIF)
)

// WithDither enables Floyd-Steinberg error diffusion when quantizing frames
func WithDither(arg bool) GIFOption {
	return func(g *GIF) {
		if arg {
			g.drawer = draw.FloydSteinberg
		} else {
			g.drawer = draw.Src
		}
	}
}

// WithCloser is closed after the animation was written
func WithCloser(arg io.Closer) GIFOption {
	return func(g *GIF) {
		g.closer = arg
	}
}

// WithPaletteColors puts the given colors at the front of every frame palette.
// Without dithering pixels of exactly these colors are encoded without loss.
func WithPaletteColors(arg ...color.Color) GIFOption {
	return func(g *GIF) {
		for _, c := range arg {
			if len(g.seed) == maxPaletteSize-1 {
				return
			}
			g.seed = append(g.seed, color.RGBAModel.Convert(c))
		}
	}
}

// WithFrameWarning sets the number of held frames above which a warning is logged.
// Values <= 0 disable the warning.
func WithFrameWarning(arg int) GIFOption {
	return func(g *GIF) {
		g.frameWarning = arg
	}
}

func WithGIFLogger(arg *log.Logger) GIFOption {
	return func(g *GIF) {
		g.l = arg
	}
}

func NewGIF(w io.Writer, opts ...GIFOption) *GIF {
	ret := &GIF{
		w:            w,
		drawer:       draw.Src,
		quantizer:    &quantize.MedianCutQuantizer{},
		frameWarning: DefaultFrameWarning,
		anim:         gif.GIF{LoopCount: 0},
		l:            log.Default().Named("output.gif"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (g *GIF) Emit(frame *image.RGBA, delay time.Duration) error {
	b := frame.Bounds()
	pal := image.NewPaletted(b, g.palette(frame))
	g.drawer.Draw(pal, b, frame, b.Min)
	g.anim.Image = append(g.anim.Image, pal)
	g.anim.Delay = append(g.anim.Delay, Delay(delay))

	if n := len(g.anim.Image); g.frameWarning > 0 && n > g.frameWarning && !g.warned {
		g.warned = true
		g.l.Warn("many frames held in memory until close",
			log.Int("frames", n),
			log.Int("bytesPerFrame", len(pal.Pix)))
	}
	return nil
}

// palette returns the seed colors followed by a median cut palette of frame
func (g *GIF) palette(frame image.Image) color.Palette {
	ret := make(color.Palette, 0, maxPaletteSize)
	ret = append(ret, g.seed...)
	adaptive := g.quantizer.Quantize(
		make(color.Palette, 0, maxPaletteSize-len(g.seed)), frame)
	for _, c := range adaptive {
		if len(ret) == maxPaletteSize {
			break
		}
		ret = append(ret, c)
	}
	if len(ret) == 0 {
		ret = append(ret, color.Black)
	}
	return ret
}

func (g *GIF) Close() error {
	err := g.encode()
	if g.closer != nil {
		if cerr := g.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (g *GIF) encode() error {
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	g.l.Info("encoding gif", log.Int("frames", len(g.anim.Image)))
	return gif.EncodeAll(g.w, &g.anim)
}

// Delay converts d into gif units of 1/100s, rounded to the nearest unit and at least 1.
func Delay(d time.Duration) int {
	return max(int((d+5*time.Millisecond)/(10*time.Millisecond)), 1)
}
