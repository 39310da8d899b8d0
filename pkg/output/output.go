// Package output contains the frame sinks writing the composed frames.
package output

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"
)

var (
	ErrNoFrames      = errors.New("no frames emitted")
	ErrUnknownFormat = errors.New("unknown output format")
)

const (
	FormatGIF = "gif"
	FormatPNG = "png"
)

// Sink receives frames and finalizes the output on Close.
type Sink interface {
	Emit(frame *image.RGBA, delay time.Duration) error
	Close() error
}

// Open creates the sink for format. For gif, path names the animation file,
// for png it names the directory receiving the frames. opts only apply to gif.
func Open(format, path string, opts ...GIFOption) (Sink, error) {
	switch format {
	case FormatGIF:
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		return NewGIF(f, append(opts, WithCloser(f))...), nil
	case FormatPNG:
		return NewPNGSequence(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
