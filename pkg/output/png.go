package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// PNGSequence writes every frame as frame_NNNNN.png into a directory.
// The delay is not stored.
type PNGSequence struct {
	dir     string
	next    int
	encoder png.Encoder
}

func NewPNGSequence(dir string) (*PNGSequence, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &PNGSequence{dir: dir, encoder: png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

// FrameName returns the file name of frame i
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.png", i)
}

func (p *PNGSequence) Emit(frame *image.RGBA, _ time.Duration) error {
	name := filepath.Join(p.dir, FrameName(p.next))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := p.encoder.Encode(f, frame); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	p.next++
	return nil
}

func (p *PNGSequence) Close() error {
	if p.next == 0 {
		return ErrNoFrames
	}
	return nil
}
