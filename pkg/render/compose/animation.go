package compose

import (
	"fmt"
	"image"
	"time"

	"github.com/mpapenbr/lapcompare/log"
)

// Sink receives the composed frames. The frame must not be retained after Emit returns
// unless it is copied, the animation never reuses it though.
type Sink interface {
	Emit(frame *image.RGBA, delay time.Duration) error
}

// TotalFrames is the number of frames of a run: the longer series plus pad frames
// showing the final state.
func TotalFrames(lenA, lenB, pad int) int {
	return max(lenA, lenB) + max(pad, 0)
}

type (
	Animation struct {
		compositor *Compositor
		frameTime  time.Duration
		tailFrames int
		l          *log.Logger
	}
	AnimationOption func(*Animation)
)

func WithFrameTime(d time.Duration) AnimationOption {
	return func(a *Animation) {
		a.frameTime = d
	}
}

func WithTailFrames(n int) AnimationOption {
	return func(a *Animation) {
		a.tailFrames = n
	}
}

func WithAnimationLogger(arg *log.Logger) AnimationOption {
	return func(a *Animation) {
		a.l = arg
	}
}

// NewAnimation uses frame time and tail frames of the compositor layout unless
// overridden by options.
func NewAnimation(c *Compositor, opts ...AnimationOption) *Animation {
	ret := &Animation{
		compositor: c,
		frameTime:  c.layout.FrameTime,
		tailFrames: c.layout.TailFrames,
		l:          log.Default().Named("render.animation"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (a *Animation) TotalFrames() int {
	lenA, lenB := a.compositor.Lengths()
	return TotalFrames(lenA, lenB, a.tailFrames)
}

// Run drives the tick loop and hands every frame to sink.
// A sink error aborts the run.
func (a *Animation) Run(sink Sink) error {
	total := a.TotalFrames()
	a.l.Info("starting animation",
		log.Int("frames", total),
		log.Duration("frameTime", a.frameTime))
	start := time.Now()
	for tick := range total {
		a.compositor.Advance(tick)
		frame := a.compositor.Compose(tick)
		if err := sink.Emit(frame, a.frameTime); err != nil {
			return fmt.Errorf("emit frame %d: %w", tick, err)
		}
		a.l.Debug("frame emitted", log.Int("frame", tick+1), log.Int("total", total))
	}
	a.l.Info("animation done",
		log.Int("frames", total),
		log.Duration("elapsed", time.Since(start)))
	return nil
}
