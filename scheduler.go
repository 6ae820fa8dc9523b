package glyphweave

import (
	"context"
	"sync"
	"time"
)

// Renderer runs one layout pass at an animation time in seconds.
// [Controller] implements it.
type Renderer interface {
	RenderAt(t float64) *Artwork
}

var _ Renderer = (*Controller)(nil)

// FrameInterval returns the interval between frames at fps frames per
// second.
func FrameInterval(fps float64) time.Duration {
	if !(fps > 0) {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

// Frame is the output of one scheduled pass. The scheduler starts no new
// pass until the frame has been released.
type Frame struct {
	Artwork *Artwork
	// Index counts the frames the scheduler produced, starting at 0.
	Index uint64

	s *Scheduler
}

// Release marks the frame as consumed. Releasing a frame more than once
// has no effect.
func (f *Frame) Release() {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.inFlight == f {
		f.s.inFlight = nil
	}
}

// Scheduler throttles layout passes to a target frame interval. It has no
// timers of its own: it advances only when Tick is called, so tests can
// drive it synchronously.
type Scheduler struct {
	r        Renderer
	interval time.Duration

	mu       sync.Mutex
	elapsed  time.Duration
	pending  time.Duration
	inFlight *Frame
	stopped  bool
	frames   uint64
	dropped  uint64
}

// NewScheduler returns a scheduler running passes of r at most once per
// interval.
func NewScheduler(r Renderer, interval time.Duration) *Scheduler {
	return &Scheduler{r: r, interval: interval}
}

// Tick advances the animation clock by dt and runs a pass if at least one
// interval has passed since the last one and the last frame has been
// released. Ticks that do not run a pass return false; they are dropped,
// not queued.
func (s *Scheduler) Tick(dt time.Duration) (*Frame, bool) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil, false
	}
	s.elapsed += max(dt, 0)
	s.pending += max(dt, 0)
	if s.pending < s.interval || s.inFlight != nil {
		s.dropped++
		s.mu.Unlock()
		return nil, false
	}
	s.pending = 0
	f := &Frame{Index: s.frames, s: s}
	s.frames++
	s.inFlight = f
	t := s.elapsed.Seconds()
	s.mu.Unlock()

	// The pass runs without the lock held; inFlight keeps other ticks out.
	f.Artwork = s.r.RenderAt(t)
	return f, true
}

// Stop cancels the animation. Later ticks do nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

// Elapsed returns the animation time.
func (s *Scheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Stats returns the number of frames produced and ticks dropped.
func (s *Scheduler) Stats() (frames, dropped uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames, s.dropped
}

// Run drives the scheduler from ticks until ctx is done, ticks is closed
// or sink returns an error. Each tick advances the clock by the time since
// the previous tick. Frames are released once sink returns.
func (s *Scheduler) Run(ctx context.Context, ticks <-chan time.Time, sink func(*Frame) error) error {
	defer s.Stop()
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			var dt time.Duration
			if !last.IsZero() {
				dt = now.Sub(last)
			} else {
				dt = s.interval
			}
			last = now
			f, ok := s.Tick(dt)
			if !ok {
				continue
			}
			err := sink(f)
			f.Release()
			if err != nil {
				return err
			}
		}
	}
}
