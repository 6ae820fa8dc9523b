package glyphweave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	mu    sync.Mutex
	times []float64
}

func (r *recordingRenderer) RenderAt(t float64) *Artwork {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.times = append(r.times, t)
	return &Artwork{Time: t}
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, 40*time.Millisecond, FrameInterval(25))
	assert.Equal(t, time.Duration(0), FrameInterval(0))
	assert.Equal(t, time.Duration(0), FrameInterval(-3))
}

func TestSchedulerTick(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScheduler(r, 100*time.Millisecond)

	_, ok := s.Tick(60 * time.Millisecond)
	assert.False(t, ok, "tick faster than the interval ran a pass")

	f, ok := s.Tick(40 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, uint64(0), f.Index)
	assert.InDelta(t, 0.1, f.Artwork.Time, 1e-9)

	// No new pass while the frame is held.
	_, ok = s.Tick(200 * time.Millisecond)
	assert.False(t, ok)

	f.Release()
	f.Release()
	f, ok = s.Tick(100 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, uint64(1), f.Index)
	assert.InDelta(t, 0.4, f.Artwork.Time, 1e-9)
	f.Release()

	frames, dropped := s.Stats()
	assert.Equal(t, uint64(2), frames)
	assert.Equal(t, uint64(2), dropped)
	assert.Equal(t, 400*time.Millisecond, s.Elapsed())

	s.Stop()
	_, ok = s.Tick(time.Second)
	assert.False(t, ok, "stopped scheduler ran a pass")
	assert.Len(t, r.times, 2)
}

func ticksEvery(n int, interval time.Duration) <-chan time.Time {
	ch := make(chan time.Time, n)
	start := time.Unix(1000, 0)
	for i := range n {
		ch <- start.Add(time.Duration(i) * interval)
	}
	close(ch)
	return ch
}

func TestSchedulerRun(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScheduler(r, 50*time.Millisecond)
	var got []uint64
	err := s.Run(context.Background(), ticksEvery(4, 50*time.Millisecond), func(f *Frame) error {
		got = append(got, f.Index)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2, 3}, got)
	assert.InDeltaSlice(t, []float64{0.05, 0.1, 0.15, 0.2}, r.times, 1e-9)

	_, ok := s.Tick(time.Second)
	assert.False(t, ok, "scheduler kept running after Run returned")
}

func TestSchedulerRunDropsFastTicks(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScheduler(r, 100*time.Millisecond)
	err := s.Run(context.Background(), ticksEvery(9, 25*time.Millisecond), func(*Frame) error { return nil })
	require.NoError(t, err)
	// The first tick counts as a full interval, then every fourth tick
	// completes one.
	assert.Len(t, r.times, 3)
}

func TestSchedulerRunSinkError(t *testing.T) {
	s := NewScheduler(&recordingRenderer{}, time.Millisecond)
	errSink := errors.New("sink full")
	err := s.Run(context.Background(), ticksEvery(5, time.Millisecond), func(f *Frame) error {
		if f.Index == 1 {
			return errSink
		}
		return nil
	})
	assert.ErrorIs(t, err, errSink)
	frames, _ := s.Stats()
	assert.Equal(t, uint64(2), frames)
}

func TestSchedulerRunCancel(t *testing.T) {
	s := NewScheduler(&recordingRenderer{}, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx, make(chan time.Time), func(*Frame) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSchedulerDrivesController(t *testing.T) {
	s := testSettings()
	s.Drift = 2
	c := NewController(s, discardLogger())
	sched := NewScheduler(c, FrameInterval(c.Settings().FrameRate))
	var arts []*Artwork
	for range 3 {
		f, ok := sched.Tick(FrameInterval(30))
		require.True(t, ok)
		arts = append(arts, f.Artwork)
		f.Release()
	}
	assert.False(t, arts[0].Equal(arts[2]), "drifting frames are identical")
	assert.Less(t, arts[0].Time, arts[1].Time)
}
