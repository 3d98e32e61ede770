package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a streamer and keeps the most recent samples in a ring buffer so
// the renderer can react to what was just played. Stream runs on the
// speaker goroutine; Level and Snapshot are called from the game loop.
type Tap struct {
	Source beep.Streamer

	mu        sync.RWMutex
	buffer    [][2]float64
	nextIndex int
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{Source: src, buffer: make([][2]float64, ringSize)}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if !ok {
		t.Reset()
		return n, ok
	}
	t.record(samples[:n])
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

func (t *Tap) record(samples [][2]float64) {
	if len(samples) == 0 {
		return
	}
	t.mu.Lock()
	for _, s := range samples {
		t.buffer[t.nextIndex] = s
		t.nextIndex = (t.nextIndex + 1) % len(t.buffer)
	}
	t.mu.Unlock()
}

// Snapshot returns up to the last n samples in chronological order.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx = (idx + 1) % len(t.buffer)
	}
	return out
}

// Level is the peak absolute amplitude held in the buffer, scaled so a
// fresh click reads 1. It drops to 0 once the source is drained.
func (t *Tap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	peak := 0.0
	for _, s := range t.buffer {
		peak = math.Max(peak, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return math.Min(1, peak/clickVolume)
}

// Reset forgets everything recorded so far.
func (t *Tap) Reset() {
	t.mu.Lock()
	clear(t.buffer)
	t.nextIndex = 0
	t.mu.Unlock()
}
