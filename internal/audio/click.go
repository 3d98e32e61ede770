// Package audio plays the soft key clicks that accompany the hero typing
// animation.
package audio

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	clickLength = 18 * time.Millisecond
	clickVolume = 0.12
	clickDecay  = 6.0
)

// Clicker plays a short noise burst per typed character. The speaker is
// initialised lazily on the first click; if that fails the clicker goes quiet.
type Clicker struct {
	Enabled bool

	initDone bool
	failed   bool
	rng      *rand.Rand
	tap      *Tap
}

func NewClicker(enabled bool, seed int64) *Clicker {
	return &Clicker{Enabled: enabled, rng: rand.New(rand.NewSource(seed))}
}

func (c *Clicker) Click() {
	if !c.Enabled || c.failed {
		return
	}
	if !c.initDone {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
			log.Printf("[Audio] speaker init failed, clicks disabled: %v", err)
			c.failed = true
			return
		}
		c.initDone = true
	}
	c.tap = NewTap(NewClick(SampleRate, c.rng), SampleRate.N(clickLength))
	speaker.Play(c.tap)
}

// Level reports how loud the most recent click still is, from 0 to 1.
func (c *Clicker) Level() float64 {
	if c.tap == nil {
		return 0
	}
	return c.tap.Level()
}

// Close releases the speaker if it was opened.
func (c *Clicker) Close() {
	if c.initDone {
		speaker.Clear()
		c.initDone = false
	}
}

// NewClick returns a finite streamer: white noise under an exponential decay
// envelope, identical on both channels.
func NewClick(sr beep.SampleRate, rng *rand.Rand) beep.Streamer {
	total := sr.N(clickLength)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			env := math.Exp(-clickDecay * float64(pos) / float64(total))
			v := (rng.Float64()*2 - 1) * env * clickVolume
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}
