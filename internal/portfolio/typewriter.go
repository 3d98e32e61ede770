package portfolio

import "time"

// Typewriter reveals a text one rune per interval.
type Typewriter struct {
	text     []rune
	interval time.Duration
	elapsed  time.Duration
	shown    int
}

func NewTypewriter(text string, interval time.Duration) *Typewriter {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Typewriter{text: []rune(text), interval: interval}
}

// Advance moves the clock by dt and returns how many runes became visible.
func (t *Typewriter) Advance(dt time.Duration) int {
	if t.Done() {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.shown < len(t.text) && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		t.shown++
		n++
	}
	if t.Done() {
		t.elapsed = 0
	}
	return n
}

func (t *Typewriter) Text() string { return string(t.text[:t.shown]) }

func (t *Typewriter) Done() bool { return t.shown >= len(t.text) }
