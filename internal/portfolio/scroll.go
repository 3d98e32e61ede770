package portfolio

import (
	"math"
	"time"
)

const (
	// revealThreshold is the visible share of a section that triggers its
	// entrance animation; revealMargin shrinks the viewport bottom.
	revealThreshold = 0.1
	revealMargin    = 50

	smoothRate = 10.0
)

// ScrollState tracks the page offset, smooth scrolling toward anchors and
// which sections have already been revealed.
type ScrollState struct {
	Offset     float64
	target     float64
	docHeight  float64
	viewHeight float64
	revealed   map[string]bool
}

func NewScrollState() *ScrollState {
	return &ScrollState{revealed: map[string]bool{}}
}

// SetBounds updates document and viewport heights, clamping the offset.
func (s *ScrollState) SetBounds(docHeight, viewHeight float64) {
	s.docHeight, s.viewHeight = docHeight, viewHeight
	s.Offset = s.clamp(s.Offset)
	s.target = s.clamp(s.target)
}

func (s *ScrollState) maxOffset() float64 {
	return math.Max(0, s.docHeight-s.viewHeight)
}

func (s *ScrollState) clamp(v float64) float64 {
	return math.Max(0, math.Min(s.maxOffset(), v))
}

// ScrollBy jumps immediately, as a wheel or arrow key would.
func (s *ScrollState) ScrollBy(d float64) {
	s.Offset = s.clamp(s.Offset + d)
	s.target = s.Offset
}

// ScrollTo starts a smooth scroll toward y.
func (s *ScrollState) ScrollTo(y float64) {
	s.target = s.clamp(y)
}

func (s *ScrollState) Update(dt time.Duration) {
	k := math.Min(1, dt.Seconds()*smoothRate)
	s.Offset += (s.target - s.Offset) * k
	if math.Abs(s.target-s.Offset) < 0.5 {
		s.Offset = s.target
	}
}

// Progress returns how far the page is scrolled, in percent.
func (s *ScrollState) Progress() float64 {
	m := s.maxOffset()
	if m == 0 {
		return 0
	}
	return s.Offset / m * 100
}

// Observe marks sections that are sufficiently on screen. Once revealed a
// section stays revealed.
func (s *ScrollState) Observe(sections []Section) {
	top := s.Offset
	bottom := s.Offset + s.viewHeight - revealMargin
	for _, sec := range sections {
		if s.revealed[sec.Anchor] {
			continue
		}
		h := sec.Bottom - sec.Top
		if h <= 0 {
			continue
		}
		visible := math.Min(bottom, sec.Bottom) - math.Max(top, sec.Top)
		if visible/h >= revealThreshold {
			s.revealed[sec.Anchor] = true
		}
	}
}

func (s *ScrollState) Revealed(anchor string) bool { return s.revealed[anchor] }
