// Package stars is the falling-stars backdrop: a density-sized field of
// small off-white points drifting downward with a slow twinkle.
package stars

import (
	"image/color"
	"math"

	"github.com/iburimskiy/folio/internal/backdrop"
	"github.com/iburimskiy/folio/internal/config"
)

const (
	minRadius = 0.3
	maxRadius = 1.7
	minSpeed  = 0.2
	maxSpeed  = 1.0
	minAlpha  = 0.4
	maxAlpha  = 1.0

	// shown alpha bounds after the twinkle
	minShown = 0.2
	maxShown = 1.0
)

var (
	starColor = color.NRGBA{R: 230, G: 237, B: 243, A: 255}
	glowColor = color.NRGBA{R: 255, G: 255, B: 255, A: 153}
)

type Star struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Alpha  float64
	// Shown is Alpha after the twinkle of the last step.
	Shown float64
}

type Options struct {
	Density  float64
	MinCount int
	MaxCount int
}

func DefaultOptions() Options {
	return Options{
		Density:  config.StarDensity,
		MinCount: config.StarMinCount,
		MaxCount: config.StarMaxCount,
	}
}

// Count returns how many stars a w x h canvas holds.
func (o Options) Count(w, h float64) int {
	n := int(math.Floor(w * h * o.Density))
	if n < o.MinCount {
		return o.MinCount
	}
	if n > o.MaxCount {
		return o.MaxCount
	}
	return n
}

type Field struct {
	opts  Options
	src   backdrop.Source
	w, h  float64
	stars []*Star
}

func New(opts Options, src backdrop.Source) *Field {
	return &Field{opts: opts, src: src}
}

func (f *Field) Stars() []*Star { return f.stars }

func (f *Field) Reset(w, h float64) {
	f.w, f.h = w, h
	stars := make([]*Star, f.opts.Count(w, h))
	for i := range stars {
		s := &Star{
			X: f.src.Float64() * w,
			Y: f.src.Float64() * h,
		}
		f.sample(s)
		stars[i] = s
	}
	f.stars = stars
}

func (f *Field) sample(s *Star) {
	s.Radius = backdrop.Between(f.src, minRadius, maxRadius)
	s.Speed = backdrop.Between(f.src, minSpeed, maxSpeed)
	s.Alpha = backdrop.Between(f.src, minAlpha, maxAlpha)
	s.Shown = s.Alpha
}

func (f *Field) Step(t backdrop.Tick) {
	now := t.Millis()
	for _, s := range f.stars {
		s.Y += s.Speed
		if s.Y-s.Radius > f.h {
			s.X = f.src.Float64() * f.w
			f.sample(s)
			s.Y = -s.Radius
		}
		s.Shown = backdrop.Clamp(s.Alpha-0.25+twinkle(now, s.X), minShown, maxShown)
	}
}

// twinkle oscillates in [0, 0.5]; the x offset desynchronises neighbours.
func twinkle(nowMs, x float64) float64 {
	return (math.Sin((nowMs+x)*config.TwinkleFrequency) + 1) * 0.25
}

func (f *Field) Render(s backdrop.Surface) {
	s.SetShadow(config.StarGlowBlur, glowColor)
	for _, st := range f.stars {
		s.SetGlobalAlpha(st.Shown)
		s.FillCircle(st.X, st.Y, st.Radius, starColor)
	}
	s.SetGlobalAlpha(1)
	s.SetShadow(0, color.Transparent)
}
