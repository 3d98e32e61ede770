// Package network is the interactive particle backdrop: drifting two-tone
// dots that bounce off the canvas edges, shy away from the pointer and are
// linked by faint lines when close to each other.
package network

import (
	"image/color"
	"math"

	"github.com/iburimskiy/folio/internal/backdrop"
	"github.com/iburimskiy/folio/internal/config"
)

type Hue int

const (
	Cyan Hue = iota
	Violet
)

var hueColors = [...]color.NRGBA{
	Cyan:   {R: 0x06, G: 0xb6, B: 0xd4, A: 0xff},
	Violet: {R: 0xa7, G: 0x8b, B: 0xfa, A: 0xff},
}

func (h Hue) Color() color.NRGBA { return hueColors[h] }

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Hue     Hue
}

type Options struct {
	Count int
	// Attract pulls particles toward the pointer instead of pushing them away.
	Attract bool
}

func DefaultOptions() Options {
	return Options{Count: config.NetworkCount}
}

type Field struct {
	opts       Options
	src        backdrop.Source
	w, h       float64
	particles  []*Particle
	pointer    [2]float64
	hasPointer bool
}

func New(opts Options, src backdrop.Source) *Field {
	return &Field{opts: opts, src: src}
}

func (f *Field) Particles() []*Particle { return f.particles }

func (f *Field) Reset(w, h float64) {
	f.w, f.h = w, h
	particles := make([]*Particle, f.opts.Count)
	for i := range particles {
		p := &Particle{
			X:       f.src.Float64() * w,
			Y:       f.src.Float64() * h,
			VX:      backdrop.Between(f.src, -0.5, 0.5),
			VY:      backdrop.Between(f.src, -0.5, 0.5),
			Radius:  backdrop.Between(f.src, 1, 4),
			Opacity: backdrop.Between(f.src, 0.2, 1.0),
			Hue:     Cyan,
		}
		if f.src.Float64() > 0.5 {
			p.Hue = Violet
		}
		particles[i] = p
	}
	f.particles = particles
}

// Pointer records the canvas-local cursor position used by the next step.
func (f *Field) Pointer(x, y float64) {
	f.pointer = [2]float64{x, y}
	f.hasPointer = true
}

func (f *Field) Step(backdrop.Tick) {
	for _, p := range f.particles {
		p.X += p.VX
		p.Y += p.VY

		if f.hasPointer {
			f.perturb(p)
		}

		if p.X < 0 || p.X > f.w {
			p.VX *= -config.BounceDamping
		}
		if p.Y < 0 || p.Y > f.h {
			p.VY *= -config.BounceDamping
		}
		p.X = backdrop.Clamp(p.X, 0, f.w)
		p.Y = backdrop.Clamp(p.Y, 0, f.h)
	}
}

// perturb nudges the velocity along the pointer axis with a strength that
// falls off linearly to zero at the influence radius.
func (f *Field) perturb(p *Particle) {
	dx := f.pointer[0] - p.X
	dy := f.pointer[1] - p.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist >= config.InfluenceRadius {
		return
	}
	force := (config.InfluenceRadius - dist) / config.InfluenceRadius * config.InfluenceForce
	if !f.opts.Attract {
		force = -force
	}
	p.VX += dx / dist * force
	p.VY += dy / dist * force
}

func (f *Field) Render(s backdrop.Surface) {
	for _, p := range f.particles {
		c := p.Hue.Color()
		s.SetGlobalAlpha(p.Opacity)
		s.SetShadow(config.NetworkGlowBlur, c)
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}
	s.SetShadow(0, color.Transparent)

	f.renderLinks(s)
	s.SetGlobalAlpha(1)
}

// renderLinks compares every pair of particles. The pass is quadratic in
// the particle count and Options.Count is its only bound.
func (f *Field) renderLinks(s backdrop.Surface) {
	link := Cyan.Color()
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j]
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if dist >= config.LinkDistance {
				continue
			}
			s.SetGlobalAlpha(LinkAlpha(dist))
			s.StrokeLine(a.X, a.Y, b.X, b.Y, 1, link)
		}
	}
}

// LinkAlpha is the opacity of a link between particles dist pixels apart.
func LinkAlpha(dist float64) float64 {
	if dist >= config.LinkDistance {
		return 0
	}
	return (config.LinkDistance - dist) / config.LinkDistance * config.LinkMaxAlpha
}
