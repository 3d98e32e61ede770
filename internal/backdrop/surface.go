// Package backdrop drives decorative canvas animations: an Effect owns its
// particle store and knows how to step and paint it, an Animator wires the
// effect to a host's canvas, resize and pointer signals, and a Loop keeps
// requesting display frames until it is cancelled.
package backdrop

import (
	"image/color"
	"math"
	"math/rand"
)

// Surface is a 2D immediate-mode drawing context in CSS pixel space. The
// transform set by SetTransform maps those pixels onto the backing store.
type Surface interface {
	ClearRect(x, y, w, h float64)
	SetTransform(scale float64)
	SetGlobalAlpha(a float64)
	SetShadow(blur float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// Viewport is the host's visible area in CSS pixels.
type Viewport struct {
	Width, Height float64
	PixelRatio    float64
}

// Ratio returns the device pixel ratio, treating unknown values as 1.
func (v Viewport) Ratio() float64 {
	if v.PixelRatio <= 0 || math.IsNaN(v.PixelRatio) {
		return 1
	}
	return v.PixelRatio
}

// BackingSize returns the backing store dimensions in device pixels.
func (v Viewport) BackingSize() (int, int) {
	r := v.Ratio()
	return int(math.Round(v.Width * r)), int(math.Round(v.Height * r))
}

// Source is a seedable random source. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Between samples uniformly from [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
