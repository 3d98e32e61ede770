// Package backdroptest provides a recording surface and a scriptable host for
// exercising effects and animators without a display.
package backdroptest

import (
	"image/color"

	"github.com/iburimskiy/folio/internal/backdrop"
)

type Circle struct {
	X, Y, R float64
	Color   color.Color
	Alpha   float64
	Blur    float64
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          color.Color
	Alpha          float64
}

// Recorder is a Surface that remembers what was drawn since the last clear.
type Recorder struct {
	Scale   float64
	Clears  int
	Circles []Circle
	Lines   []Line

	alpha float64
	blur  float64
}

func NewRecorder() *Recorder {
	return &Recorder{Scale: 1, alpha: 1}
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

func (r *Recorder) SetTransform(scale float64) { r.Scale = scale }

func (r *Recorder) SetGlobalAlpha(a float64) { r.alpha = a }

func (r *Recorder) SetShadow(blur float64, c color.Color) { r.blur = blur }

func (r *Recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, R: rad, Color: c, Alpha: r.alpha, Blur: r.blur})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	r.Lines = append(r.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c, Alpha: r.alpha})
}

// Host is a backdrop.Host driven by the test.
type Host struct {
	View       backdrop.Viewport
	Surface    backdrop.Surface
	CanvasCall int
	Backing    [2]int

	resize  map[int]func(backdrop.Viewport)
	pointer map[int]func(cx, cy, ox, oy float64)
	nextID  int
}

func NewHost(w, h, dpr float64) *Host {
	return &Host{
		View:    backdrop.Viewport{Width: w, Height: h, PixelRatio: dpr},
		Surface: NewRecorder(),
		resize:  map[int]func(backdrop.Viewport){},
		pointer: map[int]func(cx, cy, ox, oy float64){},
	}
}

func (h *Host) Viewport() backdrop.Viewport { return h.View }

func (h *Host) Canvas(v backdrop.Viewport) backdrop.Surface {
	h.CanvasCall++
	h.Backing[0], h.Backing[1] = v.BackingSize()
	return h.Surface
}

func (h *Host) OnResize(fn func(backdrop.Viewport)) func() {
	h.nextID++
	id := h.nextID
	h.resize[id] = fn
	return func() { delete(h.resize, id) }
}

func (h *Host) OnPointerMove(fn func(cx, cy, ox, oy float64)) func() {
	h.nextID++
	id := h.nextID
	h.pointer[id] = fn
	return func() { delete(h.pointer, id) }
}

// Resize changes the viewport and notifies listeners.
func (h *Host) Resize(w, hgt float64) {
	h.View.Width, h.View.Height = w, hgt
	for _, fn := range h.resize {
		fn(h.View)
	}
}

func (h *Host) Move(cx, cy, ox, oy float64) {
	for _, fn := range h.pointer {
		fn(cx, cy, ox, oy)
	}
}

// Listeners returns the number of attached listeners.
func (h *Host) Listeners() int {
	return len(h.resize) + len(h.pointer)
}
