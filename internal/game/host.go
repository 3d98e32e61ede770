package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/folio/internal/backdrop"
)

// host adapts the ebiten window to backdrop.Host. Layout reports size
// changes; they are delivered to listeners from Update so images are only
// allocated inside the game loop.
type host struct {
	view    backdrop.Viewport
	pending *backdrop.Viewport
	canvas  *canvas

	resize  map[int]func(backdrop.Viewport)
	pointer map[int]func(cx, cy, ox, oy float64)
	nextID  int

	cursor    [2]int
	hasCursor bool
}

func newHost(w, h, dpr float64) *host {
	return &host{
		view:    backdrop.Viewport{Width: w, Height: h, PixelRatio: dpr},
		resize:  map[int]func(backdrop.Viewport){},
		pointer: map[int]func(cx, cy, ox, oy float64){},
	}
}

func (h *host) Viewport() backdrop.Viewport { return h.view }

func (h *host) Canvas(v backdrop.Viewport) backdrop.Surface {
	w, ht := v.BackingSize()
	if h.canvas != nil {
		b := h.canvas.img.Bounds()
		if b.Dx() == w && b.Dy() == ht {
			return h.canvas
		}
		h.canvas.img.Deallocate()
	}
	h.canvas = newCanvas(w, ht)
	return h.canvas
}

func (h *host) OnResize(fn func(backdrop.Viewport)) func() {
	h.nextID++
	id := h.nextID
	h.resize[id] = fn
	return func() { delete(h.resize, id) }
}

func (h *host) OnPointerMove(fn func(cx, cy, ox, oy float64)) func() {
	h.nextID++
	id := h.nextID
	h.pointer[id] = fn
	return func() { delete(h.pointer, id) }
}

// layout records the outside size reported by ebiten.
func (h *host) layout(w, ht int, dpr float64) {
	v := backdrop.Viewport{Width: float64(w), Height: float64(ht), PixelRatio: dpr}
	if v == h.view {
		h.pending = nil
		return
	}
	h.pending = &v
}

// flush delivers a pending resize and the latest cursor position.
func (h *host) flush() {
	if h.pending != nil {
		h.view = *h.pending
		h.pending = nil
		for _, fn := range h.resize {
			fn(h.view)
		}
	}

	// The first reading is where the cursor rests at startup, not a move.
	x, y := ebiten.CursorPosition()
	if !h.hasCursor || h.cursor == [2]int{x, y} {
		h.cursor, h.hasCursor = [2]int{x, y}, true
		return
	}
	h.cursor = [2]int{x, y}
	r := h.view.Ratio()
	for _, fn := range h.pointer {
		fn(float64(x)/r, float64(y)/r, 0, 0)
	}
}

// cursorCSS returns the cursor in CSS pixels.
func (h *host) cursorCSS() (float64, float64) {
	r := h.view.Ratio()
	return float64(h.cursor[0]) / r, float64(h.cursor[1]) / r
}

func (h *host) dispose() {
	if h.canvas != nil {
		h.canvas.img.Deallocate()
		h.canvas = nil
	}
}
