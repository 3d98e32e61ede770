package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowAlpha is how strong the halo drawn for a shadow blur is relative to
// the shape itself.
const glowAlpha = 0.35

// canvas is the backdrop's drawing surface: an offscreen image sized to the
// backing store, addressed in CSS pixels through scale.
type canvas struct {
	img    *ebiten.Image
	scale  float64
	alpha  float64
	blur   float64
	shadow color.Color
}

func newCanvas(w, h int) *canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &canvas{img: ebiten.NewImage(w, h), scale: 1, alpha: 1}
}

func (c *canvas) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(x*c.scale), int(y*c.scale),
		int((x+w)*c.scale+0.5), int((y+h)*c.scale+0.5),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}

// SetTransform replaces the transform instead of composing with it, so a
// resize never compounds the pixel ratio.
func (c *canvas) SetTransform(scale float64) {
	c.scale = scale
}

func (c *canvas) SetGlobalAlpha(a float64) {
	c.alpha = clamp01(a)
}

func (c *canvas) SetShadow(blur float64, clr color.Color) {
	c.blur = blur
	c.shadow = clr
}

func (c *canvas) FillCircle(x, y, r float64, clr color.Color) {
	s := c.scale
	if c.blur > 0 && c.shadow != nil {
		halo := withAlpha(c.shadow, c.alpha*glowAlpha)
		vector.DrawFilledCircle(c.img, float32(x*s), float32(y*s), float32((r+c.blur/3)*s), halo, true)
	}
	vector.DrawFilledCircle(c.img, float32(x*s), float32(y*s), float32(r*s), withAlpha(clr, c.alpha), true)
}

func (c *canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	s := c.scale
	vector.StrokeLine(c.img, float32(x1*s), float32(y1*s), float32(x2*s), float32(y2*s), float32(width*s), withAlpha(clr, c.alpha), true)
}

// withAlpha multiplies the colour's own alpha by a.
func withAlpha(clr color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	n.A = uint8(float64(n.A) * clamp01(a))
	return n
}
