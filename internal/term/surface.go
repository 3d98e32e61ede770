// Package term runs the backdrop in a terminal. Every cell stands for a
// block of logical pixels, so the effects run unchanged at a coarse
// resolution.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Logical pixels per cell. Terminal cells are roughly twice as tall as wide.
const (
	CellWidth  = 8
	CellHeight = 16
)

var (
	background = tcell.NewRGBColor(11, 15, 25)
	baseStyle  = tcell.StyleDefault.Background(background)
)

// Surface draws onto a tcell screen. Shapes snap to the cell under their
// centre; colours fade toward black with the global alpha.
type Surface struct {
	screen tcell.Screen
	scale  float64
	alpha  float64
	blur   float64
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, scale: 1, alpha: 1}
}

func (s *Surface) cell(x, y float64) (int, int) {
	return int(math.Floor(x * s.scale / CellWidth)), int(math.Floor(y * s.scale / CellHeight))
}

func (s *Surface) inside(cx, cy int) bool {
	w, h := s.screen.Size()
	return cx >= 0 && cy >= 0 && cx < w && cy < h
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	x0, y0 := s.cell(x, y)
	x1 := int(math.Ceil((x + w) * s.scale / CellWidth))
	y1 := int(math.Ceil((y + h) * s.scale / CellHeight))
	for cy := max(y0, 0); cy < y1; cy++ {
		for cx := max(x0, 0); cx < x1; cx++ {
			if s.inside(cx, cy) {
				s.screen.SetContent(cx, cy, ' ', nil, baseStyle)
			}
		}
	}
}

func (s *Surface) SetTransform(scale float64) { s.scale = scale }

func (s *Surface) SetGlobalAlpha(a float64) { s.alpha = math.Max(0, math.Min(1, a)) }

// SetShadow only records whether a glow is wanted; glowing shapes are drawn
// bold.
func (s *Surface) SetShadow(blur float64, _ color.Color) { s.blur = blur }

// Glyph picks the character for a circle of radius r in logical pixels.
func Glyph(r float64) rune {
	switch {
	case r < 1:
		return '·'
	case r < 2:
		return '•'
	}
	return '●'
}

func (s *Surface) FillCircle(x, y, r float64, clr color.Color) {
	cx, cy := s.cell(x, y)
	if !s.inside(cx, cy) {
		return
	}
	style := baseStyle.Foreground(Dim(clr, s.alpha)).Bold(s.blur > 0)
	s.screen.SetContent(cx, cy, Glyph(r*s.scale), nil, style)
}

// StrokeLine rasterises the segment over cells, leaving cells that already
// hold a shape untouched.
func (s *Surface) StrokeLine(x1, y1, x2, y2, _ float64, clr color.Color) {
	style := baseStyle.Foreground(Dim(clr, s.alpha))
	ax, ay := s.cell(x1, y1)
	bx, by := s.cell(x2, y2)
	for _, p := range Line(ax, ay, bx, by) {
		if !s.inside(p[0], p[1]) {
			continue
		}
		if r, _, _, _ := s.screen.GetContent(p[0], p[1]); r != ' ' {
			continue
		}
		s.screen.SetContent(p[0], p[1], '.', nil, style)
	}
}

// Line returns the cells of a Bresenham line from (x0, y0) to (x1, y1),
// both ends included.
func Line(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	var pts [][2]int
	e := dx + dy
	for {
		pts = append(pts, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dim scales the colour toward black by a and by its own alpha.
func Dim(clr color.Color, a float64) tcell.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	k := math.Max(0, math.Min(1, a)) * float64(n.A) / 255
	return tcell.NewRGBColor(
		int32(math.Round(float64(n.R)*k)),
		int32(math.Round(float64(n.G)*k)),
		int32(math.Round(float64(n.B)*k)),
	)
}
