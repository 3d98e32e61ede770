package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/folio/internal/portfolio"
)

const (
	navHeight      = 32
	progressHeight = 3
	glyphWidth     = 6
	glyphHeight    = 16
)

var (
	backgroundColor = color.NRGBA{R: 11, G: 15, B: 25, A: 255}
	textColor       = color.NRGBA{R: 230, G: 237, B: 243, A: 255}
	mutedColor      = color.NRGBA{R: 139, G: 148, B: 158, A: 255}
	cyanColor       = color.NRGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 255}
	violetColor     = color.NRGBA{R: 0xa7, G: 0x8b, B: 0xfa, A: 255}
	navColor        = color.NRGBA{R: 11, G: 15, B: 25, A: 210}
)

// rowScale is the text magnification per row kind.
func rowScale(k portfolio.RowKind) float64 {
	switch k {
	case portfolio.RowTitle:
		return 2.5
	case portfolio.RowHeading:
		return 1.5
	}
	return 1
}

// spriteCache renders debug-font strings once and reuses the images.
type spriteCache struct {
	images map[string]*ebiten.Image
}

func newSpriteCache() *spriteCache {
	return &spriteCache{images: map[string]*ebiten.Image{}}
}

func (c *spriteCache) get(s string) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	w := len([]rune(s)) * glyphWidth
	img := ebiten.NewImage(max(w, 1), glyphHeight)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	c.images[s] = img
	return img
}

// text draws s at (x, y) scaled and tinted. The debug font is white so the
// colour scale tints it directly.
func (g *Game) text(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, alpha float64) {
	if s == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(g.sprites.get(s), op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.host.canvas != nil {
		screen.DrawImage(g.host.canvas.img, nil)
	}

	g.pageLayer.Clear()
	g.drawRows(g.pageLayer)
	g.drawNav(g.pageLayer)
	g.drawScrollProgress(g.pageLayer)
	g.drawStatus(g.pageLayer)
	if g.loading > 0 {
		g.drawLoading(g.pageLayer)
	}

	op := &ebiten.DrawImageOptions{}
	r := g.host.view.Ratio()
	op.GeoM.Scale(r, r)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.pageLayer, op)
}

func (g *Game) sectionAlpha(anchor string) float64 {
	if anchor == "hero" {
		return 1
	}
	return clamp01(float64(g.revealAge[anchor]) / float64(revealDuration))
}

func (g *Game) drawRows(dst *ebiten.Image) {
	top := g.scroll.Offset
	viewH := g.host.view.Height
	lh := pageMetrics.LineHeight

	for _, row := range g.page.Rows {
		y := row.Y - top
		if y+lh*rowScale(row.Kind) < navHeight || y > viewH {
			continue
		}
		alpha := g.sectionAlpha(row.Section)
		if alpha == 0 {
			continue
		}
		// sections slide up slightly while they fade in
		y += (1 - alpha) * 20

		switch row.Kind {
		case portfolio.RowTitle:
			g.drawTitle(dst, g.title.Text(), row.X, y)
		case portfolio.RowSubtitle:
			g.text(dst, g.subtitle.Text(), row.X, y, 1, mutedColor, 1)
		case portfolio.RowHeading:
			g.text(dst, row.Text, row.X, y, rowScale(row.Kind), cyanColor, alpha)
		case portfolio.RowCardTitle:
			g.text(dst, row.Text, row.X, y, 1, violetColor, alpha)
		case portfolio.RowMuted:
			g.text(dst, row.Text, row.X, y, 1, mutedColor, alpha)
		case portfolio.RowSkill:
			g.drawSkillIcon(dst, row, y, alpha)
			g.text(dst, row.Text, row.X, y, 1, textColor, alpha)
		case portfolio.RowButton:
			g.drawButton(dst, row, y, alpha)
		case portfolio.RowLink:
			clr := cyanColor
			if g.hover == row.Action {
				clr = violetColor
			}
			g.text(dst, row.Text, row.X, y, 1, clr, alpha)
		default:
			clr := textColor
			if row.Action != "" && g.hover == row.Action {
				clr = cyanColor
			}
			g.text(dst, row.Text, row.X, y, 1, clr, alpha)
		}
	}
}

// drawTitle paints the typed name rune by rune along a shifting
// cyan-violet gradient, followed by a blinking caret while typing.
func (g *Game) drawTitle(dst *ebiten.Image, typed string, x, y float64) {
	scale := rowScale(portfolio.RowTitle)
	for i, r := range []rune(typed) {
		hue := gradientHue(g.colorPhase, float64(i)*0.15)
		cr, cg, cb := hsvToRgb(hue, 0.75, 0.95)
		// title-float: a gentle bob
		bob := math.Sin(g.colorPhase*0.5+float64(i)*0.3) * 1.5
		g.text(dst, string(r), x+float64(i)*glyphWidth*scale, y+bob, scale, color.NRGBA{R: cr, G: cg, B: cb, A: 255}, 1)
	}
	// the caret flares with each key click
	level := g.clicker.Level()
	if !g.title.Done() && (level > 0 || int(g.colorPhase*4)%2 == 0) {
		clr := textColor
		if level > 0 {
			clr = cyanColor
		}
		g.text(dst, "_", x+float64(len([]rune(typed)))*glyphWidth*scale, y, scale, clr, 0.6+0.4*level)
	}
}

func (g *Game) drawSkillIcon(dst *ebiten.Image, row portfolio.Row, y, alpha float64) {
	slot := portfolio.IconSlot * pageMetrics.CharWidth
	x := row.X - slot
	icon := g.icons.Lookup(row.Icon)
	if icon.Fallback() {
		scale := math.Min(1, (slot-pageMetrics.CharWidth)/float64(len(icon.Label)*glyphWidth))
		g.text(dst, icon.Label, x, y+(1-scale)*glyphHeight/2, scale, mutedColor, alpha)
		return
	}
	img := g.iconImage(row.Icon, icon)
	b := img.Bounds()
	size := pageMetrics.LineHeight - 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(x, y+1)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (g *Game) iconImage(name string, icon portfolio.Icon) *ebiten.Image {
	key := "icon:" + name
	if img, ok := g.sprites.images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(icon.Image)
	g.sprites.images[key] = img
	return img
}

func (g *Game) drawButton(dst *ebiten.Image, row portfolio.Row, y, alpha float64) {
	w := row.Width(pageMetrics.CharWidth) + 8
	h := pageMetrics.LineHeight + 4
	bg := color.NRGBA{R: 6, G: 182, B: 212, A: uint8(70 * alpha)}
	if g.hover == row.Action {
		bg = color.NRGBA{R: 167, G: 139, B: 250, A: uint8(120 * alpha)}
	}
	vector.DrawFilledRect(dst, float32(row.X-4), float32(y-2), float32(w), float32(h), bg, false)
	vector.StrokeRect(dst, float32(row.X-4), float32(y-2), float32(w), float32(h), 1, withAlpha(cyanColor, alpha), false)
	g.text(dst, row.Text, row.X, y, 1, textColor, alpha)
}

func (g *Game) drawNav(dst *ebiten.Image) {
	w := g.host.view.Width
	vector.DrawFilledRect(dst, 0, 0, float32(w), navHeight, navColor, false)
	g.text(dst, g.content.Hero.Initials, pageMetrics.Margin, 8, 1, cyanColor, 1)

	for i, item := range g.navItems() {
		clr := textColor
		if g.hover == "#"+g.content.Nav[i].Anchor {
			clr = cyanColor
		}
		g.text(dst, item.label, item.x, 8, 1, clr, 1)
	}
}

type navItem struct {
	label string
	x     float64
}

// navItems lays the navigation labels out right-aligned.
func (g *Game) navItems() []navItem {
	items := make([]navItem, len(g.content.Nav))
	x := g.host.view.Width - pageMetrics.Margin
	for i := len(g.content.Nav) - 1; i >= 0; i-- {
		label := g.content.Nav[i].Label
		x -= float64(len(label) * glyphWidth)
		items[i] = navItem{label: label, x: x}
		x -= 3 * glyphWidth
	}
	return items
}

func (g *Game) drawScrollProgress(dst *ebiten.Image) {
	w := g.host.view.Width * g.scroll.Progress() / 100
	if w <= 0 {
		return
	}
	cr, cg, cb := hsvToRgb(gradientHue(g.colorPhase, 0), 0.8, 0.9)
	vector.DrawFilledRect(dst, 0, 0, float32(w), progressHeight, color.NRGBA{R: cr, G: cg, B: cb, A: 255}, false)
}

func (g *Game) drawStatus(dst *ebiten.Image) {
	if g.status == "" {
		return
	}
	fade := 1 - clamp01((float64(g.statusAge)-float64(statusDuration)*0.8)/(float64(statusDuration)*0.2))
	y := g.host.view.Height - 28
	w := float64(len(g.status)*glyphWidth) + 16
	vector.DrawFilledRect(dst, float32(pageMetrics.Margin-8), float32(y-4), float32(w), 24, color.NRGBA{A: uint8(200 * fade)}, false)
	g.text(dst, g.status, pageMetrics.Margin, y, 1, textColor, fade)
}

// drawLoading shows the startup spinner, fading out over its last 400ms.
func (g *Game) drawLoading(dst *ebiten.Image) {
	v := g.host.view
	fade := clamp01(float64(g.loading) / float64(400*time.Millisecond))
	vector.DrawFilledRect(dst, 0, 0, float32(v.Width), float32(v.Height), withAlpha(backgroundColor, fade), false)

	cx, cy := v.Width/2, v.Height/2
	const dots = 12
	for i := 0; i < dots; i++ {
		angle := float64(i)*2*math.Pi/dots + g.colorPhase*3
		a := float64(i+1) / dots
		x := cx + math.Cos(angle)*20
		y := cy + math.Sin(angle)*20
		vector.DrawFilledCircle(dst, float32(x), float32(y), 3, withAlpha(cyanColor, a*fade), true)
	}
}

// actionAt returns the action under the cursor, if any.
func (g *Game) actionAt(x, y float64) string {
	if y < navHeight {
		for i, item := range g.navItems() {
			if x >= item.x && x <= item.x+float64(len(item.label)*glyphWidth) {
				return "#" + g.content.Nav[i].Anchor
			}
		}
		return ""
	}
	py := y + g.scroll.Offset
	for _, row := range g.page.Rows {
		if row.Action == "" || !g.scroll.Revealed(row.Section) && row.Section != "hero" {
			continue
		}
		h := pageMetrics.LineHeight * rowScale(row.Kind)
		if py >= row.Y && py < row.Y+h && x >= row.X-4 && x <= row.X+row.Width(pageMetrics.CharWidth)+4 {
			return row.Action
		}
	}
	return ""
}
