// Package game is the windowed showcase: the backdrop animation on an
// offscreen canvas with the portfolio page drawn over it.
package game

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/folio/internal/audio"
	"github.com/iburimskiy/folio/internal/backdrop"
	"github.com/iburimskiy/folio/internal/backdrop/effects"
	"github.com/iburimskiy/folio/internal/config"
	"github.com/iburimskiy/folio/internal/portfolio"
)

const (
	frameDt = time.Second / 60

	wheelStep       = 48
	colorShiftSpeed = 0.03
	revealDuration  = 600 * time.Millisecond
	statusDuration  = 3 * time.Second
)

var pageMetrics = portfolio.Metrics{CharWidth: 6, LineHeight: 16, Margin: 32}

type Game struct {
	cfg     *config.Config
	content *portfolio.Content
	icons   *portfolio.IconSet

	// backdrop
	host     *host
	frames   *backdrop.FrameQueue
	animator *backdrop.Animator
	clock    time.Duration

	// page
	page       *portfolio.Page
	pageWidth  float64
	pageLayer  *ebiten.Image
	scroll     *portfolio.ScrollState
	title      *portfolio.Typewriter
	subtitle   *portfolio.Typewriter
	clicker    *audio.Clicker
	revealAge  map[string]time.Duration
	loading    time.Duration
	colorPhase float64
	sprites    *spriteCache
	hover      string

	// status line
	status    string
	statusAge time.Duration

	// input edge detection
	prevKey map[ebiten.Key]bool

	open func(string) error
}

func NewGame(cfg *config.Config, content *portfolio.Content) (*Game, error) {
	effect, err := effects.New(cfg)
	if err != nil {
		return nil, err
	}

	var icons *portfolio.IconSet
	if cfg.IconsDir != "" {
		icons = portfolio.NewIconSet(os.DirFS(cfg.IconsDir))
	} else {
		icons = portfolio.NewIconSet(nil)
	}

	dpr := ebiten.Monitor().DeviceScaleFactor()
	g := &Game{
		cfg:       cfg,
		content:   content,
		icons:     icons,
		host:      newHost(float64(cfg.Window.Width), float64(cfg.Window.Height), dpr),
		frames:    backdrop.NewFrameQueue(),
		scroll:    portfolio.NewScrollState(),
		title:     portfolio.NewTypewriter(content.Hero.Name, config.TitleTypingMs*time.Millisecond),
		subtitle:  portfolio.NewTypewriter(content.Hero.Subtitle, config.SubtitleTypingMs*time.Millisecond),
		clicker:   audio.NewClicker(cfg.Sound, cfg.Seed),
		revealAge: map[string]time.Duration{},
		loading:   config.LoadingMs * time.Millisecond,
		sprites:   newSpriteCache(),
		prevKey:   map[ebiten.Key]bool{},
		open:      openURL,
	}
	g.animator = backdrop.NewAnimator(cfg.Backdrop, g.host, g.frames, effect)
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if !g.animator.Mounted() {
		g.animator.Mount()
	}

	// Resize and pointer signals first, then one display frame.
	g.host.flush()
	g.clock += frameDt
	g.frames.Pump(g.clock)

	g.relayout()

	if g.loading > 0 {
		g.loading -= frameDt
	}
	g.colorPhase += colorShiftSpeed
	g.advanceTyping()

	if g.status != "" {
		g.statusAge += frameDt
		if g.statusAge > statusDuration {
			g.status = ""
		}
	}

	// Scrolling
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.scroll.ScrollBy(-wheelY * wheelStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.scroll.ScrollBy(8)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.scroll.ScrollBy(-8)
	}
	if justPressed(ebiten.KeyPageDown) {
		g.scroll.ScrollBy(g.host.view.Height * 0.9)
	}
	if justPressed(ebiten.KeyPageUp) {
		g.scroll.ScrollBy(-g.host.view.Height * 0.9)
	}
	if justPressed(ebiten.KeyHome) {
		g.jumpTo("hero")
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if justPressed(key) && i < len(g.content.Nav) {
			g.jumpTo(g.content.Nav[i].Anchor)
		}
	}
	g.scroll.Update(frameDt)
	g.scroll.Observe(g.page.Sections)
	for _, s := range g.page.Sections {
		if g.scroll.Revealed(s.Anchor) {
			g.revealAge[s.Anchor] += frameDt
		}
	}

	// Pointer actions
	mx, my := g.host.cursorCSS()
	g.hover = g.actionAt(mx, my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.hover != "" {
		g.trigger(g.hover)
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.animator.Unmount()
		g.clicker.Close()
		g.host.dispose()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) advanceTyping() {
	typed := g.title.Advance(frameDt)
	if g.title.Done() {
		typed += g.subtitle.Advance(frameDt)
	}
	if typed > 0 {
		g.clicker.Click()
	}
}

// relayout rebuilds the page when the viewport width changes.
func (g *Game) relayout() {
	v := g.host.view
	if g.page == nil || g.pageWidth != v.Width {
		g.page = portfolio.BuildPage(g.content, v.Width, pageMetrics)
		g.pageWidth = v.Width
	}
	g.scroll.SetBounds(g.page.Height, v.Height)

	w, h := int(v.Width), int(v.Height)
	if g.pageLayer == nil || g.pageLayer.Bounds().Dx() != w || g.pageLayer.Bounds().Dy() != h {
		if g.pageLayer != nil {
			g.pageLayer.Deallocate()
		}
		g.pageLayer = ebiten.NewImage(max(w, 1), max(h, 1))
	}
}

func (g *Game) jumpTo(anchor string) {
	if y, ok := g.page.Anchor(anchor); ok {
		g.scroll.ScrollTo(y - navHeight)
	}
}

func (g *Game) trigger(action string) {
	switch {
	case action == portfolio.ActionContactForm:
		if err := g.sendMessageDialog(); err != nil {
			g.setStatus("Something went wrong. Please try again. (" + err.Error() + ")")
		}
	case action == portfolio.ActionResume:
		if err := g.downloadResume(); err != nil {
			log.Printf("[Game] resume: %v", err)
			g.setStatus("Could not save the CV")
		}
	case len(action) > 1 && action[0] == '#':
		g.jumpTo(action[1:])
	default:
		g.openOrReport(action)
	}
}

func (g *Game) openOrReport(target string) {
	if err := g.open(target); err != nil {
		log.Printf("[Game] open %s: %v", target, err)
		g.setStatus("Could not open " + target)
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusAge = 0
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := ebiten.Monitor().DeviceScaleFactor()
	g.host.layout(outsideWidth, outsideHeight, dpr)
	v := backdrop.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight), PixelRatio: dpr}
	return v.BackingSize()
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, content *portfolio.Content) error {
	g, err := NewGame(cfg, content)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
