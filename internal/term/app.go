package term

import (
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/folio/internal/audio"
	"github.com/iburimskiy/folio/internal/backdrop"
	"github.com/iburimskiy/folio/internal/backdrop/effects"
	"github.com/iburimskiy/folio/internal/config"
	"github.com/iburimskiy/folio/internal/portfolio"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	titleStyle    = baseStyle.Foreground(tcell.NewRGBColor(0x06, 0xb6, 0xd4)).Bold(true)
	subtitleStyle = baseStyle.Foreground(tcell.NewRGBColor(139, 148, 158))
	hintStyle     = baseStyle.Foreground(tcell.NewRGBColor(70, 76, 84))
)

// App is the terminal host: it implements backdrop.Host over a tcell screen
// and runs every frame on the event loop goroutine.
type App struct {
	screen   tcell.Screen
	surface  *Surface
	frames   *backdrop.FrameQueue
	animator *backdrop.Animator

	resize  map[int]func(backdrop.Viewport)
	pointer map[int]func(cx, cy, ox, oy float64)
	nextID  int

	title    *portfolio.Typewriter
	subtitle *portfolio.Typewriter
	clicker  *audio.Clicker
	last     time.Duration
}

// New builds the app on an initialised screen.
func New(screen tcell.Screen, cfg *config.Config, content *portfolio.Content) (*App, error) {
	effect, err := effects.New(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{
		screen:   screen,
		surface:  NewSurface(screen),
		frames:   backdrop.NewFrameQueue(),
		resize:   map[int]func(backdrop.Viewport){},
		pointer:  map[int]func(cx, cy, ox, oy float64){},
		title:    portfolio.NewTypewriter(content.Hero.Name, config.TitleTypingMs*time.Millisecond),
		subtitle: portfolio.NewTypewriter(content.Hero.Subtitle, config.SubtitleTypingMs*time.Millisecond),
		clicker:  audio.NewClicker(cfg.Sound, cfg.Seed),
	}
	a.animator = backdrop.NewAnimator(cfg.Backdrop, a, a.frames, effect)
	return a, nil
}

// Viewport reports the screen in logical pixels.
func (a *App) Viewport() backdrop.Viewport {
	w, h := a.screen.Size()
	return backdrop.Viewport{Width: float64(w * CellWidth), Height: float64(h * CellHeight), PixelRatio: 1}
}

// Canvas returns the screen surface; tcell resizes its own cell buffer.
func (a *App) Canvas(backdrop.Viewport) backdrop.Surface { return a.surface }

func (a *App) OnResize(fn func(backdrop.Viewport)) func() {
	a.nextID++
	id := a.nextID
	a.resize[id] = fn
	return func() { delete(a.resize, id) }
}

func (a *App) OnPointerMove(fn func(cx, cy, ox, oy float64)) func() {
	a.nextID++
	id := a.nextID
	a.pointer[id] = fn
	return func() { delete(a.pointer, id) }
}

// Listeners is the number of attached resize and pointer listeners.
func (a *App) Listeners() int { return len(a.resize) + len(a.pointer) }

func (a *App) Mount()   { a.animator.Mount() }
func (a *App) Unmount() { a.animator.Unmount() }

// HandleEvent processes one screen event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
	case *tcell.EventResize:
		a.screen.Sync()
		v := a.Viewport()
		for _, fn := range a.resize {
			fn(v)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		// centre of the cell in logical pixels
		cx := float64(x*CellWidth) + CellWidth/2
		cy := float64(y*CellHeight) + CellHeight/2
		for _, fn := range a.pointer {
			fn(cx, cy, 0, 0)
		}
	case *tcell.EventInterrupt:
		if now, ok := ev.Data().(time.Duration); ok {
			a.Frame(now)
		}
	}
	return true
}

// Frame runs one display frame at now and paints the hero text over it.
func (a *App) Frame(now time.Duration) {
	a.frames.Pump(now)

	dt := now - a.last
	a.last = now
	typed := a.title.Advance(dt)
	if a.title.Done() {
		typed += a.subtitle.Advance(dt)
	}
	if typed > 0 {
		a.clicker.Click()
	}

	a.drawHero()
	a.screen.Show()
}

func (a *App) drawHero() {
	w, h := a.screen.Size()
	row := h/2 - 1
	title := a.title.Text()
	if !a.title.Done() {
		title += "_"
	}
	a.centre(row, title, titleStyle)
	a.centre(row+2, a.subtitle.Text(), subtitleStyle)
	hint := "esc to quit"
	a.put(w-len(hint)-1, h-1, hint, hintStyle)
}

func (a *App) centre(row int, s string, style tcell.Style) {
	w, _ := a.screen.Size()
	a.put((w-len([]rune(s)))/2, row, s, style)
}

func (a *App) put(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Run drives the app until the user quits. Frames are posted as interrupt
// events so they are serialised with input on one goroutine.
func (a *App) Run() error {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.SetStyle(baseStyle)
	a.screen.Clear()

	a.Mount()
	defer a.Unmount()
	defer a.clicker.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		start := time.Now()
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// a full queue just drops the frame
				_ = a.screen.PostEvent(tcell.NewEventInterrupt(time.Since(start)))
			}
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
	}
}

// Run opens the terminal and blocks until the user quits. Logging is
// silenced while the screen is active.
func Run(cfg *config.Config, content *portfolio.Content) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	app, err := New(screen, cfg, content)
	if err != nil {
		return err
	}
	log.Printf("[Term] running %s backdrop", cfg.Backdrop)
	if err := screen.Init(); err != nil {
		return err
	}

	out := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(out)
	defer screen.Fini()

	return app.Run()
}
