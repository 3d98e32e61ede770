package backdrop

import "log"

// Effect is one background animation: it owns its particle store, advances
// it once per frame and paints it.
type Effect interface {
	// Reset discards the whole store and seeds a fresh one for a w x h canvas.
	Reset(w, h float64)
	Step(t Tick)
	Render(s Surface)
}

// PointerAware effects receive canvas-local pointer positions.
type PointerAware interface {
	Pointer(x, y float64)
}

// Host supplies the canvas and viewport signals. Listener registration
// returns a function that removes the listener again.
type Host interface {
	Viewport() Viewport
	// Canvas resizes the backing store for v and returns its surface, or nil
	// while the canvas does not exist yet.
	Canvas(v Viewport) Surface
	OnResize(fn func(Viewport)) (remove func())
	// OnPointerMove reports client coordinates and the canvas origin.
	OnPointerMove(fn func(clientX, clientY, originX, originY float64)) (remove func())
}

// Animator binds one Effect to a Host and runs it on a Loop.
type Animator struct {
	name    string
	host    Host
	effect  Effect
	loop    *Loop
	surface Surface
	view    Viewport
	removes []func()
	mounted bool
}

func NewAnimator(name string, host Host, driver Driver, effect Effect) *Animator {
	a := &Animator{name: name, host: host, effect: effect}
	a.loop = NewLoop(driver, a.frame)
	return a
}

func (a *Animator) Mount() {
	if a.mounted {
		return
	}
	a.mounted = true
	log.Printf("[Backdrop] %s initializing", a.name)

	a.resize(a.host.Viewport())

	a.removes = append(a.removes, a.host.OnResize(a.resize))
	if pa, ok := a.effect.(PointerAware); ok {
		a.removes = append(a.removes, a.host.OnPointerMove(func(cx, cy, ox, oy float64) {
			pa.Pointer(cx-ox, cy-oy)
		}))
	}
}

// Unmount stops the loop and releases every listener. It is idempotent.
func (a *Animator) Unmount() {
	if !a.mounted {
		return
	}
	a.mounted = false
	a.loop.Cancel()
	for _, remove := range a.removes {
		remove()
	}
	a.removes = nil
}

func (a *Animator) Mounted() bool { return a.mounted }

func (a *Animator) Frames() uint64 { return a.loop.Frames() }

func (a *Animator) Viewport() Viewport { return a.view }

// resize always performs a full cancel, reinit and restart so no frame sees
// a half-replaced store.
func (a *Animator) resize(v Viewport) {
	a.loop.Cancel()
	a.view = v

	a.surface = a.host.Canvas(v)
	if a.surface == nil {
		log.Printf("[Backdrop] %s canvas not available", a.name)
	} else {
		a.surface.SetTransform(v.Ratio())
		a.effect.Reset(v.Width, v.Height)
	}
	a.loop.Start()
}

func (a *Animator) frame(t Tick) {
	if a.surface == nil {
		return
	}
	a.surface.ClearRect(0, 0, a.view.Width, a.view.Height)
	a.effect.Step(t)
	a.effect.Render(a.surface)
}
