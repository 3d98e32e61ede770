package backdrop

import "time"

// Tick describes one display frame. Now is measured from the first frame the
// loop ever ran, so restarts after a resize keep a continuous clock.
type Tick struct {
	Frame uint64
	Now   time.Duration
}

// Millis returns Now in fractional milliseconds.
func (t Tick) Millis() float64 {
	return float64(t.Now) / float64(time.Millisecond)
}

type FrameID uint64

type FrameFunc func(now time.Duration)

// Driver schedules a single callback for the next display refresh.
type Driver interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type queuedFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a Driver pumped by the host once per refresh. Callbacks
// requested while a pump is in progress run on the following pump.
type FrameQueue struct {
	next    FrameID
	queue   []queuedFrame
	running []queuedFrame
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	q.queue = append(q.queue, queuedFrame{id: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.queue {
		if q.queue[i].id == id {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Pump runs every callback queued before the call and returns how many ran.
func (q *FrameQueue) Pump(now time.Duration) int {
	q.running, q.queue = q.queue, nil
	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn(now)
		ran++
	}
	q.running = q.running[:0]
	return ran
}

// Pending reports how many callbacks wait for the next pump.
func (q *FrameQueue) Pending() int {
	return len(q.queue)
}

// Loop is the frame scheduler: each frame reschedules the next one from
// inside its own callback until Cancel is called.
type Loop struct {
	driver  Driver
	frame   func(Tick)
	pending FrameID
	running bool
	started bool
	origin  time.Duration
	frames  uint64
}

func NewLoop(d Driver, frame func(Tick)) *Loop {
	return &Loop{driver: d, frame: frame}
}

func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.pending = l.driver.RequestFrame(l.run)
}

// Cancel drops the pending frame. Calling it with nothing pending is a no-op.
func (l *Loop) Cancel() {
	l.running = false
	if l.pending != 0 {
		l.driver.CancelFrame(l.pending)
		l.pending = 0
	}
}

func (l *Loop) Running() bool { return l.running }

// Frames returns how many frames have run since the loop was created.
func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) run(now time.Duration) {
	l.pending = 0
	if !l.running {
		return
	}
	if !l.started {
		l.origin = now
		l.started = true
	}
	l.frames++
	l.frame(Tick{Frame: l.frames, Now: now - l.origin})

	if l.running && l.pending == 0 {
		l.pending = l.driver.RequestFrame(l.run)
	}
}
