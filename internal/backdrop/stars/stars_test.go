package stars

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/folio/internal/backdrop"
	"github.com/iburimskiy/folio/internal/backdrop/backdroptest"
)

func TestOptions_Count(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		w, h float64
		want int
	}{
		{1, 1, 80},
		{800, 600, 80},    // 72, clamped up
		{1024, 640, 98},   // 98.3
		{1920, 1080, 300}, // 311, clamped down
		{1600, 1200, 288},
		{4000, 4000, 300},
	}

	for _, tt := range tests {
		if got := opts.Count(tt.w, tt.h); got != tt.want {
			t.Errorf("Count(%v, %v) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestOptions_CountMatchesFormula(t *testing.T) {
	opts := DefaultOptions()
	src := backdrop.NewSource(1)
	for i := 0; i < 500; i++ {
		w := 1 + src.Float64()*5000
		h := 1 + src.Float64()*5000
		want := int(math.Floor(w * h * 0.00015))
		if want < 80 {
			want = 80
		}
		if want > 300 {
			want = 300
		}
		got := opts.Count(w, h)
		if got != want || got < 80 || got > 300 {
			t.Fatalf("Count(%v, %v) = %d, want %d", w, h, got, want)
		}
	}
}

func TestField_ResetRanges(t *testing.T) {
	f := New(DefaultOptions(), backdrop.NewSource(42))
	f.Reset(1920, 1080)

	if len(f.Stars()) != 300 {
		t.Fatalf("expected 300 stars, got %d", len(f.Stars()))
	}
	for i, s := range f.Stars() {
		if s.Radius < 0.3 || s.Radius > 1.7 {
			t.Errorf("star %d radius %v out of range", i, s.Radius)
		}
		if s.Speed < 0.2 || s.Speed > 1.0 {
			t.Errorf("star %d speed %v out of range", i, s.Speed)
		}
		if s.Alpha < 0.4 || s.Alpha > 1.0 {
			t.Errorf("star %d alpha %v out of range", i, s.Alpha)
		}
		if s.X < 0 || s.X > 1920 || s.Y < 0 || s.Y > 1080 {
			t.Errorf("star %d spawned outside the canvas at (%v, %v)", i, s.X, s.Y)
		}
	}
}

func TestField_SameSeedSameField(t *testing.T) {
	a := New(DefaultOptions(), backdrop.NewSource(9))
	b := New(DefaultOptions(), backdrop.NewSource(9))
	a.Reset(1024, 640)
	b.Reset(1024, 640)

	for i := range a.Stars() {
		if *a.Stars()[i] != *b.Stars()[i] {
			t.Fatalf("star %d differs between equal seeds", i)
		}
	}
}

func TestField_StepWrapsToTop(t *testing.T) {
	f := New(DefaultOptions(), backdrop.NewSource(3))
	f.Reset(400, 300)

	for frame := uint64(1); frame <= 2000; frame++ {
		f.Step(backdrop.Tick{Frame: frame, Now: time.Duration(frame) * time.Second / 60})
		for i, s := range f.Stars() {
			if s.Y-s.Radius > 300 {
				t.Fatalf("frame %d: star %d escaped below the canvas (y=%v r=%v)", frame, i, s.Y, s.Radius)
			}
			if s.Shown < 0.2 || s.Shown > 1.0 {
				t.Fatalf("frame %d: star %d shown alpha %v out of [0.2, 1]", frame, i, s.Shown)
			}
		}
	}
}

func TestField_WrapResamples(t *testing.T) {
	f := New(DefaultOptions(), backdrop.NewSource(5))
	f.Reset(400, 300)
	s := f.Stars()[0]
	s.Y = 300 + s.Radius + 0.01
	s.Speed = 0.5

	f.Step(backdrop.Tick{Frame: 1})

	if s.Y != -s.Radius {
		t.Errorf("expected y reset to -radius, got y=%v r=%v", s.Y, s.Radius)
	}
	if s.Speed < 0.2 || s.Speed > 1.0 || s.Radius < 0.3 || s.Radius > 1.7 {
		t.Errorf("wrapped star was not resampled into range: %+v", *s)
	}
}

func TestTwinkle(t *testing.T) {
	if got := twinkle(0, 0); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("twinkle(0, 0) = %v, want 0.25", got)
	}
	peak := math.Pi / 2 / 0.002
	if got := twinkle(peak, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("twinkle at peak = %v, want 0.5", got)
	}
}

func TestField_ResizeReplacesStore(t *testing.T) {
	f := New(DefaultOptions(), backdrop.NewSource(11))
	f.Reset(800, 600)
	old := map[*Star]bool{}
	for _, s := range f.Stars() {
		old[s] = true
	}

	f.Reset(1600, 1200)
	if len(f.Stars()) != DefaultOptions().Count(1600, 1200) {
		t.Errorf("expected %d stars, got %d", DefaultOptions().Count(1600, 1200), len(f.Stars()))
	}
	for i, s := range f.Stars() {
		if old[s] {
			t.Fatalf("star %d survived the resize", i)
		}
	}
}

func TestField_ResizeThroughAnimator(t *testing.T) {
	host := backdroptest.NewHost(800, 600, 1)
	q := backdrop.NewFrameQueue()
	f := New(DefaultOptions(), backdrop.NewSource(2))
	a := backdrop.NewAnimator("stars", host, q, f)
	a.Mount()
	q.Pump(0)

	before := append([]*Star(nil), f.Stars()...)
	host.Resize(1600, 1200)
	q.Pump(time.Second / 60)

	if len(before) != 80 || len(f.Stars()) != 288 {
		t.Errorf("expected 80 then 288 stars, got %d then %d", len(before), len(f.Stars()))
	}
	for _, old := range before {
		for _, s := range f.Stars() {
			if old == s {
				t.Fatal("old star reused after resize")
			}
		}
	}
}

func TestField_Render(t *testing.T) {
	f := New(DefaultOptions(), backdrop.NewSource(8))
	f.Reset(800, 600)
	f.Step(backdrop.Tick{Frame: 1})

	rec := backdroptest.NewRecorder()
	f.Render(rec)

	if len(rec.Circles) != len(f.Stars()) {
		t.Fatalf("expected a circle per star, got %d", len(rec.Circles))
	}
	for i, c := range rec.Circles {
		s := f.Stars()[i]
		if c.X != s.X || c.Y != s.Y || c.R != s.Radius || c.Alpha != s.Shown {
			t.Errorf("circle %d does not match star: %+v vs %+v", i, c, *s)
		}
		if c.Blur != 6 {
			t.Errorf("expected glow blur 6, got %v", c.Blur)
		}
	}
}
