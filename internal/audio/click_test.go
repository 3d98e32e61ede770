package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestNewClick_IsFiniteAndQuiet(t *testing.T) {
	s := NewClick(SampleRate, rand.New(rand.NewSource(1)))
	buf := make([][2]float64, 256)

	total := 0
	peakStart, peakEnd := 0.0, 0.0
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			if buf[i][0] != buf[i][1] {
				t.Fatal("channels differ")
			}
			v := math.Abs(buf[i][0])
			if v > clickVolume {
				t.Fatalf("sample %v exceeds volume %v", v, clickVolume)
			}
			if total+i < 50 {
				peakStart = math.Max(peakStart, v)
			}
			peakEnd = v
		}
		total += n
		if total > SampleRate.N(time.Second) {
			t.Fatal("click never ended")
		}
	}

	if want := SampleRate.N(clickLength); total != want {
		t.Errorf("expected %d samples, got %d", want, total)
	}
	if peakEnd >= peakStart {
		t.Errorf("click should decay: start peak %v, last sample %v", peakStart, peakEnd)
	}
}

func TestClicker_DisabledIsNoop(t *testing.T) {
	c := NewClicker(false, 1)
	c.Click()
	c.Close()
	if c.initDone {
		t.Error("disabled clicker must not open the speaker")
	}
}
