package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewSweep(1000, 200, 100*time.Millisecond, rate)

	total, peak := drain(t, s)
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("sweep streamed %d samples, expected %d", total, rate.N(100*time.Millisecond))
	}
	if peak > 1 || peak == 0 {
		t.Errorf("peak amplitude %v outside (0, 1]", peak)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestNoiseDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewNoise(200*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(200*time.Millisecond))
	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}

	var head, tail float64
	for i := range 100 {
		head += buf[i][0] * buf[i][0]
		tail += buf[n-1-i][0] * buf[n-1-i][0]
	}
	if tail >= head {
		t.Errorf("noise should decay: head energy %v, tail energy %v", head, tail)
	}

	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted noise returned %d, %v", n, ok)
	}
}

func TestEffectForEvents(t *testing.T) {
	rate := beep.SampleRate(8000)
	kinds := []invaders.EventKind{
		invaders.EventFired,
		invaders.EventUnitsDestroyed,
		invaders.EventLifeLost,
		invaders.EventLevelAdvanced,
		invaders.EventGameStarted,
		invaders.EventGameOver,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := EffectFor(kind, rate, 1)
			if s == nil {
				t.Fatal("expected a sound")
			}
			total, peak := drain(t, s)
			if total == 0 {
				t.Error("effect produced no samples")
			}
			if peak > 1.0001 {
				t.Errorf("effect clips: peak %v", peak)
			}
		})
	}

	if EffectFor(invaders.EventKind(99), rate, 1) != nil {
		t.Error("unknown event should be silent")
	}
}

func TestEffectMutedVolume(t *testing.T) {
	s := EffectFor(invaders.EventFired, beep.SampleRate(8000), 0)
	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("zero volume should be silent, peak %v", peak)
	}
}

func TestUninitializedManagerIgnoresEvents(t *testing.T) {
	sm := NewSoundManager(1)
	// Must not touch the speaker before Initialize.
	sm.HandleEvents([]invaders.Event{{Kind: invaders.EventFired}})
	sm.Close()

	var p Player = Mute{}
	p.HandleEvents([]invaders.Event{{Kind: invaders.EventGameOver}})
	p.Close()
}
