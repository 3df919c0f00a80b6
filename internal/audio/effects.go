package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Effect durations.
const (
	shotDuration      = 90 * time.Millisecond
	explosionDuration = 180 * time.Millisecond
	lifeLostDuration  = 450 * time.Millisecond
	noteDuration      = 110 * time.Millisecond
)

// sweep is a square wave whose frequency slides linearly from one pitch to
// another over a fixed number of samples.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweep creates a finite frequency sweep.
func NewSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{rate: rate, from: from, to: to, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		// Linear fade out
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is a decaying white noise burst.
type noise struct {
	rate  beep.SampleRate
	total int
	pos   int
	rng   *rand.Rand
}

// NewNoise creates a finite noise burst that decays exponentially.
func NewNoise(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x1f)),
	}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.rate)
		val := math.Exp(-t*18) * (g.rng.Float64()*2 - 1)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// tone returns a sine note of fixed length, or silence if freq is unusable.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return generators.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}

// melody plays notes back to back.
func melody(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, tone(f, noteDuration, rate))
	}
	return beep.Seq(notes...)
}

// withVolume scales a streamer linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// EffectFor returns the sound for a game event, or nil if the event is silent.
func EffectFor(kind invaders.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case invaders.EventFired:
		s = withVolume(NewSweep(1400, 500, shotDuration, rate), 0.25)
	case invaders.EventUnitsDestroyed:
		s = withVolume(NewNoise(explosionDuration, rate), 0.6)
	case invaders.EventLifeLost:
		s = withVolume(NewSweep(400, 60, lifeLostDuration, rate), 0.5)
	case invaders.EventLevelAdvanced:
		s = melody(rate, 523.25, 659.25, 783.99, 1046.5)
	case invaders.EventGameStarted:
		s = melody(rate, 392, 523.25)
	case invaders.EventGameOver:
		s = melody(rate, 392, 329.63, 261.63, 196)
	default:
		return nil
	}
	return withVolume(s, volume)
}
