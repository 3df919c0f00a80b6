// Package audio plays short synthesized sound effects for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

const sampleRate = beep.SampleRate(44100)

// Player reacts to game events with sound.
type Player interface {
	HandleEvents(events []invaders.Event)
	Close()
}

// Mute is a Player that plays nothing.
type Mute struct{}

func (Mute) HandleEvents([]invaders.Event) {}
func (Mute) Close()                        {}

// SoundManager mixes effects into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. Volume is linear, 1 is unchanged.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// HandleEvents queues one effect per audible event.
// At most one shot sound is queued per call.
func (sm *SoundManager) HandleEvents(events []invaders.Event) {
	if len(events) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streams []beep.Streamer
	fired := false
	for _, e := range events {
		if e.Kind == invaders.EventFired {
			if fired {
				continue
			}
			fired = true
		}
		if s := EffectFor(e.Kind, sampleRate, sm.volume); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) == 0 {
		return
	}

	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	sm.mixer.Add(streams...)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
