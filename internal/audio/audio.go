// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/teatime-runner/internal/runner"
)

const sampleRate = beep.SampleRate(44100)

// initSpeaker opens the output device.
var initSpeaker = speaker.Init

// Cue is a sound effect.
type Cue uint8

const (
	CueNone Cue = iota
	CueJump
	CueEnhancedJump
	CuePickup
	CueCrash
)

// CueFor maps a game event to its sound, or CueNone.
func CueFor(ev runner.Event) Cue {
	switch ev.Type {
	case runner.EventJump:
		if ev.Enhanced {
			return CueEnhancedJump
		}
		return CueJump
	case runner.EventPickup:
		return CuePickup
	case runner.EventRoundEnd:
		return CueCrash
	default:
		return CueNone
	}
}

// Player mixes cues onto the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player. Volume is linear, 0 mutes and 1 is full scale.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := initSpeaker(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue. It does nothing before Init or for CueNone.
func (p *Player) Play(c Cue) {
	if c == CueNone {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := Streamer(c, sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvent plays the cue of a game event; it fits runner.Options.OnEvent.
func (p *Player) HandleEvent(ev runner.Event) {
	p.Play(CueFor(ev))
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
