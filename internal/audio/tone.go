package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a fixed-length oscillator whose pitch slides linearly from
// freq to endFreq and whose amplitude decays to zero.
type tone struct {
	freq, endFreq float64
	wave          Wave
	rate          beep.SampleRate
	phase         float64
	pos, total    int
}

func newTone(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{
		freq:    freq,
		endFreq: endFreq,
		wave:    wave,
		rate:    rate,
		total:   rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		f := t.freq + (t.endFreq-t.freq)*progress
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Streamer builds the sound of a cue at the given linear volume.
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueJump:
		s = newTone(330, 660, 90*time.Millisecond, WaveSine, rate)
	case CueEnhancedJump:
		s = newTone(440, 1320, 140*time.Millisecond, WaveSine, rate)
	case CuePickup:
		s = beep.Seq(
			newTone(880, 880, 60*time.Millisecond, WaveSine, rate),
			newTone(1320, 1320, 90*time.Millisecond, WaveSine, rate),
		)
	case CueCrash:
		s = newTone(220, 55, 350*time.Millisecond, WaveSquare, rate)
	default:
		return beep.Silence(0)
	}

	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
