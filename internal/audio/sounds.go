package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Note frequencies in Hz.
const (
	NoteC5 = 523.25
	NoteG5 = 783.99
	NoteA5 = 880.00
)

// Note lengths at 120 BPM.
const (
	Eighth    = 250 * time.Millisecond
	Sixteenth = 125 * time.Millisecond
)

// Patch describes one synthesized sound effect.
type Patch struct {
	Name string
	Wave Wave
	Freq float64
	Hold time.Duration
	Env  Envelope
}

// Length is the full duration including the release tail.
func (p Patch) Length() time.Duration {
	return p.Hold + p.Env.Release
}

// Stream renders the patch at rate and volume.
func (p Patch) Stream(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(p.Freq, p.Length(), p.Wave, rate)
	return newVolume(NewEnveloped(osc, p.Env, p.Hold, rate), volume)
}

var (
	JumpPatch = Patch{
		Name: "jump",
		Wave: WaveSine,
		Freq: NoteC5,
		Hold: Eighth,
		Env:  Envelope{Attack: 5 * time.Millisecond, Decay: 100 * time.Millisecond, Sustain: 0.01, Release: 100 * time.Millisecond},
	}
	ScorePatch = Patch{
		Name: "score",
		Wave: WaveTriangle,
		Freq: NoteA5,
		Hold: Sixteenth,
		Env:  Envelope{Attack: 10 * time.Millisecond, Decay: 50 * time.Millisecond, Sustain: 0, Release: 100 * time.Millisecond},
	}
	GameOverPatch = Patch{
		Name: "gameover",
		Wave: WaveBrownNoise,
		Hold: Sixteenth,
		Env:  Envelope{Attack: 10 * time.Millisecond, Decay: 300 * time.Millisecond, Sustain: 0, Release: 100 * time.Millisecond},
	}
	PowerUpPatch = Patch{
		Name: "powerup",
		Wave: WaveSaw,
		Freq: NoteG5,
		Hold: Eighth,
		Env:  Envelope{Attack: 10 * time.Millisecond, Decay: 200 * time.Millisecond, Sustain: 0.1, Release: 200 * time.Millisecond},
	}
)
