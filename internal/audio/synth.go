// Package audio synthesizes the runner's sound effects with beep.
// Every sound is generated on the fly; there are no sample files.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSaw
	WaveBrownNoise
)

// String returns the wave name.
func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	case WaveSaw:
		return "sawtooth"
	case WaveBrownNoise:
		return "brown"
	default:
		return "unknown"
	}
}

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
	brown    float64
}

// NewOscillator creates a streamer producing wave at freq for duration.
// Noise waves ignore freq.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveBrownNoise:
			white := o.rng.Float64()*2 - 1
			o.brown = (o.brown + 0.02*white) / 1.02
			val = clamp(o.brown*3.5, -1, 1)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Envelope is an attack/decay/sustain/release amplitude shape.
// Sustain is a level in [0, 1]; the other fields are durations.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64
	Release time.Duration
}

// Gain returns the amplitude at offset t into a note held for hold.
func (e Envelope) Gain(t, hold time.Duration) float64 {
	if t < 0 {
		return 0
	}
	if t >= hold {
		level := e.heldLevel(hold)
		if e.Release <= 0 {
			return 0
		}
		r := float64(t-hold) / float64(e.Release)
		if r >= 1 {
			return 0
		}
		return level * (1 - r)
	}
	return e.heldLevel(t)
}

func (e Envelope) heldLevel(t time.Duration) float64 {
	if t < e.Attack {
		return float64(t) / float64(e.Attack)
	}
	t -= e.Attack
	if t < e.Decay {
		return 1 - (1-e.Sustain)*float64(t)/float64(e.Decay)
	}
	return e.Sustain
}

// shaped applies an Envelope to a streamer, sample by sample.
type shaped struct {
	streamer beep.Streamer
	env      Envelope
	hold     time.Duration
	rate     beep.SampleRate
	position int
}

// NewEnveloped shapes s with env for a note held for hold.
func NewEnveloped(s beep.Streamer, env Envelope, hold time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shaped{streamer: s, env: env, hold: hold, rate: rate}
}

func (s *shaped) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = s.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := s.env.Gain(s.rate.D(s.position), s.hold)
		samples[i][0] *= g
		samples[i][1] *= g
		s.position++
	}
	return n, ok
}

func (s *shaped) Err() error { return s.streamer.Err() }

// newVolume wraps s in a linear volume; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
