package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/palopsee/internal/core"
)

func drain(s beep.Streamer) (samples [][2]float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok || n == 0 {
			return samples
		}
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []Wave{WaveSine, WaveTriangle, WaveSaw, WaveBrownNoise} {
		t.Run(wave.String(), func(t *testing.T) {
			out := drain(NewOscillator(440, 50*time.Millisecond, wave, rate))
			if len(out) != rate.N(50*time.Millisecond) {
				t.Errorf("got %d samples, want %d", len(out), rate.N(50*time.Millisecond))
			}
			for i, s := range out {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d out of range or not mono: %v", i, s)
				}
			}
		})
	}
}

func TestTrianglePeaks(t *testing.T) {
	rate := beep.SampleRate(1000)
	// 10 Hz at 1 kHz gives 100 samples per cycle.
	out := drain(NewOscillator(10, 100*time.Millisecond, WaveTriangle, rate))
	if out[0][0] != -1 {
		t.Errorf("triangle should start at -1, got %v", out[0][0])
	}
	if math.Abs(out[50][0]-1) > 1e-9 {
		t.Errorf("triangle should peak mid-cycle, got %v", out[50][0])
	}
}

func TestEnvelopeGain(t *testing.T) {
	env := Envelope{Attack: 10 * time.Millisecond, Decay: 20 * time.Millisecond, Sustain: 0.5, Release: 40 * time.Millisecond}
	hold := 100 * time.Millisecond

	tests := []struct {
		name string
		at   time.Duration
		want float64
	}{
		{"start", 0, 0},
		{"mid attack", 5 * time.Millisecond, 0.5},
		{"peak", 10 * time.Millisecond, 1},
		{"mid decay", 20 * time.Millisecond, 0.75},
		{"sustain", 60 * time.Millisecond, 0.5},
		{"mid release", 120 * time.Millisecond, 0.25},
		{"after release", 150 * time.Millisecond, 0},
		{"before start", -time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := env.Gain(tt.at, hold); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Gain(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestPatchLength(t *testing.T) {
	for _, p := range []Patch{JumpPatch, ScorePatch, GameOverPatch, PowerUpPatch} {
		t.Run(p.Name, func(t *testing.T) {
			out := drain(p.Stream(sampleRate, 1))
			if len(out) != sampleRate.N(p.Length()) {
				t.Errorf("%s rendered %d samples, want %d", p.Name, len(out), sampleRate.N(p.Length()))
			}
			last := out[len(out)-1][0]
			if math.Abs(last) > 0.05 {
				t.Errorf("%s should fade out, last sample %v", p.Name, last)
			}
		})
	}
}

func newTestSynth(clock core.Clock) (*Synth, *int) {
	s := NewSynth(Options{Clock: clock})
	count := 0
	s.sink = func(beep.Streamer) { count++ }
	return s, &count
}

func TestJumpCooldown(t *testing.T) {
	clock := core.NewMockClock(time.Unix(1000, 0))
	s, count := newTestSynth(clock)

	s.PlayJump()
	s.PlayJump()
	if *count != 1 {
		t.Fatalf("second jump inside cooldown should be dropped, played %d", *count)
	}

	clock.Advance(JumpCooldown - time.Millisecond)
	s.PlayJump()
	if *count != 1 {
		t.Errorf("jump at %v should still be dropped", JumpCooldown-time.Millisecond)
	}

	clock.Advance(time.Millisecond)
	s.PlayJump()
	if *count != 2 {
		t.Errorf("jump after cooldown should play, played %d", *count)
	}
}

func TestOtherSoundsHaveNoCooldown(t *testing.T) {
	s, count := newTestSynth(core.NewMockClock(time.Unix(0, 0)))

	s.PlayScore()
	s.PlayScore()
	s.PlayPowerUp()
	s.PlayGameOver()
	if *count != 4 {
		t.Errorf("played %d sounds, want 4", *count)
	}
}

func TestMutedSynthIsSilent(t *testing.T) {
	s, count := newTestSynth(core.NewMockClock(time.Unix(0, 0)))
	s.SetMuted(true)

	s.PlayJump()
	s.PlayScore()
	if *count != 0 {
		t.Errorf("muted synth played %d sounds", *count)
	}
	if !s.Muted() {
		t.Error("Muted() should be true")
	}
}

func TestUnstartedSynthDropsSounds(t *testing.T) {
	s := NewSynth(Options{})
	// Must not panic without a speaker.
	s.PlayJump()
	s.PlayGameOver()
	s.Close()
}
