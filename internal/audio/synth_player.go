package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/palopsee/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// JumpCooldown is the minimum gap between two jump sounds.
	JumpCooldown = 100 * time.Millisecond
)

// Options configures a Synth.
type Options struct {
	Volume float64 // linear, 1 is unity gain
	Muted  bool
	Clock  core.Clock
}

// Synth plays patches through the system speaker. It implements core.Audio.
// Play calls never block on audio output.
type Synth struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	volume   float64
	muted    bool
	clock    core.Clock
	lastJump time.Time
	started  bool

	// sink receives every rendered sound. Start points it at the speaker.
	sink func(beep.Streamer)
}

var _ core.Audio = (*Synth)(nil)

// NewSynth creates a synth. Sounds are dropped until Start succeeds.
func NewSynth(opts Options) *Synth {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Volume <= 0 {
		opts.Volume = 0.5
	}
	return &Synth{
		mixer:  &beep.Mixer{},
		volume: opts.Volume,
		muted:  opts.Muted,
		clock:  opts.Clock,
	}
}

// Start opens the speaker and begins mixing.
func (s *Synth) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.sink = func(st beep.Streamer) {
		speaker.Lock()
		s.mixer.Add(st)
		speaker.Unlock()
	}
	s.started = true
	return nil
}

// Close stops all playing sounds.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.started = false
	s.sink = nil
}

// SetMuted toggles output.
func (s *Synth) SetMuted(m bool) {
	s.mu.Lock()
	s.muted = m
	s.mu.Unlock()
}

// Muted reports whether output is disabled.
func (s *Synth) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// PlayJump plays the jump blip unless one played within JumpCooldown.
func (s *Synth) PlayJump() {
	s.mu.Lock()
	now := s.clock.Now()
	if !s.lastJump.IsZero() && now.Sub(s.lastJump) < JumpCooldown {
		s.mu.Unlock()
		return
	}
	s.lastJump = now
	s.mu.Unlock()

	s.play(JumpPatch)
}

func (s *Synth) PlayScore()    { s.play(ScorePatch) }
func (s *Synth) PlayGameOver() { s.play(GameOverPatch) }
func (s *Synth) PlayPowerUp()  { s.play(PowerUpPatch) }

func (s *Synth) play(p Patch) {
	s.mu.Lock()
	sink, muted, vol := s.sink, s.muted, s.volume
	s.mu.Unlock()

	if sink == nil || muted {
		return
	}
	sink(p.Stream(sampleRate, vol))
}
