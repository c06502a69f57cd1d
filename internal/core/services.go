package core

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/palopsee/internal/sprite"
)

// Audio plays game sound effects. Calls must return immediately.
type Audio interface {
	PlayJump()
	PlayScore()
	PlayGameOver()
	PlayPowerUp()
}

// ScoreBook persists the local high score and leaderboard.
// Implementations treat storage failures as "no scores".
type ScoreBook interface {
	HighScore() int
	SetHighScore(score int)
	// TopScores returns the best scores, highest first.
	TopScores() []int
	AddScore(score int)
}

// Remote is the optional online leaderboard and text generator.
// Both calls may block; games only invoke them from Tasks.
type Remote interface {
	SubmitScore(ctx context.Context, score int) error
	FlavorText(ctx context.Context, prompt string) (string, error)
}

// Assets resolves sprites by name. A sprite may be pending while it loads.
type Assets interface {
	Get(name string) *sprite.Sprite
	Ready() bool
}

// Services bundles the collaborators a game talks to.
type Services struct {
	Audio  Audio
	Scores ScoreBook
	Remote Remote // nil disables online features
	Assets Assets
	Clock  Clock
	Logger *log.Logger
}

// WithDefaults fills unset collaborators with inert implementations.
// Assets has no default; a game without assets waits forever in its ready state.
func (s Services) WithDefaults() Services {
	if s.Audio == nil {
		s.Audio = NopAudio{}
	}
	if s.Scores == nil {
		s.Scores = NewMemoryScoreBook(10)
	}
	if s.Clock == nil {
		s.Clock = SystemClock{}
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	return s
}

// NopAudio discards every sound.
type NopAudio struct{}

func (NopAudio) PlayJump()     {}
func (NopAudio) PlayScore()    {}
func (NopAudio) PlayGameOver() {}
func (NopAudio) PlayPowerUp()  {}

// MemoryScoreBook keeps scores in memory. Used for SSH sessions and tests.
type MemoryScoreBook struct {
	mu    sync.Mutex
	high  int
	top   []int
	limit int
}

// NewMemoryScoreBook creates a score book that keeps at most limit top scores.
func NewMemoryScoreBook(limit int) *MemoryScoreBook {
	if limit <= 0 {
		limit = 10
	}
	return &MemoryScoreBook{limit: limit}
}

func (m *MemoryScoreBook) HighScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high
}

func (m *MemoryScoreBook) SetHighScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.high = score
}

func (m *MemoryScoreBook) TopScores() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.top))
	copy(out, m.top)
	return out
}

func (m *MemoryScoreBook) AddScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.top = append(m.top, score)
	sort.Sort(sort.Reverse(sort.IntSlice(m.top)))
	if len(m.top) > m.limit {
		m.top = m.top[:m.limit]
	}
}
