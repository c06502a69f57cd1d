package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/palopsee/internal/core"
)

// ScoreBook adapts a Store to the runner's persistence collaborator.
// Storage errors are logged and read as "no scores".
type ScoreBook struct {
	store  *Store
	gameID string
	limit  int
	logger *log.Logger
}

var _ core.ScoreBook = (*ScoreBook)(nil)

// NewScoreBook returns a score book for gameID keeping at most limit
// leaderboard entries. A nil logger discards failures silently.
func NewScoreBook(store *Store, gameID string, limit int, logger *log.Logger) *ScoreBook {
	if limit <= 0 {
		limit = 10
	}
	return &ScoreBook{store: store, gameID: gameID, limit: limit, logger: logger}
}

func (b *ScoreBook) HighScore() int {
	high, err := b.store.HighScore(b.gameID)
	if err != nil {
		b.warn("read high score", err)
		return 0
	}
	return high
}

func (b *ScoreBook) SetHighScore(score int) {
	if err := b.store.SetHighScore(b.gameID, score); err != nil {
		b.warn("write high score", err)
	}
}

func (b *ScoreBook) TopScores() []int {
	entries, err := b.store.TopScores(b.gameID, b.limit)
	if err != nil {
		b.warn("read leaderboard", err)
		return nil
	}
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

// AddScore records score and trims the leaderboard to its limit.
func (b *ScoreBook) AddScore(score int) {
	if _, err := b.store.SaveScore(b.gameID, score); err != nil {
		b.warn("save score", err)
		return
	}
	if _, err := b.store.PruneScores(b.gameID, b.limit); err != nil {
		b.warn("prune leaderboard", err)
	}
}

func (b *ScoreBook) warn(op string, err error) {
	if b.logger != nil {
		b.logger.Warn("score book: "+op+" failed", "game", b.gameID, "err", err)
	}
}
