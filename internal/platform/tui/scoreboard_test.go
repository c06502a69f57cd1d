package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/palopsee/internal/storage"
)

func seededStore(t *testing.T, scores ...int) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, s := range scores {
		if _, err := store.SaveScore("runner", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardLoadsScores(t *testing.T) {
	store := seededStore(t, 10, 30, 20)
	m := NewScoreboardModel(store, "runner", "Palopsee", 100, 30)

	if len(m.scores) != 3 {
		t.Fatalf("loaded %d scores, want 3", len(m.scores))
	}
	if m.scores[0].Score != 30 {
		t.Errorf("top score = %d, want 30", m.scores[0].Score)
	}
	if m.stats == nil || m.stats.HighScore != 30 {
		t.Errorf("stats = %+v, want high score 30", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Palopsee", "Best", "Runs kept"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(seededStore(t, 7), "runner", "Palopsee", 50, 20)

	if m.widePanel() {
		t.Fatal("50 columns should use the narrow layout")
	}
	if !strings.Contains(m.View(), "Best 7") {
		t.Error("narrow layout should show the one-line stats")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", "Palopsee", 100, 30)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Error("expected empty message")
	}
	if !strings.Contains(view, "No runs yet") {
		t.Error("expected empty stats")
	}
}

func TestScoreboardClear(t *testing.T) {
	tests := []struct {
		name    string
		confirm tea.KeyMsg
		want    int
	}{
		{"confirmed", runeKey('y'), 0},
		{"cancelled", runeKey('n'), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(t, 5, 9)
			var model tea.Model = NewScoreboardModel(store, "runner", "Palopsee", 100, 30)

			model, _ = model.Update(runeKey('c'))
			if !model.(ScoreboardModel).confirming {
				t.Fatal("c should ask for confirmation")
			}
			if !strings.Contains(model.View(), "y to confirm") {
				t.Error("expected confirmation prompt")
			}

			model, _ = model.Update(tt.confirm)
			m := model.(ScoreboardModel)
			if m.confirming {
				t.Error("confirmation should be consumed")
			}
			if len(m.scores) != tt.want {
				t.Errorf("scores after clear = %d, want %d", len(m.scores), tt.want)
			}

			stored, err := store.TopScores("runner", 10)
			if err != nil {
				t.Fatal(err)
			}
			if len(stored) != tt.want {
				t.Errorf("stored scores = %d, want %d", len(stored), tt.want)
			}
		})
	}
}

func TestScoreboardClearNeedsScores(t *testing.T) {
	var model tea.Model = NewScoreboardModel(seededStore(t), "runner", "Palopsee", 100, 30)
	model, _ = model.Update(runeKey('c'))
	if model.(ScoreboardModel).confirming {
		t.Error("nothing to clear, no confirmation expected")
	}
}

type failingSource struct{}

func (failingSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("disk on fire")
}
func (failingSource) GetGameStats(string) (*storage.GameStats, error) {
	return nil, errors.New("disk on fire")
}
func (failingSource) ClearScores(string) error { return nil }

func TestScoreboardShowsLoadError(t *testing.T) {
	m := NewScoreboardModel(failingSource{}, "runner", "Palopsee", 100, 30)
	if !strings.Contains(m.View(), "disk on fire") {
		t.Error("expected load error in view")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantBack bool
		wantQuit bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"q quits", runeKey('q'), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = NewScoreboardModel(nil, "runner", "Palopsee", 100, 30)
			model, cmd := model.Update(tt.msg)
			m := model.(ScoreboardModel)
			if m.IsGoingBack() != tt.wantBack || m.IsQuitting() != tt.wantQuit {
				t.Errorf("back=%v quit=%v, want back=%v quit=%v", m.IsGoingBack(), m.IsQuitting(), tt.wantBack, tt.wantQuit)
			}
			if cmd == nil {
				t.Error("expected tea.Quit")
			}
			if m.View() != "" {
				t.Error("view should be empty after leaving")
			}
		})
	}
}
