package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("palopsee", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("palopsee", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("palopsee")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("palopsee", 100)
	store.SaveScore("palopsee", 300)
	store.SaveScore("palopsee", 200)

	high, err = store.HighScore("palopsee")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSetHighScore(t *testing.T) {
	tests := []struct {
		name   string
		saved  []int
		writes []int
		want   int
	}{
		{"explicit only", nil, []int{42}, 42},
		{"overwrite", nil, []int{42, 17}, 17},
		{"explicit above saved", []int{10}, []int{90}, 90},
		{"saved above explicit", []int{120}, []int{90}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			for _, s := range tt.saved {
				store.SaveScore("palopsee", s)
			}
			for _, w := range tt.writes {
				if err := store.SetHighScore("palopsee", w); err != nil {
					t.Fatalf("SetHighScore() failed: %v", err)
				}
			}
			high, err := store.HighScore("palopsee")
			if err != nil {
				t.Fatalf("HighScore() failed: %v", err)
			}
			if high != tt.want {
				t.Errorf("HighScore() = %d, want %d", high, tt.want)
			}
		})
	}
}

func TestStorePruneScores(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 12; i++ {
		store.SaveScore("palopsee", i*10)
	}
	store.SaveScore("other", 5)

	n, err := store.PruneScores("palopsee", 10)
	if err != nil {
		t.Fatalf("PruneScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("PruneScores() deleted %d rows, want 2", n)
	}

	all, _ := store.AllScores("palopsee")
	if len(all) != 10 {
		t.Fatalf("Expected 10 scores after prune, got %d", len(all))
	}
	if all[len(all)-1].Score != 30 {
		t.Errorf("lowest kept score = %d, want 30", all[len(all)-1].Score)
	}

	other, _ := store.AllScores("other")
	if len(other) != 1 {
		t.Error("prune should not touch other games")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("palopsee", 100)
	store.SaveScore("palopsee", 200)
	store.SetHighScore("palopsee", 250)
	store.SaveScore("other", 300)

	if err := store.ClearScores("palopsee"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("palopsee", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("palopsee"); high != 0 {
		t.Errorf("high score after clear = %d, want 0", high)
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("other game scores should not be affected by clear")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("palopsee")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("palopsee", 10)
	store.SaveScore("palopsee", 30)

	stats, err := store.GetGameStats("palopsee")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, want 40", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.palopsee/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandHome() = %q, want prefix %q", got, home)
	}

	plain, _ := ExpandHome("/tmp/x.db")
	if plain != "/tmp/x.db" {
		t.Errorf("ExpandHome() changed absolute path: %q", plain)
	}
}
