package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestScoreBookRoundTrip(t *testing.T) {
	store := openTestStore(t)
	book := NewScoreBook(store, "palopsee", 3, nil)

	if got := book.HighScore(); got != 0 {
		t.Errorf("HighScore() on empty book = %d, want 0", got)
	}
	if got := book.TopScores(); len(got) != 0 {
		t.Errorf("TopScores() on empty book = %v, want empty", got)
	}

	for _, s := range []int{5, 40, 12, 33} {
		book.AddScore(s)
	}
	book.SetHighScore(40)

	top := book.TopScores()
	want := []int{40, 33, 12}
	if len(top) != len(want) {
		t.Fatalf("TopScores() = %v, want %v", top, want)
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("TopScores()[%d] = %d, want %d", i, top[i], want[i])
		}
	}
	if got := book.HighScore(); got != 40 {
		t.Errorf("HighScore() = %d, want 40", got)
	}
}

func TestScoreBookClosedStoreDegrades(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	book := NewScoreBook(store, "palopsee", 10, log.New(&buf))

	store.Close()

	if got := book.HighScore(); got != 0 {
		t.Errorf("HighScore() on closed store = %d, want 0", got)
	}
	if got := book.TopScores(); got != nil {
		t.Errorf("TopScores() on closed store = %v, want nil", got)
	}
	book.AddScore(10)
	book.SetHighScore(10)

	if !strings.Contains(buf.String(), "score book") {
		t.Errorf("expected failures to be logged, got %q", buf.String())
	}
}
