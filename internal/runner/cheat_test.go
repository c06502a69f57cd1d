package runner

import "testing"

func TestCheatDetector(t *testing.T) {
	d := NewCheatDetector(CheatCode)

	feed := func(keys ...string) int {
		hits := 0
		for _, k := range keys {
			if d.Feed(k) {
				hits++
			}
		}
		return hits
	}

	if hits := feed(CheatCode...); hits != 1 {
		t.Errorf("full code: hits = %d, expected 1", hits)
	}

	// Noise before the code is fine: the window slides.
	if hits := feed(append([]string{"x", "up", "space"}, CheatCode...)...); hits != 1 {
		t.Errorf("code after noise: hits = %d, expected 1", hits)
	}

	// A broken sequence does not trigger.
	if hits := feed("up", "up", "down", "down", "left", "right", "left", "right", "a", "b"); hits != 0 {
		t.Errorf("wrong order: hits = %d, expected 0", hits)
	}
}

func TestCheatDetectorClearsAfterMatch(t *testing.T) {
	d := NewCheatDetector([]string{"a", "a"})
	if d.Feed("a") || !d.Feed("a") {
		t.Fatal("second a should complete the code")
	}
	// The window was cleared, so one more a is not a new match.
	if d.Feed("a") {
		t.Error("match should clear the window")
	}
}
