package runner

import "slices"

// CheatCode is the key sequence that toggles permanent invincibility.
var CheatCode = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// CheatDetector watches a sliding window of recent keys for a sequence.
type CheatDetector struct {
	code   []string
	recent []string
}

// NewCheatDetector creates a detector for the given sequence.
func NewCheatDetector(code []string) *CheatDetector {
	return &CheatDetector{code: code, recent: make([]string, 0, len(code))}
}

// Feed records a key and reports whether it completed the sequence.
// A completed sequence clears the window.
func (d *CheatDetector) Feed(key string) bool {
	if len(d.code) == 0 {
		return false
	}
	d.recent = append(d.recent, key)
	if len(d.recent) > len(d.code) {
		d.recent = d.recent[1:]
	}
	if slices.Equal(d.recent, d.code) {
		d.recent = d.recent[:0]
		return true
	}
	return false
}
