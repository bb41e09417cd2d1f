// FILE: ecosnap/src/internal/score/score.go
package score

import (
	"errors"

	"ecosnap/src/internal/core"
)

// ErrNoData is returned when there are no entries to score
var ErrNoData = errors.New("no waste entries to score")

// Compute returns the EcoScore in [0, 100]: 100 minus the truncated percentage of
// harmful entries. An empty table has no score.
func Compute(counts map[string]int) (int, error) {
	harm, total := 0, 0
	for label, n := range counts {
		total += n
		if core.IsHarmful(label) {
			harm += n
		}
	}
	if total <= 0 {
		return 0, ErrNoData
	}

	return max(0, 100-(100*harm)/total), nil
}

// Band is the verdict tier of a score
type Band string

const (
	BandGreat Band = "great"
	BandOK    Band = "ok"
	BandPoor  Band = "poor"
)

// BandFor maps a score to its tier. Both thresholds are strict, so 80 is ok and 50 is poor.
func BandFor(score int) Band {
	switch {
	case score > 80:
		return BandGreat
	case score > 50:
		return BandOK
	default:
		return BandPoor
	}
}

// Message returns the verdict shown under the score
func (b Band) Message() string {
	switch b {
	case BandGreat:
		return "Great job! You're an eco-hero! 🏆"
	case BandOK:
		return "Good effort! Try reducing plastic and e-waste."
	default:
		return "You can do better! Check the tips above ☝️"
	}
}
