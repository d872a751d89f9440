// internal/game/classify.go
//
// Letter classifier: scores one guess against the secret word.
// Responsibilities:
//   - Validate both inputs (five letters a–z, case-folded).
//   - Mark exact matches, then presence with a per-letter budget.
//   - Leave no slot unscored.

package game

import (
	"fmt"
	"strings"
)

// Classify scores guess against secret and returns the scored row.
//
// Pass 1 marks exact matches as guessed and spends them from the
// secret's per-letter budget. Pass 2 walks the remaining positions left
// to right: a letter with budget left is marked exists and spends one,
// otherwise it is not_exists. When the guess repeats a letter more often
// than the secret holds it, the leftmost unmatched copies win.
//
// Both inputs are lowercased first. Anything other than two 5-letter
// a–z words is ErrContractViolation.
func Classify(guess, secret string) (Row, error) {
	g := strings.ToLower(guess)
	s := strings.ToLower(secret)
	if len(g) != WordLen || !isAlpha(g) {
		return Row{}, fmt.Errorf("%w: guess %q", ErrContractViolation, guess)
	}
	if len(s) != WordLen || !isAlpha(s) {
		// The secret is never echoed back.
		return Row{}, fmt.Errorf("%w: malformed secret", ErrContractViolation)
	}

	row := emptyRow()
	var budget [26]int
	for i := 0; i < WordLen; i++ {
		budget[idx(s[i])]++
	}

	// Pass 1: exact matches.
	for i := 0; i < WordLen; i++ {
		row[i].Letter = string(g[i])
		if g[i] == s[i] {
			row[i].Status = StatusGuessed
			budget[idx(g[i])]--
		}
	}

	// Pass 2: presence, left to right.
	for i := 0; i < WordLen; i++ {
		if row[i].Status == StatusGuessed {
			continue
		}
		j := idx(g[i])
		if budget[j] > 0 {
			row[i].Status = StatusExists
			budget[j]--
		} else {
			row[i].Status = StatusNotExists
		}
	}

	// Pass 3: every slot must be scored.
	if !row.Scored() {
		return Row{}, fmt.Errorf("game: classifier left slot unscored for %q", guess)
	}
	return row, nil
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(c byte) int { return int(c - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
