// internal/game/options.go
//
// Player options (confetti, hard mode) and the hard-mode guess check.
// Hard mode: every guessed letter must stay in place and every present
// letter must be reused in later guesses.

package game

import (
	"fmt"
	"strings"
)

// Options are the player's settings, persisted under KeyPlayerOptions.
type Options struct {
	ShowConfetti bool `json:"showConfetti"`
	// HardMode requires revealed hints to be used in later guesses.
	HardMode bool `json:"hardMode"`
}

// DefaultOptions is used when nothing has been saved yet.
func DefaultOptions() Options {
	return Options{ShowConfetti: true}
}

// checkHardMode verifies guess against every earlier scored row:
// guessed letters must stay in place and exists letters must be reused.
func checkHardMode(prev []Row, guess Row) error {
	word := guess.Word()
	for _, r := range prev {
		need := map[string]int{}
		for i, s := range r {
			switch s.Status {
			case StatusGuessed:
				if guess[i].Letter != s.Letter {
					return fmt.Errorf("%w: letter %d must be %s", ErrHardMode, i+1, strings.ToUpper(s.Letter))
				}
				need[s.Letter]++
			case StatusExists:
				need[s.Letter]++
			}
		}
		for _, s := range r {
			if n := need[s.Letter]; n > 0 && strings.Count(word, s.Letter) < n {
				return fmt.Errorf("%w: guess must contain %s", ErrHardMode, strings.ToUpper(s.Letter))
			}
		}
	}
	return nil
}
