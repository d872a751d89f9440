// internal/game/stats.go
//
// Lifetime player statistics.
// Played/won counts, streaks and the guess distribution are updated
// once per finished game, keyed by the game's date and token.

package game

// Stats holds lifetime player statistics, persisted under KeyPlayerStats.
type Stats struct {
	GamesPlayed   int          `json:"gamesPlayed"`
	GamesWon      int          `json:"gamesWon"`
	CurrentStreak int          `json:"currentStreak"`
	MaxStreak     int          `json:"maxStreak"`
	Distribution  [MaxRows]int `json:"guessDistribution"` // wins by number of guesses
	LastGame      string       `json:"lastGame,omitempty"`
}

// Record counts one finished game. id identifies it (date and token)
// so that a game restored after it already finished is not counted
// twice; Record returns false when it skipped a duplicate.
func (s *Stats) Record(id string, won bool, guesses int) bool {
	if id != "" && id == s.LastGame {
		return false
	}
	s.LastGame = id
	s.GamesPlayed++
	if won {
		s.GamesWon++
		s.CurrentStreak++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
		if guesses >= 1 && guesses <= MaxRows {
			s.Distribution[guesses-1]++
		}
	} else {
		s.CurrentStreak = 0
	}
	return true
}

// WinRate returns the share of games won as a whole percentage.
func (s Stats) WinRate() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return s.GamesWon * 100 / s.GamesPlayed
}
