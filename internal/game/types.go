// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Status: per-letter result of a guess (empty/guessed/exists/not_exists).
//   - Slot, Row, Board: fixed-size guess grid.
//   - State: overall game lifecycle (loading → in_progress → won/lost).

package game

import "strings"

const (
	// WordLen is the number of letters per guess.
	WordLen = 5
	// MaxRows is the number of guesses a player gets.
	MaxRows = 6
)

// Status represents the evaluation result for a single letter slot.
// Possible values:
//   - "empty":      not yet scored (in-progress input or unused row).
//   - "guessed":    letter is correct and in the correct position.
//   - "exists":     letter is in the word but in a different position.
//   - "not_exists": letter is not in the word (after duplicate accounting).
type Status string

const (
	StatusEmpty     Status = "empty"
	StatusGuessed   Status = "guessed"
	StatusExists    Status = "exists"
	StatusNotExists Status = "not_exists"
)

// rank orders statuses for keyboard upgrades. Unknown values rank lowest.
func (s Status) rank() int {
	switch s {
	case StatusGuessed:
		return 3
	case StatusExists:
		return 2
	case StatusNotExists:
		return 1
	default:
		return 0
	}
}

// State is the coarse lifecycle of a session.
type State string

const (
	// StateLoading means the secret word has not arrived yet; all input is ignored.
	StateLoading    State = "loading"
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Slot is one column of a guess row.
type Slot struct {
	Letter   string `json:"letter"` // "" or a single lowercase letter
	Status   Status `json:"status"`
	Position int    `json:"position"`
}

// Row is one attempt. It is immutable once submitted.
type Row [WordLen]Slot

// Board is the whole game's attempt history.
type Board [MaxRows]Row

// emptyRow returns a row with every slot empty and positions set.
func emptyRow() Row {
	var r Row
	for i := range r {
		r[i] = Slot{Status: StatusEmpty, Position: i}
	}
	return r
}

func emptyBoard() Board {
	var b Board
	for i := range b {
		b[i] = emptyRow()
	}
	return b
}

// Filled returns the number of non-empty letters.
func (r Row) Filled() int {
	n := 0
	for _, s := range r {
		if s.Letter != "" {
			n++
		}
	}
	return n
}

// Full reports whether every slot has a letter.
func (r Row) Full() bool { return r.Filled() == WordLen }

// Scored reports whether every slot carries a final status.
func (r Row) Scored() bool {
	for _, s := range r {
		if s.Status.rank() == 0 {
			return false
		}
	}
	return true
}

// Word joins the row's letters.
func (r Row) Word() string {
	var sb strings.Builder
	for _, s := range r {
		sb.WriteString(s.Letter)
	}
	return sb.String()
}

// Solved reports whether every slot is guessed.
func (r Row) Solved() bool {
	for _, s := range r {
		if s.Status != StatusGuessed {
			return false
		}
	}
	return true
}
