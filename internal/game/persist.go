// internal/game/persist.go
//
// Persistence boundary for a session.
//
// The engine only knows a small key/value contract; the storage medium
// (memory, SQLite, remote HTTP) lives in internal/store. Three keys are
// used, each holding a JSON document:
//   - KeyGameData:      the board, cursor, state, word token and date.
//   - KeyPlayerStats:   lifetime Stats.
//   - KeyPlayerOptions: Options.
//
// Keyboard sets are never stored; they are re-derived from the rows.

package game

import (
	"context"
	"encoding/json"
)

const (
	KeyGameData      = "gameData"
	KeyPlayerStats   = "playerStats"
	KeyPlayerOptions = "playerOptions"
)

// Keys lists every key a session reads or writes.
var Keys = []string{KeyGameData, KeyPlayerStats, KeyPlayerOptions}

// IsKey reports whether k is one of the persistence keys.
func IsKey(k string) bool {
	for _, x := range Keys {
		if x == k {
			return true
		}
	}
	return false
}

// KV is the storage contract a session persists through.
// Load returns ok=false (and no error) when the key has never been saved.
type KV interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

// gameData is the JSON shape stored under KeyGameData.
type gameData struct {
	Token  string `json:"token"`
	Date   string `json:"date,omitempty"`
	Board  Board  `json:"wordList"`
	Cursor int    `json:"inputIndex"`
	State  State  `json:"gameState"`
}

// restorable reports whether d is a saved game for sec that the
// session can resume. Games for another token or another day (even with
// the same word) and boards that fail basic shape checks are treated as
// absent.
func (d gameData) restorable(sec Secret) bool {
	if d.Token != sec.Token || d.Date != sec.Date || d.Cursor < 0 || d.Cursor > MaxRows {
		return false
	}
	for i, r := range d.Board {
		for j, s := range r {
			if s.Position != j || len(s.Letter) > 1 || (s.Letter != "" && !isAlpha(s.Letter)) {
				return false
			}
			if i < d.Cursor && s.Status.rank() == 0 {
				return false
			}
			if i >= d.Cursor && s.Status != StatusEmpty {
				return false
			}
		}
		if i < d.Cursor && !r.Full() {
			return false
		}
	}
	switch d.State {
	case StateInProgress:
		return d.Cursor < MaxRows
	case StateWon:
		return d.Cursor > 0 && d.Board[d.Cursor-1].Solved()
	case StateLost:
		return d.Cursor == MaxRows
	}
	return false
}

// decodeJSON unmarshals data into v, reporting success.
func decodeJSON(data []byte, v any) bool {
	return json.Unmarshal(data, v) == nil
}
