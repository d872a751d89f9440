// internal/game/keyboard.go
//
// On-screen keyboard state derived from submitted rows.
// Responsibilities:
//   - Resolve each letter's best status within a row.
//   - Upgrade letters monotonically across rows.
//   - Expose disjoint guessed/present/tried sets for rendering.

package game

import "strings"

// Keyboard accumulates the best-known status of every letter across the
// submitted rows of a session. A letter only ever moves up
// (not_exists → exists → guessed), and it sits in exactly one set.
type Keyboard struct {
	letters [26]Status
}

// KeyboardSets is the read-only view used to tint the on-screen keyboard.
// Each field lists letters in alphabetical order.
type KeyboardSets struct {
	Guessed string `json:"guessed"`
	Present string `json:"present"`
	Tried   string `json:"tried"`
}

// Status returns the status of letter within the sets.
func (k KeyboardSets) Status(letter byte) Status {
	switch {
	case strings.IndexByte(k.Guessed, letter) >= 0:
		return StatusGuessed
	case strings.IndexByte(k.Present, letter) >= 0:
		return StatusExists
	case strings.IndexByte(k.Tried, letter) >= 0:
		return StatusNotExists
	}
	return StatusEmpty
}

// Update folds a scored row into the keyboard.
//
// All slots of the row are resolved per letter first, so a letter that
// is guessed in one slot and not_exists in another lands in guessed.
func (k *Keyboard) Update(row Row) {
	var best [26]Status
	for _, s := range row {
		if len(s.Letter) != 1 || !isAlpha(s.Letter) {
			continue
		}
		j := idx(s.Letter[0])
		if s.Status.rank() > best[j].rank() {
			best[j] = s.Status
		}
	}
	for j, st := range best {
		if st.rank() > k.letters[j].rank() {
			k.letters[j] = st
		}
	}
}

// Status returns the tracked status of a letter, or StatusEmpty if the
// letter has not been played.
func (k *Keyboard) Status(letter byte) Status {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return StatusEmpty
	}
	if st := k.letters[idx(letter)]; st != "" {
		return st
	}
	return StatusEmpty
}

// Sets returns the three letter sets.
func (k *Keyboard) Sets() KeyboardSets {
	var g, p, t strings.Builder
	for j, st := range k.letters {
		c := byte('a' + j)
		switch st {
		case StatusGuessed:
			g.WriteByte(c)
		case StatusExists:
			p.WriteByte(c)
		case StatusNotExists:
			t.WriteByte(c)
		}
	}
	return KeyboardSets{Guessed: g.String(), Present: p.String(), Tried: t.String()}
}
