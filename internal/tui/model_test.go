package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/engine/internal/game"
	"github.com/robalobadob/wordle/engine/internal/store"
	"github.com/robalobadob/wordle/engine/internal/wordsource"
)

func newModel(t *testing.T, word string) Model {
	t.Helper()
	s, err := game.Open(context.Background(), wordsource.Static{Word: word}, store.NewMemory())
	require.NoError(t, err)
	return New(s)
}

func press(m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(word string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(word))
	for _, r := range word {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestTypingShowsLetters(t *testing.T) {
	m := newModel(t, "crane")
	m, cmd := press(m, runes("tr")...)
	assert.Nil(t, cmd)
	assert.Equal(t, "tr", m.snap.Board[0].Word())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "t", m.snap.Board[0].Word())
	assert.Contains(t, m.View(), "T")
}

func TestKeyboardFromSnapshot(t *testing.T) {
	m := newModel(t, "berry")
	m, _ = press(m, append(runes("crane"), enter)...)
	assert.Equal(t, "er", m.snap.Keyboard.Present)
	assert.Equal(t, "acn", m.snap.Keyboard.Tried)
	for c := byte('a'); c <= 'z'; c++ {
		assert.Equal(t, m.session.KeyStatus(c), m.snap.Keyboard.Status(c), string(c))
	}
}

func TestShortWordNotice(t *testing.T) {
	m := newModel(t, "crane")
	m, _ = press(m, runes("cra")...)
	m, cmd := press(m, enter)
	assert.Nil(t, cmd)
	assert.Equal(t, game.ErrRowIncomplete.Error(), m.notice)
	assert.Contains(t, m.View(), "word is too short")

	// Typing clears the notice.
	m, _ = press(m, runes("n")...)
	assert.Empty(t, m.notice)
}

func TestWinShowsResult(t *testing.T) {
	m := newModel(t, "crane")
	m, _ = press(m, append(runes("crane"), enter)...)
	require.Equal(t, game.StateWon, m.snap.State)

	view := m.View()
	assert.Contains(t, view, "Solved in 1/6!")
	assert.Contains(t, view, "Played 1")
	assert.NoError(t, m.Err())
}

func TestLossRevealsAnswer(t *testing.T) {
	m := newModel(t, "crane")
	for i := 0; i < game.MaxRows; i++ {
		m, _ = press(m, append(runes("plumb"), enter)...)
	}
	require.Equal(t, game.StateLost, m.snap.State)
	assert.Contains(t, m.View(), "The word was CRANE")
}

func TestHardModeToggle(t *testing.T) {
	m := newModel(t, "crane")
	tab := tea.KeyMsg{Type: tea.KeyTab}

	m, _ = press(m, tab)
	assert.True(t, m.snap.Options.HardMode)
	assert.Contains(t, m.View(), "(hard mode)")

	m, _ = press(m, tab)
	assert.False(t, m.snap.Options.HardMode)

	// Once a guess is in, hard mode cannot be switched on.
	m, _ = press(m, append(runes("trace"), enter, tab)...)
	assert.False(t, m.snap.Options.HardMode)
	assert.Equal(t, game.ErrHardModeLocked.Error(), m.notice)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newModel(t, "crane")
		_, cmd := press(m, tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestIgnoresOtherInput(t *testing.T) {
	m := newModel(t, "crane")
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	assert.Nil(t, cmd)
	assert.Empty(t, strings.TrimSpace(m.snap.Board[0].Word()))

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, m.snap, next.(Model).snap)
}
