// Package tui renders a game session in the terminal with bubbletea.
//
// The model forwards every key press to Session.HandleKey and redraws
// from a fresh Snapshot. Notices (short word, unknown word, hard mode)
// are shown under the board; any other error ends the program.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/engine/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Styles holds the lipgloss styles used for tiles and text.
type Styles struct {
	Title     lipgloss.Style
	Tile      map[game.Status]lipgloss.Style
	Key       map[game.Status]lipgloss.Style
	Notice    lipgloss.Style
	Help      lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultStyles returns the standard green/yellow/grey palette.
func DefaultStyles() Styles {
	tile := lipgloss.NewStyle().Bold(true).Padding(0, 1).Margin(0, 1, 0, 0)
	key := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Tile: map[game.Status]lipgloss.Style{
			game.StatusEmpty:     tile.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238")),
			game.StatusGuessed:   tile.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")),
			game.StatusExists:    tile.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("178")),
			game.StatusNotExists: tile.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("240")),
		},
		Key: map[game.Status]lipgloss.Style{
			game.StatusEmpty:     key.Foreground(lipgloss.Color("15")),
			game.StatusGuessed:   key.Foreground(lipgloss.Color("34")).Bold(true),
			game.StatusExists:    key.Foreground(lipgloss.Color("178")).Bold(true),
			game.StatusNotExists: key.Foreground(lipgloss.Color("240")),
		},
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34")),
	}
}

// Model is the bubbletea model for one game.
type Model struct {
	session *game.Session
	styles  Styles

	snap   game.Snapshot
	notice string
	err    error
}

// New wraps a started session.
func New(s *game.Session) Model {
	return Model{session: s, styles: DefaultStyles(), snap: s.Snapshot()}
}

// Err is the fatal error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var key string
	switch km.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		key = "enter"
	case tea.KeyBackspace:
		key = "backspace"
	case tea.KeyTab:
		return m.toggleHardMode(), nil
	case tea.KeyRunes:
		if len(km.Runes) != 1 {
			return m, nil
		}
		key = string(km.Runes)
	default:
		return m, nil
	}

	out, err := m.session.HandleKey(key)
	switch {
	case err == nil:
		if out.Changed {
			m.notice = ""
		}
	case game.IsNotice(err):
		m.notice = err.Error()
	default:
		m.err = err
		return m, tea.Quit
	}
	m.snap = m.session.Snapshot()
	return m, nil
}

func (m Model) toggleHardMode() Model {
	o := m.snap.Options
	o.HardMode = !o.HardMode
	if err := m.session.SetOptions(o); err != nil {
		m.notice = err.Error()
		return m
	}
	m.notice = ""
	m.snap = m.session.Snapshot()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	title := "WORDLE"
	if m.snap.Options.HardMode {
		title += "  (hard mode)"
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n\n")

	for _, row := range m.snap.Board {
		sb.WriteString(m.renderRow(row))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, line := range keyboardRows {
		sb.WriteString(m.renderKeys(line))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.notice != "" {
		sb.WriteString(m.styles.Notice.Render(m.notice))
		sb.WriteString("\n")
	}

	if m.snap.State.Terminal() {
		sb.WriteString(m.renderResult())
	} else {
		sb.WriteString(m.styles.Help.Render("type a word · enter submit · backspace delete · tab hard mode · esc quit"))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderRow(row game.Row) string {
	tiles := make([]string, 0, game.WordLen)
	for _, slot := range row {
		letter := " "
		if slot.Letter != "" {
			letter = strings.ToUpper(slot.Letter)
		}
		tiles = append(tiles, m.tileStyle(slot.Status).Render(letter))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m Model) tileStyle(s game.Status) lipgloss.Style {
	if st, ok := m.styles.Tile[s]; ok {
		return st
	}
	return m.styles.Tile[game.StatusEmpty]
}

func (m Model) renderKeys(line string) string {
	keys := make([]string, 0, len(line))
	for i := 0; i < len(line); i++ {
		st := m.styles.Key[m.snap.Keyboard.Status(line[i])]
		keys = append(keys, st.Render(strings.ToUpper(line[i:i+1])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, keys...)
}

func (m Model) renderResult() string {
	var sb strings.Builder
	answer, _ := m.session.Answer()
	if m.snap.State == game.StateWon {
		sb.WriteString(m.styles.Highlight.Render(fmt.Sprintf("Solved in %d/%d!", m.snap.Cursor, game.MaxRows)))
	} else {
		sb.WriteString(m.styles.Notice.Render("The word was " + strings.ToUpper(answer)))
	}
	sb.WriteString("\n\n")

	st := m.snap.Stats
	sb.WriteString(fmt.Sprintf("Played %d  Win %% %d  Streak %d  Max %d\n",
		st.GamesPlayed, st.WinRate(), st.CurrentStreak, st.MaxStreak))
	for i, n := range st.Distribution {
		bar := strings.Repeat("█", n)
		if i+1 == m.snap.Cursor && m.snap.State == game.StateWon {
			bar = m.styles.Highlight.Render(bar)
		}
		sb.WriteString(fmt.Sprintf("%d │%s %d\n", i+1, bar, n))
	}
	sb.WriteString(m.styles.Help.Render("esc quit"))
	return sb.String()
}
