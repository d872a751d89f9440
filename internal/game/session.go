// internal/game/session.go
//
// Guess-submission state machine for a single player's game.
// Responsibilities:
//   - Buffer keystrokes into the current row (letter, backspace, enter).
//   - Validate and score a full row, then fold it into the keyboard.
//   - Drive state transitions: loading → in_progress → won/lost.
//   - Persist game data after every change and stats when a game ends.
//
// Notes:
//   - A Session is the single owner of its board; every exported method
//     takes the session mutex, so callers may share one across goroutines.
//   - The secret word is held only as a codec token and decoded at
//     submission time. It is never logged.
//   - Persistence is best effort: a failed Save is logged and the
//     in-memory game stays authoritative.

package game

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/engine/internal/codec"
)

// Secret is one game's obfuscated word and the day it belongs to.
type Secret struct {
	Token string
	// Date is the game's day (YYYY-MM-DD). The same word on another
	// day is another game.
	Date string
}

// gameID identifies the game for resume and stats purposes.
func (s Secret) gameID() string {
	if s.Date == "" {
		return s.Token
	}
	return s.Date + "/" + s.Token
}

// SecretSource supplies the secret for a new session.
type SecretSource interface {
	Secret(ctx context.Context) (Secret, error)
}

// Session is one game in progress (or finished) for one player.
type Session struct {
	mu sync.Mutex

	kv          KV
	log         zerolog.Logger
	allowed     func(word string) bool
	saveTimeout time.Duration

	secret   Secret
	board    Board
	cursor   int
	state    State
	keyboard Keyboard
	stats    Stats
	options  Options
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithDictionary rejects guesses for which allowed returns false with
// ErrNotInWordList. Without it any five letters are accepted.
func WithDictionary(allowed func(word string) bool) Option {
	return func(s *Session) { s.allowed = allowed }
}

// WithSaveTimeout bounds each persistence write.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Session) { s.saveTimeout = d }
}

// Outcome describes the effect of a key event.
type Outcome struct {
	// Changed is true when the event altered the session.
	Changed bool
	// Submitted is set when the event scored a row; Row holds the result.
	Submitted bool
	Row       Row
	State     State
}

// Snapshot is a read-only copy of a session for rendering.
type Snapshot struct {
	Board    Board        `json:"wordList"`
	Cursor   int          `json:"inputIndex"`
	State    State        `json:"gameState"`
	Keyboard KeyboardSets `json:"keyboard"`
	Stats    Stats        `json:"stats"`
	Options  Options      `json:"options"`
}

// NewSession returns a session in StateLoading. Input is ignored until
// Start succeeds.
func NewSession(kv KV, opts ...Option) *Session {
	s := &Session{
		kv:          kv,
		log:         zerolog.Nop(),
		saveTimeout: 5 * time.Second,
		board:       emptyBoard(),
		state:       StateLoading,
		options:     DefaultOptions(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open fetches today's secret from src, then creates and starts a session.
// Any error is fatal for the session: no game is returned.
func Open(ctx context.Context, src SecretSource, kv KV, opts ...Option) (*Session, error) {
	sec, err := src.Secret(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch secret word: %w", err)
	}
	s := NewSession(kv, opts...)
	if err := s.Start(ctx, sec); err != nil {
		return nil, err
	}
	return s, nil
}

// Start installs the secret and loads persisted state. It reads each
// persistence key exactly once. A saved game for the same token and
// date is resumed; anything else starts a fresh board.
func (s *Session) Start(ctx context.Context, sec Secret) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return ErrAlreadyStarted
	}
	if _, err := codec.Decode(sec.Token); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	var saved gameData
	haveGame, err := s.load(ctx, KeyGameData, &saved)
	if err != nil {
		return err
	}
	stats := Stats{}
	if _, err := s.load(ctx, KeyPlayerStats, &stats); err != nil {
		return err
	}
	options := DefaultOptions()
	if _, err := s.load(ctx, KeyPlayerOptions, &options); err != nil {
		return err
	}

	s.secret = sec
	s.stats = stats
	s.options = options

	if haveGame && saved.restorable(sec) {
		s.board = saved.Board
		s.cursor = saved.Cursor
		s.state = saved.State
		for i := 0; i < s.cursor; i++ {
			s.keyboard.Update(s.board[i])
		}
		s.log.Info().Str("token", sec.Token).Str("date", sec.Date).Int("row", s.cursor).Str("state", string(s.state)).Msg("resumed game")
		if s.state.Terminal() && s.stats.Record(sec.gameID(), s.state == StateWon, s.cursor) {
			s.saveJSON(KeyPlayerStats, s.stats)
		}
		return nil
	}

	if haveGame {
		s.log.Debug().Str("date", sec.Date).Str("savedDate", saved.Date).Msg("discarding stale game data")
	}
	s.board = emptyBoard()
	s.cursor = 0
	s.state = StateInProgress
	s.saveGame()
	s.log.Info().Str("token", sec.Token).Str("date", sec.Date).Msg("new game")
	return nil
}

// load reads key into v. Missing keys and undecodable values leave v
// untouched and report false; only storage failures are errors.
func (s *Session) load(ctx context.Context, key string, v any) (bool, error) {
	data, ok, err := s.kv.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if !decodeJSON(data, v) {
		s.log.Warn().Str("key", key).Msg("ignoring undecodable saved data")
		return false, nil
	}
	return true, nil
}

// HandleKey is the single input entry point. key is a single letter,
// "backspace" or "enter" (any case); everything else is ignored.
func (s *Session) HandleKey(key string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := strings.ToLower(key)
	switch {
	case k == "enter":
		return s.submit()
	case k == "backspace":
		return Outcome{Changed: s.backspace(), State: s.state}, nil
	case len(k) == 1 && isAlpha(k):
		return Outcome{Changed: s.inputLetter(k[0]), State: s.state}, nil
	}
	return Outcome{State: s.state}, nil
}

// InputLetter fills the first empty slot of the current row.
// It reports whether anything changed.
func (s *Session) InputLetter(ch rune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if ch < 'a' || ch > 'z' {
		return false
	}
	return s.inputLetter(byte(ch))
}

// Backspace clears the last filled slot of the current row.
// It reports whether anything changed.
func (s *Session) Backspace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backspace()
}

// Submit scores the current row.
func (s *Session) Submit() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit()
}

func (s *Session) inputLetter(c byte) bool {
	if s.state != StateInProgress {
		return false
	}
	row := &s.board[s.cursor]
	for i := range row {
		if row[i].Letter == "" {
			row[i].Letter = string(c)
			s.saveGame()
			return true
		}
	}
	return false
}

func (s *Session) backspace() bool {
	if s.state != StateInProgress {
		return false
	}
	row := &s.board[s.cursor]
	for i := WordLen - 1; i >= 0; i-- {
		if row[i].Letter != "" {
			row[i] = Slot{Status: StatusEmpty, Position: i}
			s.saveGame()
			return true
		}
	}
	return false
}

func (s *Session) submit() (Outcome, error) {
	if s.state != StateInProgress {
		return Outcome{State: s.state}, nil
	}
	current := s.board[s.cursor]
	if !current.Full() {
		return Outcome{State: s.state}, ErrRowIncomplete
	}
	guess := current.Word()
	if s.allowed != nil && !s.allowed(guess) {
		return Outcome{State: s.state}, ErrNotInWordList
	}
	if s.options.HardMode {
		if err := checkHardMode(s.board[:s.cursor], current); err != nil {
			return Outcome{State: s.state}, err
		}
	}

	secret, err := codec.Decode(s.secret.Token)
	if err != nil {
		return Outcome{State: s.state}, fmt.Errorf("submit: %w", err)
	}
	row, err := Classify(guess, secret)
	if err != nil {
		return Outcome{State: s.state}, fmt.Errorf("submit: %w", err)
	}

	s.board[s.cursor] = row
	s.keyboard.Update(row)
	s.cursor++

	switch {
	case guess == secret:
		s.state = StateWon
	case s.cursor == MaxRows:
		s.state = StateLost
	}
	s.saveGame()

	s.log.Debug().Int("row", s.cursor).Str("state", string(s.state)).Msg("guess scored")
	if s.state.Terminal() {
		if s.stats.Record(s.secret.gameID(), s.state == StateWon, s.cursor) {
			s.saveJSON(KeyPlayerStats, s.stats)
		}
		s.log.Info().Str("state", string(s.state)).Int("guesses", s.cursor).Msg("game over")
	}
	return Outcome{Changed: true, Submitted: true, Row: row, State: s.state}, nil
}

// SetOptions replaces the player's options and persists them. Hard mode
// can be switched on only before the first guess or after the game ends.
// Before Start it fails with ErrNotStarted and nothing is saved.
func (s *Session) SetOptions(o Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		return ErrNotStarted
	}
	if o.HardMode && !s.options.HardMode && s.cursor > 0 && !s.state.Terminal() {
		return ErrHardModeLocked
	}
	s.options = o
	s.saveJSON(KeyPlayerOptions, s.options)
	return nil
}

// State returns the current game state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a copy of everything a renderer needs.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Board:    s.board,
		Cursor:   s.cursor,
		State:    s.state,
		Keyboard: s.keyboard.Sets(),
		Stats:    s.stats,
		Options:  s.options,
	}
}

// KeyStatus returns the keyboard status of one letter.
func (s *Session) KeyStatus(letter byte) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyboard.Status(letter)
}

// Answer reveals the secret word once the game is over.
func (s *Session) Answer() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Terminal() {
		return "", ErrInProgress
	}
	return codec.Decode(s.secret.Token)
}

func (s *Session) saveGame() {
	s.saveJSON(KeyGameData, gameData{
		Token:  s.secret.Token,
		Date:   s.secret.Date,
		Board:  s.board,
		Cursor: s.cursor,
		State:  s.state,
	})
}

func (s *Session) saveJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("encode for persist")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()
	if err := s.kv.Save(ctx, key, data); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("persist")
	}
}
