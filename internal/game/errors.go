// internal/game/errors.go
//
// Sentinel errors for the game package.
//   - Fatal errors end the session (bad input to the classifier,
//     misuse of Start/SetOptions/Answer).
//   - Notices are shown to the player and leave state untouched.

package game

import "errors"

// Fatal errors. A session that hits one of these cannot continue.
var (
	// ErrContractViolation means the classifier was handed something
	// other than two 5-letter a–z words.
	ErrContractViolation = errors.New("game: classifier input must be two 5-letter words")
	// ErrAlreadyStarted is returned by Start on a session that already has a word.
	ErrAlreadyStarted = errors.New("game: session already started")
	// ErrNotStarted is returned by SetOptions before Start succeeds.
	ErrNotStarted = errors.New("game: session not started")
	// ErrInProgress is returned by Answer while the game can still be won.
	ErrInProgress = errors.New("game: answer is hidden until the game ends")
)

// Notices. These are reported to the player and leave state untouched.
var (
	ErrRowIncomplete  = errors.New("word is too short")
	ErrNotInWordList  = errors.New("not in word list")
	ErrHardMode       = errors.New("hard mode")
	ErrHardModeLocked = errors.New("hard mode can only be enabled at the start of a game")
)

// IsNotice reports whether err is a recoverable, player-facing notice.
func IsNotice(err error) bool {
	return errors.Is(err, ErrRowIncomplete) ||
		errors.Is(err, ErrNotInWordList) ||
		errors.Is(err, ErrHardMode) ||
		errors.Is(err, ErrHardModeLocked)
}
