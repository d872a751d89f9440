// internal/words/words.go
//
// Word list management for the daily-word server and the guess dictionary.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply utility functions like Random, IsAllowed, IsAnswer, and Stats.
//
// Word Lists:
//   - "answers": candidates for the daily word (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. If both answersPath and allowedPath are set,
//      load answers from the first and allowed guesses from the second.
//   2. If only allowedPath is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the lists embedded in the assets package.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/engine/assets"
)

// ErrNoAnswers is returned by Load when the answers list ends up empty.
var ErrNoAnswers = errors.New("words: answers list is empty")

// List is an immutable pair of answer and guess lists.
type List struct {
	answers    []string            // canonical answers, file order
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
}

// Load builds a List from files, or from the embedded defaults when both
// paths are empty.
func Load(answersPath, allowedPath string) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: answers only is a configuration mistake
	case answersPath != "" && allowedPath == "":
		return nil, errors.New("words: answers file set without an allowed file")

	// Case 4: fall back to embedded defaults
	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, err
		}
	}
	return New(ansList, allowList)
}

// New builds a List from in-memory slices. Entries are normalized and
// invalid words dropped; answers are always allowed.
func New(answers, allowed []string) (*List, error) {
	l := &List{
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		w = normalize(w)
		if !isWord(w) {
			continue
		}
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answers = append(l.answers, w)
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w = normalize(w); isWord(w) {
			l.allowedSet[w] = struct{}{}
		}
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadWords(f)
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

// isWord reports whether s is five lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the answer list. Callers must not modify it.
func (l *List) Answers() []string { return l.answers }

// Random returns a cryptographically random answer.
func (l *List) Random() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	return l.answers[n.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
