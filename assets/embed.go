// Package assets embeds the default word lists.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadWords reads one word per line, lowercased. Blank lines, '#'
// comments and anything that is not exactly five a–z letters are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.ToLower(strings.TrimSpace(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") || !isWord(s) {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func isWord(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func readList(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// AnswersList returns the embedded daily answer candidates.
func AnswersList() ([]string, error) {
	return readList("answers.txt")
}

// AllowedList returns the embedded extra guesses (answers excluded).
func AllowedList() ([]string, error) {
	return readList("allowed.txt")
}
