package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("", "")
	require.NoError(t, err)
	a, g := l.Stats()
	assert.Greater(t, a, 100)
	assert.Greater(t, g, a)

	for _, w := range l.Answers() {
		require.Len(t, w, 5)
		assert.True(t, l.IsAllowed(w), w)
	}
	assert.True(t, l.IsAnswer("crane"))
	assert.True(t, l.IsAllowed("CRANE"))
	assert.True(t, l.IsAllowed("eerie"))
	assert.False(t, l.IsAnswer("eerie"))
	assert.False(t, l.IsAllowed("zzzzz"))
	assert.True(t, l.IsAnswer(l.Random()))
}

func writeList(t *testing.T, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	data := ""
	for _, s := range lines {
		data += s + "\n"
	}
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestLoadFiles(t *testing.T) {
	answers := writeList(t, "answers.txt", "# header", "Crane", "", "toolong", "sl4te", "berry")
	allowed := writeList(t, "allowed.txt", "eerie", "abc")

	l, err := Load(answers, allowed)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "berry"}, l.Answers())
	a, g := l.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, g)

	l, err = Load("", allowed)
	require.NoError(t, err)
	assert.Equal(t, []string{"eerie"}, l.Answers())

	_, err = Load(answers, "")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing"), allowed)
	assert.Error(t, err)
}

func TestNewRejectsEmptyAnswers(t *testing.T) {
	_, err := New([]string{"toolong", ""}, []string{"crane"})
	assert.ErrorIs(t, err, ErrNoAnswers)
}
