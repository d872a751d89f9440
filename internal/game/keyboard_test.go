package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(t *testing.T, guess, secret string) Row {
	t.Helper()
	row, err := Classify(guess, secret)
	require.NoError(t, err)
	return row
}

func TestKeyboardUpdate(t *testing.T) {
	var k Keyboard
	k.Update(scored(t, "crane", "berry"))
	assert.Equal(t, KeyboardSets{Guessed: "", Present: "er", Tried: "acn"}, k.Sets())

	k.Update(scored(t, "berry", "berry"))
	assert.Equal(t, KeyboardSets{Guessed: "bery", Present: "", Tried: "acn"}, k.Sets())
}

func TestKeyboardWholeRowPriority(t *testing.T) {
	// E is guessed in the last slot and not_exists in the first two.
	var k Keyboard
	k.Update(scored(t, "eerie", "crane"))
	assert.Equal(t, StatusGuessed, k.Status('e'))
	assert.Equal(t, StatusExists, k.Status('r'))
	assert.Equal(t, StatusNotExists, k.Status('i'))
	assert.Equal(t, KeyboardSets{Guessed: "e", Present: "r", Tried: "i"}, k.Sets())
}

func TestKeyboardNeverDowngrades(t *testing.T) {
	var k Keyboard
	k.Update(scored(t, "loyal", "loyal"))
	k.Update(scored(t, "alloy", "loyal"))
	k.Update(scored(t, "qqqql", "loyal"))
	sets := k.Sets()
	assert.Equal(t, "aloy", sets.Guessed)
	assert.Empty(t, sets.Present)
	assert.Equal(t, "q", sets.Tried)

	// present → guessed, and a later miss of the extra copy keeps guessed.
	var k2 Keyboard
	k2.Update(scored(t, "hello", "world"))
	assert.Equal(t, StatusGuessed, k2.Status('l'))
	assert.Equal(t, StatusExists, k2.Status('o'))
	k2.Update(scored(t, "goofy", "world"))
	assert.Equal(t, StatusGuessed, k2.Status('o'))
	assert.NotContains(t, k2.Sets().Present, "o")
	assert.NotContains(t, k2.Sets().Tried, "o")
}

func TestKeyboardSetsStatus(t *testing.T) {
	var k Keyboard
	k.Update(scored(t, "crane", "berry"))
	k.Update(scored(t, "bxxxx", "berry"))
	sets := k.Sets()
	for c := byte('a'); c <= 'z'; c++ {
		assert.Equal(t, k.Status(c), sets.Status(c), string(c))
	}
	assert.Equal(t, StatusGuessed, sets.Status('b'))
	assert.Equal(t, StatusExists, sets.Status('e'))
	assert.Equal(t, StatusNotExists, sets.Status('c'))
	assert.Equal(t, StatusEmpty, sets.Status('z'))
}

func TestKeyboardStatus(t *testing.T) {
	var k Keyboard
	assert.Equal(t, StatusEmpty, k.Status('a'))
	k.Update(scored(t, "crane", "crane"))
	assert.Equal(t, StatusGuessed, k.Status('C'))
	assert.Equal(t, StatusEmpty, k.Status('1'))
}
