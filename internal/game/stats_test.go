package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsRecord(t *testing.T) {
	var s Stats
	assert.True(t, s.Record("a", true, 3))
	assert.True(t, s.Record("b", true, 1))
	assert.False(t, s.Record("b", true, 1), "same game twice")
	assert.True(t, s.Record("c", false, 6))
	assert.True(t, s.Record("d", true, 6))

	assert.Equal(t, 4, s.GamesPlayed)
	assert.Equal(t, 3, s.GamesWon)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 2, s.MaxStreak)
	assert.Equal(t, [MaxRows]int{1, 0, 1, 0, 0, 1}, s.Distribution)
	assert.Equal(t, 75, s.WinRate())
	assert.Equal(t, "d", s.LastGame)
}

func TestWinRateEmpty(t *testing.T) {
	assert.Equal(t, 0, Stats{}.WinRate())
}
