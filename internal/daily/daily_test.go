package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	assert.Equal(t, "2026-03-01", DateKey(ts))
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)

	a := WordIndex(day, "salt", 500)
	assert.Equal(t, a, WordIndex(later, "salt", 500), "same UTC day")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 500)
	assert.Equal(t, 0, WordIndex(day, "salt", 0))

	// Over a month the index should not be constant for a reasonable list.
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 500)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestPick(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	answers := []string{"crane", "berry", "loyal"}
	date, idx, word := Pick(day, "s", answers)
	assert.Equal(t, "2026-10-18", date)
	assert.Equal(t, answers[idx], word)

	_, _, word = Pick(day, "s", nil)
	assert.Empty(t, word)
}
