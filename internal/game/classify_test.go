package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	G = StatusGuessed
	E = StatusExists
	N = StatusNotExists
)

func statuses(r Row) []Status {
	out := make([]Status, len(r))
	for i, s := range r {
		out[i] = s.Status
	}
	return out
}

func TestClassify(t *testing.T) {
	cases := []struct {
		guess, secret string
		want          []Status
	}{
		{"crane", "crane", []Status{G, G, G, G, G}},
		{"crane", "berry", []Status{N, E, N, N, E}},
		{"berry", "berry", []Status{G, G, G, G, G}},
		// Every letter of ALLOY fits LOYAL's budget, both L's included.
		{"alloy", "loyal", []Status{E, E, E, E, E}},
		// The secret has one E, spent by the exact match at the end.
		{"eerie", "crane", []Status{N, N, E, N, G}},
		// Three E's against two: the leftmost unmatched E is kept.
		{"eerie", "elder", []Status{G, E, E, N, N}},
		// Exact matches spend the budget before earlier copies are looked at.
		{"lolly", "hello", []Status{N, E, G, G, N}},
		// Only the first E fits the single E in the secret.
		{"speed", "abide", []Status{N, N, E, N, E}},
		{"mamma", "maxim", []Status{G, G, E, N, N}},
		{"qqqqq", "crane", []Status{N, N, N, N, N}},
		{"CRANE", "crane", []Status{G, G, G, G, G}},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"/"+tc.secret, func(t *testing.T) {
			row, err := Classify(tc.guess, tc.secret)
			require.NoError(t, err)
			assert.Equal(t, tc.want, statuses(row))
			for i, s := range row {
				assert.Equal(t, i, s.Position)
				assert.Equal(t, string(strings.ToLower(tc.guess)[i]), s.Letter)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	a, err := Classify("alloy", "loyal")
	require.NoError(t, err)
	b, err := Classify("alloy", "loyal")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClassifyScoresEverySlot(t *testing.T) {
	words := []string{"crane", "berry", "loyal", "alloy", "eerie", "mamma", "sissy", "abbey", "kayak"}
	for _, g := range words {
		for _, w := range words {
			row, err := Classify(g, w)
			require.NoError(t, err)
			for _, s := range row {
				assert.Contains(t, []Status{G, E, N}, s.Status, "%s vs %s", g, w)
			}
			assert.Equal(t, g == w, row.Solved(), "%s vs %s", g, w)
		}
	}
}

func TestClassifyContractViolation(t *testing.T) {
	cases := [][2]string{
		{"cran", "crane"},
		{"cranes", "crane"},
		{"crane", "cran"},
		{"cr4ne", "crane"},
		{"crane", "cr ne"},
		{"", ""},
	}
	for _, c := range cases {
		_, err := Classify(c[0], c[1])
		assert.ErrorIs(t, err, ErrContractViolation, "%q vs %q", c[0], c[1])
	}
}

func TestClassifyErrorHidesSecret(t *testing.T) {
	_, err := Classify("crane", "BERR1")
	require.Error(t, err)
	assert.NotContains(t, strings.ToLower(err.Error()), "berr1")
}
