// Package daily picks the word of the day.
//
// The index is HMAC-SHA256(salt, "YYYY-MM-DD") reduced modulo the answer
// count, so every server sharing a salt serves the same word on the same
// UTC date without storing anything.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Pick returns the date key, index and answer for t. answer is empty
// when answers is empty.
func Pick(t time.Time, salt string, answers []string) (date string, idx int, answer string) {
	date = DateKey(t)
	if len(answers) == 0 {
		return date, 0, ""
	}
	idx = WordIndex(t, salt, len(answers))
	return date, idx, answers[idx]
}
