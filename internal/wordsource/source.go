// internal/wordsource/source.go
//
// Secret-word sources for a new session.
//
//   - HTTP fetches GET {base}/api/daily-word and expects
//     {"success":true,"data":{"word":"<token>","date":"YYYY-MM-DD"}}.
//   - Static serves a fixed plain word (offline play, tests).
//
// Both stamp the secret with its day; a missing date means the current
// UTC date. Both satisfy game.SecretSource. There is no retry here: a
// failed fetch is fatal for the session and the caller decides what to do.

package wordsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/robalobadob/wordle/engine/internal/codec"
	"github.com/robalobadob/wordle/engine/internal/daily"
	"github.com/robalobadob/wordle/engine/internal/game"
)

// ErrBadResponse covers success:false, non-2xx statuses and payloads
// without a word.
var ErrBadResponse = errors.New("wordsource: bad response from server")

// Word is the data part of a daily-word response.
type Word struct {
	Token string `json:"word"`
	Date  string `json:"date,omitempty"`
}

// Response is the envelope returned by /api/daily-word.
type Response struct {
	Success bool   `json:"success"`
	Data    *Word  `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HTTP fetches the daily word from the server.
type HTTP struct {
	base   string
	client *http.Client
}

var _ game.SecretSource = (*HTTP)(nil)

// NewHTTP returns a source for baseURL. A nil client uses http.DefaultClient.
func NewHTTP(baseURL string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{base: strings.TrimRight(baseURL, "/"), client: client}
}

// Fetch performs one request for the daily word.
func (h *HTTP) Fetch(ctx context.Context) (Word, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.base+"/api/daily-word", nil)
	if err != nil {
		return Word{}, err
	}
	req.Header.Set("Accept", "application/json")
	res, err := h.client.Do(req)
	if err != nil {
		return Word{}, fmt.Errorf("fetch daily word: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, res.Body)
		return Word{}, fmt.Errorf("%w: status %d", ErrBadResponse, res.StatusCode)
	}
	var body Response
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<16)).Decode(&body); err != nil {
		return Word{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if !body.Success || body.Data == nil || body.Data.Token == "" {
		return Word{}, ErrBadResponse
	}
	return *body.Data, nil
}

// Secret implements game.SecretSource.
func (h *HTTP) Secret(ctx context.Context) (game.Secret, error) {
	w, err := h.Fetch(ctx)
	if err != nil {
		return game.Secret{}, err
	}
	if w.Date == "" {
		w.Date = daily.DateKey(time.Now())
	}
	return game.Secret{Token: w.Token, Date: w.Date}, nil
}

// Static serves a fixed word.
type Static struct {
	Word string
	// Date defaults to today.
	Date string
}

var _ game.SecretSource = Static{}

// Secret encodes the fixed word.
func (s Static) Secret(context.Context) (game.Secret, error) {
	tok, err := codec.Encode(strings.ToLower(strings.TrimSpace(s.Word)))
	if err != nil {
		return game.Secret{}, err
	}
	date := s.Date
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	return game.Secret{Token: tok, Date: date}, nil
}
