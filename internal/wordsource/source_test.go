package wordsource

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robalobadob/wordle/engine/internal/codec"
	"github.com/robalobadob/wordle/engine/internal/game"
	"github.com/robalobadob/wordle/engine/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func serve(t *testing.T, status int, body string) *HTTP {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/daily-word", r.URL.Path)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewHTTP(srv.URL+"/", srv.Client())
}

func TestFetch(t *testing.T) {
	tok, err := codec.Encode("crane")
	require.NoError(t, err)
	src := serve(t, http.StatusOK, `{"success":true,"data":{"word":"`+tok+`","date":"2026-10-18"}}`)

	w, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Word{Token: tok, Date: "2026-10-18"}, w)

	got, err := src.Secret(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.Secret{Token: tok, Date: "2026-10-18"}, got)
}

func TestSecretDefaultsDate(t *testing.T) {
	tok, err := codec.Encode("crane")
	require.NoError(t, err)
	src := serve(t, http.StatusOK, `{"success":true,"data":{"word":"`+tok+`"}}`)

	got, err := src.Secret(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tok, got.Token)
	assert.Len(t, got.Date, len("2006-01-02"))
}

func TestFetchBadResponses(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"unsuccessful": {http.StatusOK, `{"success":false,"error":"nope"}`},
		"no data":      {http.StatusOK, `{"success":true}`},
		"empty word":   {http.StatusOK, `{"success":true,"data":{"word":""}}`},
		"not json":     {http.StatusOK, `<html>`},
		"server error": {http.StatusInternalServerError, `{"success":true,"data":{"word":"x"}}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := serve(t, tc.status, tc.body).Fetch(context.Background())
			assert.ErrorIs(t, err, ErrBadResponse)
		})
	}
}

func TestOpenWithCorruptTokenIsFatal(t *testing.T) {
	src := serve(t, http.StatusOK, `{"success":true,"data":{"word":"not-a-token"}}`)
	s, err := game.Open(context.Background(), src, store.NewMemory())
	assert.ErrorIs(t, err, codec.ErrCorruptToken)
	assert.Nil(t, s)
}

func TestStatic(t *testing.T) {
	sec, err := Static{Word: " Crane ", Date: "2026-10-18"}.Secret(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", sec.Date)
	w, err := codec.Decode(sec.Token)
	require.NoError(t, err)
	assert.Equal(t, "crane", w)

	sec, err = Static{Word: "crane"}.Secret(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sec.Date)

	_, err = Static{Word: "nope"}.Secret(context.Background())
	assert.ErrorIs(t, err, codec.ErrInvalidWord)
}
