// internal/httpserver/routes_daily.go
//
// Daily word endpoint.
//   - GET /api/daily-word → {"success":true,"data":{"word":"<token>","date":"YYYY-MM-DD"}}
//
// The word is chosen deterministically from the date and DAILY_SALT and
// is only ever sent as a codec token. The answer index is not exposed.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/engine/internal/codec"
	"github.com/robalobadob/wordle/engine/internal/daily"
	"github.com/robalobadob/wordle/engine/internal/wordsource"
)

func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily-word", s.handleDailyWord)
}

// handleDailyWord serves today's obfuscated word.
func (s *Server) handleDailyWord(w http.ResponseWriter, r *http.Request) {
	date, idx, answer := daily.Pick(s.cfg.Now(), s.cfg.DailySalt, s.words.Answers())
	token, err := codec.Encode(answer)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("date", date).Int("index", idx).Msg("encode daily word")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(wordsource.Response{Success: false, Error: "no_word"})
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(wordsource.Response{
		Success: true,
		Data:    &wordsource.Word{Token: token, Date: date},
	})
}
