// internal/httpserver/routes_storage.go
//
// Player registration and per-player document storage.
//   - POST /api/players        → {"playerId","token","expiresAt"}
//   - GET  /api/storage/{key}  → stored JSON document, 404 if never saved
//   - PUT  /api/storage/{key}  → 204
//
// Only the three session persistence keys are accepted. Documents must
// be valid JSON and are capped in size.

package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/engine/internal/game"
	"github.com/robalobadob/wordle/engine/internal/store"
)

const maxDocument = 64 << 10

func (s *Server) mountStorage(r chi.Router) {
	r.Post("/players", s.handleRegister)
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/storage/{key}", s.handleLoad)
		r.Put("/storage/{key}", s.handleSave)
	})
}

// handleRegister creates a player and returns a signed token for it.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	if err := s.kv.CreatePlayer(r.Context(), id); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create player")
		writeError(w, http.StatusInternalServerError, "register_failed")
		return
	}
	tok, exp, err := s.signJWT(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	hlog.FromRequest(r).Info().Str("player", id).Msg("registered player")
	_ = json.NewEncoder(w).Encode(store.Registration{
		PlayerID:  id,
		Token:     tok,
		ExpiresAt: exp.UTC().Format(time.RFC3339),
	})
}

// storageKey validates the {key} path parameter.
func storageKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "key")
	if !game.IsKey(key) {
		writeError(w, http.StatusNotFound, "unknown_key")
		return "", false
	}
	return key, true
}

// handleLoad returns the stored document for the current player.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	key, ok := storageKey(w, r)
	if !ok {
		return
	}
	v, found, err := s.kv.Get(r.Context(), currentPlayer(r), key)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("key", key).Msg("load document")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(v)
}

// handleSave replaces the stored document for the current player.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	key, ok := storageKey(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocument))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "too_large")
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := s.kv.Put(r.Context(), currentPlayer(r), key, body); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("key", key).Msg("save document")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
