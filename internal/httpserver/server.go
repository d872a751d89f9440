// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Daily word endpoint: GET /api/daily-word (routes_daily.go).
//   - Player registration and per-player storage (routes_storage.go).
//   - JWT signing/verification for player tokens.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Require-auth middleware enforces presence and validity of a JWT and
//     that the player still exists.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/engine/internal/store"
	"github.com/robalobadob/wordle/engine/internal/words"
)

// Config carries the server's settings.
type Config struct {
	DailySalt    string
	JWTSecret    string
	JWTExpiry    time.Duration
	ClientOrigin string
	Logger       zerolog.Logger
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

// Server bundles router, word list and player storage.
type Server struct {
	r     *chi.Mux
	cfg   Config
	words *words.List
	kv    *store.SQLite
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg Config, list *words.List, kv *store.SQLite) *Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.JWTExpiry <= 0 {
		cfg.JWTExpiry = 14 * 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), cfg: cfg, words: list, kv: kv}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(cfg.Logger))     // request-scoped logger
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-engine","endpoints":["/health","GET /api/daily-word","POST /api/players","/api/storage/{key}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Route("/api", func(r chi.Router) {
		s.mountDaily(r)
		s.mountStorage(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request through the request logger.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ JWT ----------------------------------------

// playerCtxKey is the context key type for the authenticated player id.
type playerCtxKey struct{}

// signJWT creates an HS256 JWT whose subject is the player id.
func (s *Server) signJWT(playerID string) (string, time.Time, error) {
	now := s.cfg.Now()
	exp := now.Add(s.cfg.JWTExpiry)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   playerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseJWT verifies a token and returns its subject.
func (s *Server) parseJWT(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.cfg.Now))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// requireAuth enforces a valid JWT and injects the player id into the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearer(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		id, err := s.parseJWT(tokenStr)
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("rejecting token")
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		// Ensure player still exists
		if ok, err := s.kv.PlayerExists(r.Context(), id); err != nil || !ok {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), playerCtxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentPlayer returns the id placed by requireAuth.
func currentPlayer(r *http.Request) string {
	id, _ := r.Context().Value(playerCtxKey{}).(string)
	return id
}
