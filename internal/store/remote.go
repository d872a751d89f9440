// internal/store/remote.go
//
// HTTP-backed persistence for the terminal client.
// Responsibilities:
//   - Load/Save documents through GET/PUT /api/storage/{key}.
//   - Send the player's bearer token; map 401 to ErrUnauthorized.
//   - Register a new player through POST /api/players.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/robalobadob/wordle/engine/internal/game"
)

// maxDocument bounds a single stored document.
const maxDocument = 64 << 10

// ErrUnauthorized is returned when the server rejects the player token.
var ErrUnauthorized = errors.New("store: player token rejected")

// Remote is a game.KV backed by the server's /api/storage endpoints.
type Remote struct {
	base   string
	token  string
	client *http.Client
}

var _ game.KV = (*Remote)(nil)

// NewRemote returns a store for the player identified by token.
// A nil client uses http.DefaultClient.
func NewRemote(baseURL, token string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{base: strings.TrimRight(baseURL, "/"), token: token, client: client}
}

func (r *Remote) url(key string) string {
	return r.base + "/api/storage/" + url.PathEscape(key)
}

// Load fetches a document. 404 means it was never saved.
func (r *Remote) Load(ctx context.Context, key string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url(key), nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	res, err := r.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		b, err := io.ReadAll(io.LimitReader(res.Body, maxDocument))
		if err != nil {
			return nil, false, fmt.Errorf("load %s: %w", key, err)
		}
		return b, true, nil
	case http.StatusNotFound:
		return nil, false, nil
	case http.StatusUnauthorized:
		return nil, false, ErrUnauthorized
	default:
		return nil, false, fmt.Errorf("load %s: unexpected status %d", key, res.StatusCode)
	}
}

// Save uploads a document.
func (r *Remote) Save(ctx context.Context, key string, value []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.url(key), bytes.NewReader(value))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")
	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	switch res.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("save %s: unexpected status %d", key, res.StatusCode)
	}
}

// Registration is the server's answer to POST /api/players.
type Registration struct {
	PlayerID  string `json:"playerId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Register asks the server for a new player identity.
func Register(ctx context.Context, baseURL string, client *http.Client) (Registration, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(baseURL, "/")+"/api/players", nil)
	if err != nil {
		return Registration{}, err
	}
	res, err := client.Do(req)
	if err != nil {
		return Registration{}, fmt.Errorf("register: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return Registration{}, fmt.Errorf("register: unexpected status %d", res.StatusCode)
	}
	var reg Registration
	if err := json.NewDecoder(res.Body).Decode(&reg); err != nil {
		return Registration{}, fmt.Errorf("register: %w", err)
	}
	if reg.Token == "" {
		return Registration{}, errors.New("register: empty token")
	}
	return reg, nil
}
