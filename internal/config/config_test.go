package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears keys for the duration of the test.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadServerDefaults(t *testing.T) {
	unset(t, "PORT", "JWT_EXPIRES_DAYS")
	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, 14*24*time.Hour, cfg.JWTExpiry())
}

func TestLoadServerOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DAILY_SALT", "pepper")
	t.Setenv("JWT_EXPIRES_DAYS", "1")
	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "pepper", cfg.DailySalt)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry())

	t.Setenv("JWT_EXPIRES_DAYS", "0")
	_, err = LoadServer()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRES_DAYS", "soon")
	_, err = LoadServer()
	assert.Error(t, err)
}

func TestLoadClient(t *testing.T) {
	unset(t, "WORDLE_DICTIONARY")
	t.Setenv("WORDLE_STORE", "memory")
	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.True(t, cfg.Dictionary)

	t.Setenv("WORDLE_STORE", "remote")
	unset(t, "WORDLE_PLAYER_TOKEN")
	_, err = LoadClient()
	assert.Error(t, err)

	t.Setenv("WORDLE_PLAYER_TOKEN", "tok")
	cfg, err = LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.PlayerToken)

	t.Setenv("WORDLE_STORE", "floppy")
	_, err = LoadClient()
	assert.Error(t, err)
}

func TestLoadEndpoint(t *testing.T) {
	unset(t, "WORDLE_SERVER_URL")
	ep, err := LoadEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5175", ep.ServerURL)

	// register must work before a token exists.
	t.Setenv("WORDLE_STORE", "remote")
	unset(t, "WORDLE_PLAYER_TOKEN")
	t.Setenv("WORDLE_SERVER_URL", "http://wordle.test")
	ep, err = LoadEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "http://wordle.test", ep.ServerURL)
}
