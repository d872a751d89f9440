// Package config loads typed settings from the environment.
//
// A .env file in the working directory is loaded first when present
// (development), then variables are parsed into the structs below.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server configures the daily-word and storage service.
type Server struct {
	Port           string `env:"PORT"               envDefault:"5175"`
	DBPath         string `env:"DB_PATH"            envDefault:"./data/app.db"`
	DailySalt      string `env:"DAILY_SALT"         envDefault:"local_dev_salt"`
	JWTSecret      string `env:"JWT_SECRET"         envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS"   envDefault:"14"`
	ClientOrigin   string `env:"CLIENT_ORIGIN"      envDefault:"http://localhost:5173"`
	LogLevel       string `env:"LOG_LEVEL"          envDefault:"info"`
	AnswersFile    string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile    string `env:"WORDS_ALLOWED_FILE"`
}

// JWTExpiry is the lifetime of issued player tokens.
func (s Server) JWTExpiry() time.Duration {
	return time.Duration(s.JWTExpiresDays) * 24 * time.Hour
}

// Store kinds for the terminal client.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRemote = "remote"
)

// Endpoint locates the server. It is all `wordle register` needs.
type Endpoint struct {
	ServerURL string `env:"WORDLE_SERVER_URL" envDefault:"http://localhost:5175"`
}

// Client configures the terminal client.
type Client struct {
	Endpoint
	Store       string `env:"WORDLE_STORE"        envDefault:"sqlite"`
	DBPath      string `env:"WORDLE_DB_PATH"      envDefault:"./data/client.db"`
	PlayerID    string `env:"WORDLE_PLAYER_ID"    envDefault:"local"`
	PlayerToken string `env:"WORDLE_PLAYER_TOKEN"`
	// OfflineWord skips the server and plays this word instead.
	OfflineWord string `env:"WORDLE_OFFLINE_WORD"`
	Dictionary  bool   `env:"WORDLE_DICTIONARY"   envDefault:"true"`
	LogLevel    string `env:"LOG_LEVEL"           envDefault:"warn"`
	LogFile     string `env:"WORDLE_LOG_FILE"`
}

// LoadServer reads server settings.
func LoadServer() (Server, error) {
	var cfg Server
	if err := parse(&cfg); err != nil {
		return Server{}, err
	}
	if cfg.JWTExpiresDays <= 0 {
		return Server{}, fmt.Errorf("config: JWT_EXPIRES_DAYS must be positive, got %d", cfg.JWTExpiresDays)
	}
	return cfg, nil
}

// LoadClient reads client settings.
func LoadClient() (Client, error) {
	var cfg Client
	if err := parse(&cfg); err != nil {
		return Client{}, err
	}
	switch cfg.Store {
	case StoreMemory, StoreSQLite:
	case StoreRemote:
		if cfg.PlayerToken == "" {
			return Client{}, fmt.Errorf("config: WORDLE_STORE=remote needs WORDLE_PLAYER_TOKEN (run `wordle register`)")
		}
	default:
		return Client{}, fmt.Errorf("config: unknown WORDLE_STORE %q", cfg.Store)
	}
	return cfg, nil
}

// LoadEndpoint reads only the server location.
func LoadEndpoint() (Endpoint, error) {
	var ep Endpoint
	if err := parse(&ep); err != nil {
		return Endpoint{}, err
	}
	return ep, nil
}

func parse(target any) error {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
