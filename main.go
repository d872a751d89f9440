// Command wordle-server serves the daily word and per-player storage.
package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/engine/internal/config"
	"github.com/robalobadob/wordle/engine/internal/httpserver"
	"github.com/robalobadob/wordle/engine/internal/store"
	"github.com/robalobadob/wordle/engine/internal/words"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := list.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	db, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := store.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	srv := httpserver.New(httpserver.Config{
		DailySalt:    cfg.DailySalt,
		JWTSecret:    cfg.JWTSecret,
		JWTExpiry:    cfg.JWTExpiry(),
		ClientOrigin: cfg.ClientOrigin,
		Logger:       log.Logger,
	}, list, store.NewSQLite(db))

	log.Info().Str("port", cfg.Port).Msg("starting go-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
