// Command wordle plays the daily word in the terminal.
//
//	wordle            play today's game
//	wordle register   create a server-side player and print its token
//
// Settings come from the environment (see internal/config). Progress is
// kept in a local SQLite file by default, in memory, or on the server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/engine/internal/config"
	"github.com/robalobadob/wordle/engine/internal/game"
	"github.com/robalobadob/wordle/engine/internal/store"
	"github.com/robalobadob/wordle/engine/internal/tui"
	"github.com/robalobadob/wordle/engine/internal/words"
	"github.com/robalobadob/wordle/engine/internal/wordsource"
)

var (
	offlineWord string
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Play the daily five-letter word game",
	Long: `Guess the daily five-letter word in six tries.

Green tiles are in the right spot, yellow tiles are in the word but
elsewhere, grey tiles are not in the word. Press tab before your first
guess to toggle hard mode.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a player on the server and print its token",
	Long: `Registers a new player with WORDLE_SERVER_URL and prints the
environment lines needed to play with WORDLE_STORE=remote.`,
	RunE: runRegister,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "network timeout for startup requests")
	rootCmd.Flags().StringVar(&offlineWord, "word", "", "play this word without contacting the server")
	rootCmd.AddCommand(registerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger writes JSON logs to path, or nowhere when path is empty.
// The terminal belongs to the game, so logs never go to stderr.
func newLogger(level, path string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return zerolog.New(f).Level(lvl).With().Timestamp().Str("component", "wordle").Logger(), f, nil
}

// openKV returns the persistence backend chosen by cfg.Store.
func openKV(ctx context.Context, cfg config.Client) (game.KV, func() error, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemory(), func() error { return nil }, nil
	case config.StoreRemote:
		return store.NewRemote(cfg.ServerURL, cfg.PlayerToken, nil), func() error { return nil }, nil
	}

	db, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store.NewSQLite(db).Player(cfg.PlayerID), db.Close, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if offlineWord != "" {
		cfg.OfflineWord = offlineWord
	}

	logger, logFile, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	startCtx, startCancel := context.WithTimeout(ctx, timeout)
	defer startCancel()

	kv, closeKV, err := openKV(startCtx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeKV(); err != nil {
			logger.Warn().Err(err).Msg("close store")
		}
	}()

	var src game.SecretSource = wordsource.NewHTTP(cfg.ServerURL, nil)
	if cfg.OfflineWord != "" {
		src = wordsource.Static{Word: cfg.OfflineWord}
	}

	opts := []game.Option{game.WithLogger(logger)}
	if cfg.Dictionary {
		list, err := words.Load("", "")
		if err != nil {
			return fmt.Errorf("load word lists: %w", err)
		}
		opts = append(opts, game.WithDictionary(list.IsAllowed))
	}

	session, err := game.Open(startCtx, src, kv, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("start game")
		return err
	}

	final, err := tea.NewProgram(tui.New(session), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	ep, err := config.LoadEndpoint()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	reg, err := store.Register(ctx, ep.ServerURL, nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# player %s, token expires %s\n", reg.PlayerID, reg.ExpiresAt)
	fmt.Fprintln(out, "WORDLE_STORE=remote")
	fmt.Fprintf(out, "WORDLE_PLAYER_TOKEN=%s\n", reg.Token)
	return nil
}
