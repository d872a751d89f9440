// internal/store/sqlite.go
//
// SQLite persistence for player documents.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Storing per-player key/value documents and registered players.
//
// The same database backs the HTTP storage API on the server and the
// local "sqlite" store of the terminal client.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/engine/internal/game"
)

//go:embed migrations/*.sql
var migrations embed.FS

// OpenDB opens (and creates if missing) a SQLite database file.
//
//   - Ensures parent directory exists for relative DSNs (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func OpenDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded migrations in lexical order.
//
//   - Uses a _migrations table to track applied files.
//   - Skips files already applied.
//   - Each file runs in one transaction together with its _migrations row.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// SQLite stores documents for many players in one database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite wraps an open, migrated database.
func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

// Get returns the document stored for (playerID, key).
func (s *SQLite) Get(ctx context.Context, playerID, key string) ([]byte, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE player_id=? AND key=?`, playerID, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

// Put inserts or replaces the document for (playerID, key).
func (s *SQLite) Put(ctx context.Context, playerID, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO kv (player_id, key, value, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(player_id, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		playerID, key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// CreatePlayer records a new player id.
func (s *SQLite) CreatePlayer(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, created_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// PlayerExists reports whether id was registered.
func (s *SQLite) PlayerExists(ctx context.Context, id string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM players WHERE id=?`, id).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Player returns a game.KV scoped to one player.
func (s *SQLite) Player(id string) game.KV { return playerKV{s: s, id: id} }

type playerKV struct {
	s  *SQLite
	id string
}

func (p playerKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return p.s.Get(ctx, p.id, key)
}

func (p playerKV) Save(ctx context.Context, key string, value []byte) error {
	return p.s.Put(ctx, p.id, key, value)
}
