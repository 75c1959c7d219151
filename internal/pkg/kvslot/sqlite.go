package kvslot

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type SQLite struct {
	key string
	db  *sqlx.DB
}

// OpenSQLite opens (creating if needed) the sqlite file at path and ensures the
// slot table exists.
func OpenSQLite(ctx context.Context, path, key string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "kvslot: sqlite: create data directory")
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "kvslot: sqlite: connect")
	}
	// a single writer keeps sqlite from returning SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "kvslot: sqlite: create schema")
	}

	return &SQLite{key: key, db: db}, nil
}

func (s *SQLite) Get(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv_slots WHERE key = ?`, s.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, errors.Wrap(err, "kvslot: sqlite: get")
	}
	return value, nil
}

func (s *SQLite) Put(ctx context.Context, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		s.key, value)
	return errors.Wrap(err, "kvslot: sqlite: put")
}

func (s *SQLite) Delete(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE key = ?`, s.key)
	return errors.Wrap(err, "kvslot: sqlite: delete")
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
