package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"gmumarket/internal/domain/repository"
)

// Fixed storage keys, matching the names the browser client used in
// localStorage.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// sqliteSessionRepository persists the token slot in a local SQLite file
// so the session survives process restarts.
type sqliteSessionRepository struct {
	db        *sql.DB
	writeLock *sync.Mutex // go-sqlite does not support concurrent writes
}

func NewSQLiteSessionRepository(databasePath string) (repository.SessionRepository, error) {
	if dir := filepath.Dir(databasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return &sqliteSessionRepository{
		db:        db,
		writeLock: new(sync.Mutex),
	}, nil
}

func (r *sqliteSessionRepository) Set(ctx context.Context, access, refresh string) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		accessTokenKey:  access,
		refreshTokenKey: refresh,
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO session (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (r *sqliteSessionRepository) Token(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM session WHERE key = ?", accessTokenKey,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	return token, nil
}

func (r *sqliteSessionRepository) IsAuthenticated(ctx context.Context) bool {
	token, err := r.Token(ctx)
	return err == nil && token != ""
}

func (r *sqliteSessionRepository) Clear(ctx context.Context) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	if _, err := r.db.ExecContext(ctx, "DELETE FROM session"); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
