package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
)

// SQLiteClient represents the embedded credential store client
type SQLiteClient struct {
	db *sqlx.DB
}

// NewSQLiteClient opens (creating if needed) the embedded credential store
// and runs the idempotent schema migration.
func NewSQLiteClient(config models.SQLiteConfig) (*SQLiteClient, error) {
	dir := filepath.Dir(config.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// The embedded store serializes writes through a single connection.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteClient{db: db}, nil
}

// migrate creates the credential schema idempotently. The ALTER TABLE is a
// best-effort upgrade for stores created before the role column existed; a
// duplicate column failure is expected and tolerated.
func migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer'
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		ALTER TABLE users ADD COLUMN role TEXT NOT NULL DEFAULT 'customer'
	`)
	if err != nil && !strings.Contains(err.Error(), "duplicate column name") {
		logger.Warn("Unexpected error adding role column", logger.Err(err))
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS otps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			phone TEXT NOT NULL,
			code TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			expires_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create otps table: %w", err)
	}

	return nil
}

// GetDB returns the underlying sqlx handle
func (s *SQLiteClient) GetDB() *sqlx.DB {
	return s.db
}

// Close closes the database handle
func (s *SQLiteClient) Close() error {
	return s.db.Close()
}
