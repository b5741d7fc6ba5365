package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// GetCredentialByUsername retrieves a credential record by username.
// Returns (nil, nil) when no record exists.
func (r *AuthRepo) GetCredentialByUsername(ctx context.Context, username string) (*models.Credential, error) {
	query := `
		SELECT id, username, password, role
		FROM users
		WHERE username = ?
	`

	var cred models.Credential
	err := r.db.GetContext(ctx, &cred, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return &cred, nil
}

// CreateCredential inserts a new credential record and returns its row id
// for use as a compensation handle if the paired profile write fails.
func (r *AuthRepo) CreateCredential(ctx context.Context, username, passwordHash, role string) (int64, error) {
	query := `
		INSERT INTO users (username, password, role)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, username, passwordHash, role)
	if err != nil {
		return 0, fmt.Errorf("failed to create credential: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get credential id: %w", err)
	}

	return id, nil
}

// DeleteCredential removes a credential record. Used only as the
// compensating delete when a cross-store registration partially fails.
func (r *AuthRepo) DeleteCredential(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}
