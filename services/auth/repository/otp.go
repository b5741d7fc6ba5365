package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// CreateOTP appends a new OTP record. Prior codes for the same phone are
// left in place; history is retained.
func (r *AuthRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	query := `
		INSERT INTO otps (phone, code, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		otp.Phone,
		otp.Code,
		otp.CreatedAt,
		otp.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		otp.ID = id
	}

	return nil
}

// GetLatestOTP retrieves the most recently created OTP record for a phone.
// Returns (nil, nil) when no record exists.
func (r *AuthRepo) GetLatestOTP(ctx context.Context, phone string) (*models.OTP, error) {
	query := `
		SELECT id, phone, code, created_at, expires_at
		FROM otps
		WHERE phone = ?
		ORDER BY id DESC
		LIMIT 1
	`

	var otp models.OTP
	err := r.db.GetContext(ctx, &otp, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	return &otp, nil
}
