package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

func TestCreateOTP(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	otp := &models.OTP{
		Phone:     "01712345678",
		Code:      "123456",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	mock.ExpectExec("INSERT INTO otps").
		WithArgs(otp.Phone, otp.Code, otp.CreatedAt, otp.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(3, 1))

	err := repo.CreateOTP(context.Background(), otp)
	require.NoError(t, err)
	assert.Equal(t, int64(3), otp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestOTP(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "phone", "code", "created_at", "expires_at"}).
		AddRow(9, "01712345678", "654321", now, now.Add(5*time.Minute))
	mock.ExpectQuery("SELECT id, phone, code, created_at, expires_at").
		WithArgs("01712345678").
		WillReturnRows(rows)

	otp, err := repo.GetLatestOTP(context.Background(), "01712345678")
	require.NoError(t, err)
	assert.Equal(t, int64(9), otp.ID)
	assert.Equal(t, "654321", otp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestOTP_NoRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, phone, code, created_at, expires_at").
		WithArgs("01712345678").
		WillReturnRows(sqlmock.NewRows([]string{"id", "phone", "code", "created_at", "expires_at"}))

	otp, err := repo.GetLatestOTP(context.Background(), "01712345678")
	assert.NoError(t, err)
	assert.Nil(t, otp)
	assert.NoError(t, mock.ExpectationsWereMet())
}
