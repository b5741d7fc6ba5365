package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*AuthRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewAuthRepo(sqlx.NewDb(db, "sqlite3")), mock
}

func TestGetCredentialByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "username", "password", "role"}).
		AddRow(1, "01712345678", "$2a$10$hash", "customer")
	mock.ExpectQuery("SELECT id, username, password, role").
		WithArgs("01712345678").
		WillReturnRows(rows)

	cred, err := repo.GetCredentialByUsername(context.Background(), "01712345678")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cred.ID)
	assert.Equal(t, "01712345678", cred.Username)
	assert.Equal(t, "customer", cred.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCredentialByUsername_NoRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, username, password, role").
		WithArgs("01712345678").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}))

	cred, err := repo.GetCredentialByUsername(context.Background(), "01712345678")
	assert.NoError(t, err)
	assert.Nil(t, cred)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCredential(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("01712345678", "$2a$10$hash", "customer").
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := repo.CreateCredential(context.Background(), "01712345678", "$2a$10$hash", "customer")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCredential(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteCredential(context.Background(), 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
