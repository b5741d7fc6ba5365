package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kormo-app/kormo/services/auth CredentialRepo,ProfileRepo

// CredentialRepo defines access to the embedded credential store. Lookup
// methods return (nil, nil) when no row matches.
type CredentialRepo interface {
	// Password credentials
	GetCredentialByUsername(ctx context.Context, username string) (*models.Credential, error)
	CreateCredential(ctx context.Context, username, passwordHash, role string) (int64, error)
	DeleteCredential(ctx context.Context, id int64) error

	// One-time passcodes. Rows are append-only; GetLatestOTP returns the most
	// recently created row for the phone.
	CreateOTP(ctx context.Context, otp *models.OTP) error
	GetLatestOTP(ctx context.Context, phone string) (*models.OTP, error)
}

// ProfileRepo defines access to the user profile documents the auth flows
// read and write. Lookup methods return (nil, nil) when no document matches.
type ProfileRepo interface {
	GetProfileByPhone(ctx context.Context, phone string) (*models.UserProfile, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	DeleteProfileByID(ctx context.Context, id primitive.ObjectID) error
	TouchLastLogIn(ctx context.Context, phone string) error
}
