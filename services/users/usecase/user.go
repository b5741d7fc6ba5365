package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/users"
)

const (
	recentUsersLimit  = 3
	searchResultLimit = 10
)

// UserUC implements users.UserUC
type UserUC struct {
	userRepo users.UserRepo
}

// NewUserUC creates a new user usecase instance
func NewUserUC(userRepo users.UserRepo) *UserUC {
	return &UserUC{userRepo: userRepo}
}

// ListUsers returns every user profile
func (u *UserUC) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return u.userRepo.ListProfiles(ctx)
}

// RecentUsers returns the three most recently logged-in profiles
func (u *UserUC) RecentUsers(ctx context.Context) ([]models.UserProfile, error) {
	return u.userRepo.RecentProfiles(ctx, recentUsersLimit)
}

// SearchUsersByEmail returns profiles matching an email prefix
func (u *UserUC) SearchUsersByEmail(ctx context.Context, emailPrefix string) ([]models.UserProfile, error) {
	if emailPrefix == "" {
		return nil, fmt.Errorf("%w: email query is required", apperrors.ErrValidation)
	}
	return u.userRepo.SearchProfilesByEmail(ctx, emailPrefix, searchResultLimit)
}

// UpdateUserRole sets a profile's role. Used by admins to grant or revoke
// the admin role.
func (u *UserUC) UpdateUserRole(ctx context.Context, id, role string) error {
	if role == "" {
		return fmt.Errorf("%w: role is required", apperrors.ErrValidation)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}

	matched, err := u.userRepo.UpdateProfileRole(ctx, oid, role)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}

	return nil
}
