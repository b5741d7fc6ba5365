package users

import (
	"context"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kormo-app/kormo/services/users UserUC

// UserUC represents the user profile usecase interface
type UserUC interface {
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	RecentUsers(ctx context.Context) ([]models.UserProfile, error)
	SearchUsersByEmail(ctx context.Context, emailPrefix string) ([]models.UserProfile, error)

	// Admin moderation
	UpdateUserRole(ctx context.Context, id, role string) error
}
