package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kormo-app/kormo/services/users UserRepo

// UserRepo defines access to the profile documents for listing and
// moderation.
type UserRepo interface {
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
	RecentProfiles(ctx context.Context, limit int64) ([]models.UserProfile, error)
	SearchProfilesByEmail(ctx context.Context, prefix string, limit int64) ([]models.UserProfile, error)

	// UpdateProfileRole returns the number of matched documents.
	UpdateProfileRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error)
}
