package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kormo-app/kormo/services/catalog ListingRepo,ListingCache

// ListingRepo defines access to the service listing documents.
// Lookup methods return (nil, nil) when no document matches.
type ListingRepo interface {
	FindApproved(ctx context.Context, filter models.ListingFilter) ([]models.ServiceListing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceListing, error)
	FindByOwner(ctx context.Context, email string) ([]models.ServiceListing, error)

	Insert(ctx context.Context, listing *models.ServiceListing) error

	// UpdateStatus and UpdateFields return the number of matched documents.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ListingCache caches approved listing query results. GetApproved returns
// (nil, nil) on a cache miss; cache failures must not fail the read path.
type ListingCache interface {
	GetApproved(ctx context.Context, filter models.ListingFilter) ([]models.ServiceListing, error)
	SetApproved(ctx context.Context, filter models.ListingFilter, listings []models.ServiceListing) error
	Invalidate(ctx context.Context) error
}
