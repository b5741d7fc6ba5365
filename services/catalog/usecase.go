package catalog

import (
	"context"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kormo-app/kormo/services/catalog CatalogUC

// CatalogUC represents the service listing usecase interface
type CatalogUC interface {
	// ListApproved returns approved listings matching the filter, served
	// from cache when possible.
	ListApproved(ctx context.Context, filter models.ListingFilter) ([]models.ServiceListing, error)
	GetApprovedByID(ctx context.Context, id string) (*models.ServiceListing, error)
	GetByID(ctx context.Context, id string) (*models.ServiceListing, error)
	ListByOwner(ctx context.Context, email string) ([]models.ServiceListing, error)

	CreateListing(ctx context.Context, listing *models.ServiceListing) error
	UpdateListing(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteListing(ctx context.Context, id string) error

	// ModerateListing applies an admin approve or reject decision.
	ModerateListing(ctx context.Context, id, action string) error
}
