package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/catalog"
)

// CatalogUC implements catalog.CatalogUC
type CatalogUC struct {
	listingRepo catalog.ListingRepo
	cache       catalog.ListingCache
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(listingRepo catalog.ListingRepo, cache catalog.ListingCache) *CatalogUC {
	return &CatalogUC{
		listingRepo: listingRepo,
		cache:       cache,
	}
}

// ListApproved returns approved listings for a filter. The cache is
// best-effort on both read and write; the store remains the source of truth.
func (u *CatalogUC) ListApproved(ctx context.Context, filter models.ListingFilter) ([]models.ServiceListing, error) {
	if u.cache != nil {
		cached, err := u.cache.GetApproved(ctx, filter)
		if err != nil {
			logger.Warn("Listing cache read failed", logger.Err(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	listings, err := u.listingRepo.FindApproved(ctx, filter)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetApproved(ctx, filter, listings); err != nil {
			logger.Warn("Listing cache write failed", logger.Err(err))
		}
	}

	return listings, nil
}

// GetApprovedByID returns an approved listing by id. Pending and rejected
// listings are not visible through this path.
func (u *CatalogUC) GetApprovedByID(ctx context.Context, id string) (*models.ServiceListing, error) {
	listing, err := u.getListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingStatusApproved {
		return nil, fmt.Errorf("%w: service not found", apperrors.ErrNotFound)
	}

	return listing, nil
}

// GetByID returns a listing by id regardless of status
func (u *CatalogUC) GetByID(ctx context.Context, id string) (*models.ServiceListing, error) {
	return u.getListing(ctx, id)
}

// ListByOwner returns a provider's listings regardless of status
func (u *CatalogUC) ListByOwner(ctx context.Context, email string) ([]models.ServiceListing, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email query is required", apperrors.ErrValidation)
	}
	return u.listingRepo.FindByOwner(ctx, email)
}

// CreateListing stores a new listing. Status is always forced to pending so
// nothing becomes bookable without moderation.
func (u *CatalogUC) CreateListing(ctx context.Context, listing *models.ServiceListing) error {
	if listing.Title == "" || listing.UserEmail == "" {
		return fmt.Errorf("%w: title and userEmail are required", apperrors.ErrValidation)
	}
	if listing.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
	}

	listing.ID = primitive.NilObjectID
	listing.Status = models.ListingStatusPending
	listing.SoldCount = 0
	listing.CreatedAt = time.Now()

	if err := u.listingRepo.Insert(ctx, listing); err != nil {
		return err
	}

	u.invalidateCache(ctx)
	return nil
}

// UpdateListing applies a partial update to a listing
func (u *CatalogUC) UpdateListing(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid service id", apperrors.ErrValidation)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}

	matched, err := u.listingRepo.UpdateFields(ctx, oid, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: service not found", apperrors.ErrNotFound)
	}

	u.invalidateCache(ctx)
	return nil
}

// DeleteListing removes a listing
func (u *CatalogUC) DeleteListing(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid service id", apperrors.ErrValidation)
	}

	deleted, err := u.listingRepo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: service not found", apperrors.ErrNotFound)
	}

	u.invalidateCache(ctx)
	return nil
}

// ModerateListing applies an admin approve or reject decision
func (u *CatalogUC) ModerateListing(ctx context.Context, id, action string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid service id", apperrors.ErrValidation)
	}

	var status string
	switch action {
	case "approve":
		status = models.ListingStatusApproved
	case "reject":
		status = models.ListingStatusRejected
	default:
		return fmt.Errorf("%w: action must be approve or reject", apperrors.ErrValidation)
	}

	matched, err := u.listingRepo.UpdateStatus(ctx, oid, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: service not found", apperrors.ErrNotFound)
	}

	u.invalidateCache(ctx)
	return nil
}

func (u *CatalogUC) getListing(ctx context.Context, id string) (*models.ServiceListing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service id", apperrors.ErrValidation)
	}

	listing, err := u.listingRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: service not found", apperrors.ErrNotFound)
	}

	return listing, nil
}

func (u *CatalogUC) invalidateCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		logger.Warn("Listing cache invalidation failed", logger.Err(err))
	}
}
