package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// ListingRepo implements catalog.ListingRepo over the services collection
type ListingRepo struct {
	listings *mongo.Collection
}

// NewListingRepo creates a new listing repository
func NewListingRepo(listings *mongo.Collection) *ListingRepo {
	return &ListingRepo{listings: listings}
}

// FindApproved returns approved listings matching the filter. Title and
// location match case-insensitive substrings; category is exact.
func (r *ListingRepo) FindApproved(ctx context.Context, filter models.ListingFilter) ([]models.ServiceListing, error) {
	query := bson.M{"status": models.ListingStatusApproved}
	if filter.Title != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Title), "$options": "i"}
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": regexp.QuoteMeta(filter.Location), "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.listings.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved services: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.ServiceListing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}

	return listings, nil
}

// FindByID returns a listing by id, or (nil, nil) when none matches
func (r *ListingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceListing, error) {
	var listing models.ServiceListing
	err := r.listings.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return &listing, nil
}

// FindByOwner returns a provider's listings regardless of status, newest first
func (r *ListingRepo) FindByOwner(ctx context.Context, email string) ([]models.ServiceListing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.listings.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services by owner: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.ServiceListing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}

	return listings, nil
}

// Insert stores a new listing and fills in its generated id
func (r *ListingRepo) Insert(ctx context.Context, listing *models.ServiceListing) error {
	result, err := r.listings.InsertOne(ctx, listing)
	if err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid
	}

	return nil
}

// UpdateStatus sets a listing's moderation status and returns the number of
// matched documents.
func (r *ListingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	result, err := r.listings.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update service status: %w", err)
	}

	return result.MatchedCount, nil
}

// UpdateFields applies a partial update to a listing. The _id field is
// stripped so callers cannot rewrite document identity.
func (r *ListingRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	delete(fields, "_id")
	delete(fields, "id")

	result, err := r.listings.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update service: %w", err)
	}

	return result.MatchedCount, nil
}

// Delete removes a listing and returns the number of deleted documents
func (r *ListingRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.listings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete service: %w", err)
	}

	return result.DeletedCount, nil
}
