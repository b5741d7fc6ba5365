package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// UserRepo implements users.UserRepo over the users collection
type UserRepo struct {
	users *mongo.Collection
}

// NewUserRepo creates a new user profile repository
func NewUserRepo(users *mongo.Collection) *UserRepo {
	return &UserRepo{users: users}
}

// ListProfiles returns every profile document
func (r *UserRepo) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.UserProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	return profiles, nil
}

// RecentProfiles returns the most recently logged-in profiles
func (r *UserRepo) RecentProfiles(ctx context.Context, limit int64) ([]models.UserProfile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "last_log_in", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.UserProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	return profiles, nil
}

// SearchProfilesByEmail returns profiles whose email starts with the given
// prefix, case-insensitively.
func (r *UserRepo) SearchProfilesByEmail(ctx context.Context, prefix string, limit int64) ([]models.UserProfile, error) {
	pattern := "^" + regexp.QuoteMeta(prefix)
	filter := bson.M{"email": bson.M{"$regex": pattern, "$options": "i"}}

	cursor, err := r.users.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.UserProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	return profiles, nil
}

// UpdateProfileRole sets the role on a profile document and returns the
// number of matched documents.
func (r *UserRepo) UpdateProfileRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error) {
	result, err := r.users.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update role: %w", err)
	}

	return result.MatchedCount, nil
}
