package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// GetProfileByPhone retrieves a profile document by phone.
// Returns (nil, nil) when no document exists.
func (r *ProfileRepo) GetProfileByPhone(ctx context.Context, phone string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.users.FindOne(ctx, bson.M{"phone": phone}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// CreateProfile inserts a new profile document and sets its generated id
// on the given model.
func (r *ProfileRepo) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	result, err := r.users.InsertOne(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		profile.ID = oid
	}

	return nil
}

// DeleteProfileByID removes a profile document. Used only as best-effort
// rollback when token issuance fails after registration.
func (r *ProfileRepo) DeleteProfileByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.users.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

// TouchLastLogIn stamps the profile's last_log_in field. Best-effort; the
// recent-users listing sorts on it.
func (r *ProfileRepo) TouchLastLogIn(ctx context.Context, phone string) error {
	_, err := r.users.UpdateOne(
		ctx,
		bson.M{"phone": phone},
		bson.M{"$set": bson.M{"last_log_in": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update last_log_in: %w", err)
	}

	return nil
}
