package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// PaymentRepo implements payments.PaymentRepo over the payments, users and
// services collections.
type PaymentRepo struct {
	payments *mongo.Collection
	users    *mongo.Collection
	listings *mongo.Collection
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(payments, users, listings *mongo.Collection) *PaymentRepo {
	return &PaymentRepo{
		payments: payments,
		users:    users,
		listings: listings,
	}
}

// InsertPayment stores a payment record and fills in its generated id
func (r *PaymentRepo) InsertPayment(ctx context.Context, payment *models.Payment) error {
	result, err := r.payments.InsertOne(ctx, payment)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}

	return nil
}

// FindByBuyer returns a buyer's payments, newest first
func (r *PaymentRepo) FindByBuyer(ctx context.Context, email string) ([]models.Payment, error) {
	return r.findByField(ctx, "buyerEmail", email)
}

// FindByProvider returns a provider's received payments, newest first
func (r *PaymentRepo) FindByProvider(ctx context.Context, email string) ([]models.Payment, error) {
	return r.findByField(ctx, "providerEmail", email)
}

func (r *PaymentRepo) findByField(ctx context.Context, field, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.payments.Find(ctx, bson.M{field: email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	history := []models.Payment{}
	if err := cursor.All(ctx, &history); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}

	return history, nil
}

// AddProviderEarning credits the provider profile's earning total
func (r *PaymentRepo) AddProviderEarning(ctx context.Context, email string, amount float64) error {
	_, err := r.users.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$inc": bson.M{"earning": amount}},
	)
	if err != nil {
		return fmt.Errorf("failed to credit provider earning: %w", err)
	}

	return nil
}

// IncrementSoldCount bumps the sold counter on a service listing
func (r *PaymentRepo) IncrementSoldCount(ctx context.Context, serviceID string) error {
	oid, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return fmt.Errorf("invalid service id %q: %w", serviceID, err)
	}

	_, err = r.listings.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"soldCount": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment sold count: %w", err)
	}

	return nil
}

// UpsertSubscription records a checkout outcome on the buyer's profile. The
// session-id guard makes webhook re-deliveries no-ops.
func (r *PaymentRepo) UpsertSubscription(ctx context.Context, email, sessionID, status string) error {
	sub := models.Subscription{
		SessionID: sessionID,
		Status:    status,
		UpdatedAt: time.Now(),
	}

	_, err := r.users.UpdateOne(
		ctx,
		bson.M{
			"email":                   email,
			"subscription.session_id": bson.M{"$ne": sessionID},
		},
		bson.M{"$set": bson.M{"subscription": sub}},
	)
	if err != nil {
		return fmt.Errorf("failed to record subscription: %w", err)
	}

	return nil
}
