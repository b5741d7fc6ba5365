package payments

import (
	"context"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kormo-app/kormo/services/payments PaymentRepo

// PaymentRepo defines access to the payment records and the cross-collection
// effects of a completed payment.
type PaymentRepo interface {
	InsertPayment(ctx context.Context, payment *models.Payment) error

	// FindByBuyer and FindByProvider return payments newest first.
	FindByBuyer(ctx context.Context, email string) ([]models.Payment, error)
	FindByProvider(ctx context.Context, email string) ([]models.Payment, error)

	// AddProviderEarning credits the provider profile's running earning total.
	AddProviderEarning(ctx context.Context, email string, amount float64) error

	// IncrementSoldCount bumps the sold counter on a service listing.
	IncrementSoldCount(ctx context.Context, serviceID string) error

	// UpsertSubscription records a checkout outcome on the buyer's profile,
	// keyed by session id so repeated deliveries change nothing.
	UpsertSubscription(ctx context.Context, email, sessionID, status string) error
}
