package payments

import (
	"context"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// SubjectPaymentCompleted is the NATS subject payment events are published on
const SubjectPaymentCompleted = "payments.completed"

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kormo-app/kormo/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// CreatePaymentIntent opens a gateway payment intent for the given price
	// and returns its client secret.
	CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error)

	// RecordPayment stores a confirmed payment, credits the provider's
	// earnings, bumps the service sold count, and publishes a completion
	// event.
	RecordPayment(ctx context.Context, payment *models.Payment) error

	BuyerHistory(ctx context.Context, email string) ([]models.Payment, error)
	ProviderEarnings(ctx context.Context, email string) (*models.ProviderEarnings, error)

	// HandleCheckoutCompleted applies a verified checkout completion to the
	// buyer's profile. Re-deliveries of the same session are no-ops.
	HandleCheckoutCompleted(ctx context.Context, event *models.CheckoutEvent) error

	// NotifyProvider sends a best-effort SMS receipt for a completed payment.
	NotifyProvider(ctx context.Context, event *models.PaymentCompletedEvent) error
}
