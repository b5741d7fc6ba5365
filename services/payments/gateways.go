package payments

import (
	"context"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kormo-app/kormo/services/payments PaymentGW,EventPublisher,SMSGW

// PaymentGW abstracts the card payment gateway
type PaymentGW interface {
	// CreateIntent opens a payment intent for an amount in the smallest
	// currency unit and returns its client secret.
	CreateIntent(ctx context.Context, amountCents int64) (string, error)

	// VerifyWebhook checks a webhook delivery's signature and extracts the
	// checkout completion it carries. Returns (nil, nil) for verified events
	// of other types.
	VerifyWebhook(payload []byte, signature string) (*models.CheckoutEvent, error)
}

// EventPublisher publishes payment lifecycle events
type EventPublisher interface {
	PublishPaymentCompleted(event *models.PaymentCompletedEvent) error
}

// SMSGW sends text messages for payment receipts
type SMSGW interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}
