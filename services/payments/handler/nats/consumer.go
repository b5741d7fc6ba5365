package nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	natspkg "github.com/kormo-app/kormo/internal/pkg/nats"
	"github.com/kormo-app/kormo/services/payments"
)

const notifyTimeout = 10 * time.Second

// Consumer subscribes to payment events and sends provider receipts
type Consumer struct {
	paymentUC  payments.PaymentUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewConsumer creates a new payment event consumer
func NewConsumer(paymentUC payments.PaymentUC, natsClient *natspkg.Client) *Consumer {
	return &Consumer{
		paymentUC:  paymentUC,
		natsClient: natsClient,
	}
}

// Start subscribes to the payment completion subject
func (c *Consumer) Start() error {
	sub, err := c.natsClient.Subscribe(payments.SubjectPaymentCompleted, c.handlePaymentCompleted)
	if err != nil {
		return err
	}

	c.subs = append(c.subs, sub)
	return nil
}

// Stop drains the active subscriptions
func (c *Consumer) Stop() {
	for _, sub := range c.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("Failed to drain subscription", logger.Err(err))
		}
	}
}

func (c *Consumer) handlePaymentCompleted(msg *nats.Msg) {
	var event models.PaymentCompletedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Failed to decode payment event", logger.Err(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	// Receipts are best-effort; a failed send never retries the payment.
	if err := c.paymentUC.NotifyProvider(ctx, &event); err != nil {
		logger.Warn("Failed to notify provider",
			logger.String("payment_id", event.PaymentID), logger.Err(err))
	}
}
