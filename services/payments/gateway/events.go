package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/kormo-app/kormo/internal/pkg/models"
	natspkg "github.com/kormo-app/kormo/internal/pkg/nats"
	"github.com/kormo-app/kormo/services/payments"
)

// EventsGW implements payments.EventPublisher on NATS
type EventsGW struct {
	natsClient *natspkg.Client
}

// NewEventsGW creates a NATS-backed event publisher
func NewEventsGW(natsClient *natspkg.Client) *EventsGW {
	return &EventsGW{natsClient: natsClient}
}

// PublishPaymentCompleted publishes a payment completion event
func (g *EventsGW) PublishPaymentCompleted(event *models.PaymentCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode payment event: %w", err)
	}

	return g.natsClient.Publish(payments.SubjectPaymentCompleted, data)
}
