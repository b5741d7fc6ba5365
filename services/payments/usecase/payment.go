package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/internal/utils"
	"github.com/kormo-app/kormo/services/payments"
)

// PaymentUC implements payments.PaymentUC
type PaymentUC struct {
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
	publisher   payments.EventPublisher
	smsGW       payments.SMSGW
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	paymentRepo payments.PaymentRepo,
	paymentGW payments.PaymentGW,
	publisher payments.EventPublisher,
	smsGW payments.SMSGW,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		publisher:   publisher,
		smsGW:       smsGW,
	}
}

// CreatePaymentIntent opens a gateway intent for the given price
func (u *PaymentUC) CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}

	amountCents := int64(math.Round(price * 100))
	clientSecret, err := u.paymentGW.CreateIntent(ctx, amountCents)
	if err != nil {
		return nil, err
	}

	return &models.PaymentIntentResponse{ClientSecret: clientSecret}, nil
}

// RecordPayment stores a confirmed payment and applies its side effects. The
// record insert is the only hard failure; earning credit, sold count and the
// completion event are best-effort once the record exists.
func (u *PaymentUC) RecordPayment(ctx context.Context, payment *models.Payment) error {
	if payment.ServiceID == "" || payment.BuyerEmail == "" || payment.ProviderEmail == "" {
		return fmt.Errorf("%w: serviceId, buyerEmail and providerEmail are required", apperrors.ErrValidation)
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	if err := u.paymentRepo.InsertPayment(ctx, payment); err != nil {
		return err
	}

	if err := u.paymentRepo.AddProviderEarning(ctx, payment.ProviderEmail, payment.Price); err != nil {
		logger.Warn("Failed to credit provider earning",
			logger.String("provider", payment.ProviderEmail), logger.Err(err))
	}

	if err := u.paymentRepo.IncrementSoldCount(ctx, payment.ServiceID); err != nil {
		logger.Warn("Failed to increment sold count",
			logger.String("service_id", payment.ServiceID), logger.Err(err))
	}

	if u.publisher != nil {
		event := &models.PaymentCompletedEvent{
			PaymentID:     payment.ID.Hex(),
			ServiceID:     payment.ServiceID,
			BuyerEmail:    payment.BuyerEmail,
			ProviderEmail: payment.ProviderEmail,
			ProviderPhone: payment.ProviderPhone,
			Price:         payment.Price,
			Date:          payment.Date,
		}
		if err := u.publisher.PublishPaymentCompleted(event); err != nil {
			logger.Warn("Failed to publish payment event", logger.Err(err))
		}
	}

	return nil
}

// BuyerHistory returns a buyer's payments, newest first
func (u *PaymentUC) BuyerHistory(ctx context.Context, email string) ([]models.Payment, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	return u.paymentRepo.FindByBuyer(ctx, email)
}

// ProviderEarnings returns a provider's history with an aggregate summary
func (u *PaymentUC) ProviderEarnings(ctx context.Context, email string) (*models.ProviderEarnings, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}

	history, err := u.paymentRepo.FindByProvider(ctx, email)
	if err != nil {
		return nil, err
	}

	summary := models.EarningsSummary{TotalSales: len(history)}
	for _, p := range history {
		summary.TotalEarnings += p.Price
	}
	if len(history) > 0 {
		last := history[0].Date
		summary.LastPayment = &last
	}

	return &models.ProviderEarnings{Summary: summary, History: history}, nil
}

// HandleCheckoutCompleted records a verified checkout outcome on the buyer's
// profile. A nil event (other webhook types) is ignored.
func (u *PaymentUC) HandleCheckoutCompleted(ctx context.Context, event *models.CheckoutEvent) error {
	if event == nil {
		return nil
	}
	if event.CustomerEmail == "" {
		logger.Warn("Checkout session without customer email",
			logger.String("session_id", event.SessionID))
		return nil
	}

	status := event.Status
	if status == "" {
		status = "paid"
	}

	return u.paymentRepo.UpsertSubscription(ctx, event.CustomerEmail, event.SessionID, status)
}

// NotifyProvider sends an SMS receipt for a completed payment. Failures are
// returned for the caller to log; they never affect the payment itself.
func (u *PaymentUC) NotifyProvider(ctx context.Context, event *models.PaymentCompletedEvent) error {
	if u.smsGW == nil || event.ProviderPhone == "" {
		return nil
	}

	body := fmt.Sprintf("You received a payment of %.2f BDT from %s.", event.Price, event.BuyerEmail)
	messageID, err := u.smsGW.SendSMS(ctx, utils.NormalizePhone(event.ProviderPhone), body)
	if err != nil {
		return fmt.Errorf("failed to send payment receipt: %w", err)
	}

	logger.Info("Payment receipt sent",
		logger.String("provider", event.ProviderEmail),
		logger.String("message_id", messageID))
	return nil
}
