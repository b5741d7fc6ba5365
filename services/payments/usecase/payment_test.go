package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/payments/mocks"
)

func TestCreatePaymentIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(mocks.NewMockPaymentRepo(ctrl), gw, nil, nil)

	// 499.995 rounds up to 50000 cents
	gw.EXPECT().CreateIntent(gomock.Any(), int64(50000)).Return("pi_secret_123", nil)

	resp, err := uc.CreatePaymentIntent(context.Background(), 499.995)
	assert.NoError(t, err)
	assert.Equal(t, "pi_secret_123", resp.ClientSecret)
}

func TestCreatePaymentIntent_RejectsNonPositivePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPaymentUC(mocks.NewMockPaymentRepo(ctrl), mocks.NewMockPaymentGW(ctrl), nil, nil)

	_, err := uc.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	uc := NewPaymentUC(repo, mocks.NewMockPaymentGW(ctrl), publisher, nil)

	serviceID := primitive.NewObjectID().Hex()
	payment := &models.Payment{
		ServiceID:     serviceID,
		BuyerEmail:    "buyer@example.com",
		ProviderEmail: "provider@example.com",
		Price:         1200,
	}

	repo.EXPECT().
		InsertPayment(gomock.Any(), payment).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			assert.False(t, p.Date.IsZero())
			p.ID = primitive.NewObjectID()
			return nil
		})
	repo.EXPECT().AddProviderEarning(gomock.Any(), "provider@example.com", float64(1200)).Return(nil)
	repo.EXPECT().IncrementSoldCount(gomock.Any(), serviceID).Return(nil)
	publisher.EXPECT().
		PublishPaymentCompleted(gomock.Any()).
		DoAndReturn(func(event *models.PaymentCompletedEvent) error {
			assert.Equal(t, payment.ID.Hex(), event.PaymentID)
			assert.Equal(t, "buyer@example.com", event.BuyerEmail)
			return nil
		})

	err := uc.RecordPayment(context.Background(), payment)
	assert.NoError(t, err)
}

func TestRecordPayment_SideEffectFailuresDoNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	uc := NewPaymentUC(repo, mocks.NewMockPaymentGW(ctrl), publisher, nil)

	payment := &models.Payment{
		ServiceID:     primitive.NewObjectID().Hex(),
		BuyerEmail:    "buyer@example.com",
		ProviderEmail: "provider@example.com",
		Price:         300,
	}

	repo.EXPECT().InsertPayment(gomock.Any(), payment).Return(nil)
	repo.EXPECT().AddProviderEarning(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
	repo.EXPECT().IncrementSoldCount(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
	publisher.EXPECT().PublishPaymentCompleted(gomock.Any()).Return(errors.New("nats down"))

	err := uc.RecordPayment(context.Background(), payment)
	assert.NoError(t, err)
}

func TestRecordPayment_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPaymentUC(mocks.NewMockPaymentRepo(ctrl), mocks.NewMockPaymentGW(ctrl), nil, nil)

	err := uc.RecordPayment(context.Background(), &models.Payment{BuyerEmail: "buyer@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProviderEarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	uc := NewPaymentUC(repo, mocks.NewMockPaymentGW(ctrl), nil, nil)

	latest := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	history := []models.Payment{
		{Price: 500, Date: latest},
		{Price: 300, Date: latest.Add(-24 * time.Hour)},
	}
	repo.EXPECT().FindByProvider(gomock.Any(), "provider@example.com").Return(history, nil)

	earnings, err := uc.ProviderEarnings(context.Background(), "provider@example.com")
	assert.NoError(t, err)
	assert.Equal(t, float64(800), earnings.Summary.TotalEarnings)
	assert.Equal(t, 2, earnings.Summary.TotalSales)
	assert.Equal(t, latest, *earnings.Summary.LastPayment)
}

func TestProviderEarnings_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	uc := NewPaymentUC(repo, mocks.NewMockPaymentGW(ctrl), nil, nil)

	repo.EXPECT().FindByProvider(gomock.Any(), "new@example.com").Return([]models.Payment{}, nil)

	earnings, err := uc.ProviderEarnings(context.Background(), "new@example.com")
	assert.NoError(t, err)
	assert.Equal(t, float64(0), earnings.Summary.TotalEarnings)
	assert.Nil(t, earnings.Summary.LastPayment)
}

func TestHandleCheckoutCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	uc := NewPaymentUC(repo, mocks.NewMockPaymentGW(ctrl), nil, nil)

	repo.EXPECT().
		UpsertSubscription(gomock.Any(), "buyer@example.com", "cs_test_123", "paid").
		Return(nil)

	err := uc.HandleCheckoutCompleted(context.Background(), &models.CheckoutEvent{
		SessionID:     "cs_test_123",
		CustomerEmail: "buyer@example.com",
		Status:        "paid",
	})
	assert.NoError(t, err)
}

func TestHandleCheckoutCompleted_IgnoresNilAndEmailless(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPaymentUC(mocks.NewMockPaymentRepo(ctrl), mocks.NewMockPaymentGW(ctrl), nil, nil)

	assert.NoError(t, uc.HandleCheckoutCompleted(context.Background(), nil))
	assert.NoError(t, uc.HandleCheckoutCompleted(context.Background(), &models.CheckoutEvent{SessionID: "cs_1"}))
}

func TestNotifyProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	smsGW := mocks.NewMockSMSGW(ctrl)
	uc := NewPaymentUC(mocks.NewMockPaymentRepo(ctrl), mocks.NewMockPaymentGW(ctrl), nil, smsGW)

	smsGW.EXPECT().
		SendSMS(gomock.Any(), "+8801712345678", gomock.Any()).
		Return("SM123", nil)

	err := uc.NotifyProvider(context.Background(), &models.PaymentCompletedEvent{
		ProviderEmail: "provider@example.com",
		ProviderPhone: "01712345678",
		BuyerEmail:    "buyer@example.com",
		Price:         500,
	})
	assert.NoError(t, err)
}

func TestNotifyProvider_SkipsWithoutPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	smsGW := mocks.NewMockSMSGW(ctrl)
	uc := NewPaymentUC(mocks.NewMockPaymentRepo(ctrl), mocks.NewMockPaymentGW(ctrl), nil, smsGW)

	err := uc.NotifyProvider(context.Background(), &models.PaymentCompletedEvent{
		ProviderEmail: "provider@example.com",
	})
	assert.NoError(t, err)
}
