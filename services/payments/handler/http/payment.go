package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/internal/utils"
	"github.com/kormo-app/kormo/services/payments"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	paymentUC payments.PaymentUC
	paymentGW payments.PaymentGW
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC, paymentGW payments.PaymentGW) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		paymentGW: paymentGW,
	}
}

// CreatePaymentIntent handles opening a gateway payment intent
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req models.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.paymentUC.CreatePaymentIntent(c.Request().Context(), req.Price)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "Price must be positive")
		}
		logger.Error("Failed to create payment intent", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create payment intent")
	}

	return c.JSON(http.StatusOK, resp)
}

// RecordPayment handles storing a confirmed payment
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var payment models.Payment
	if err := c.Bind(&payment); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.paymentUC.RecordPayment(c.Request().Context(), &payment); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "serviceId, buyerEmail and providerEmail are required")
		}
		logger.Error("Failed to record payment", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to record payment")
	}

	return c.JSON(http.StatusCreated, payment)
}

// BuyerHistory handles listing a buyer's payments
func (h *PaymentHandler) BuyerHistory(c echo.Context) error {
	history, err := h.paymentUC.BuyerHistory(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "Email is required")
		}
		logger.Error("Failed to fetch payment history", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch payment history")
	}

	return c.JSON(http.StatusOK, history)
}

// ProviderEarnings handles the provider earnings dashboard
func (h *PaymentHandler) ProviderEarnings(c echo.Context) error {
	earnings, err := h.paymentUC.ProviderEarnings(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "Email is required")
		}
		logger.Error("Failed to fetch provider earnings", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch provider earnings")
	}

	return c.JSON(http.StatusOK, earnings)
}

// Webhook handles gateway webhook deliveries. The raw body is read before
// any binding so the signature check sees the exact payload bytes.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read webhook payload")
	}

	event, err := h.paymentGW.VerifyWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		logger.Warn("Webhook verification failed", logger.Err(err))
		return utils.BadRequestResponse(c, "Webhook verification failed")
	}

	if err := h.paymentUC.HandleCheckoutCompleted(c.Request().Context(), event); err != nil {
		logger.Error("Failed to apply checkout completion", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process webhook")
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
