package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/middleware"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/payments/handler/http"
)

// Handler coordinates the HTTP handlers for the payments service
type Handler struct {
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the payment handlers
func NewHandler(paymentHandler *http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payment routes. The webhook stays outside the
// token gate; the gateway authenticates it with its own signature.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	paymentGroup := e.Group("/api/payments")
	paymentGroup.POST("/webhook", h.paymentHandler.Webhook)

	gated := paymentGroup.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	gated.POST("/create-payment-intent", h.paymentHandler.CreatePaymentIntent)
	gated.POST("", h.paymentHandler.RecordPayment)
	gated.GET("/history/:email", h.paymentHandler.BuyerHistory)
	gated.GET("/provider/:email", h.paymentHandler.ProviderEarnings)
}
