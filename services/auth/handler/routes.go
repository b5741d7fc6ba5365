package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the auth handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the public authentication routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)

	// Legacy paths kept for older clients.
	e.POST("/send-otp", h.authHandler.SendOTP)
	e.POST("/verify-otp", h.authHandler.VerifyOTP)
}
