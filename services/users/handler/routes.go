package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/middleware"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the user handlers
func NewHandler(userHandler *http.UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the user profile routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	userGroup := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	userGroup.GET("", h.userHandler.ListUsers)
	userGroup.GET("/recent", h.userHandler.RecentUsers)
	userGroup.GET("/search", h.userHandler.SearchUsers)
	userGroup.PATCH("/admin/:id", h.userHandler.UpdateRole, middleware.RequireRole("admin"))
}
