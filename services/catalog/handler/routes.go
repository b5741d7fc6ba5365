package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/middleware"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/catalog/handler/http"
)

// Handler coordinates the HTTP handlers for the catalog service
type Handler struct {
	listingHandler *http.ListingHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the catalog handlers
func NewHandler(listingHandler *http.ListingHandler, cfg *models.Config) *Handler {
	return &Handler{
		listingHandler: listingHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the listing routes. Browsing approved listings is
// public; everything that mutates a listing sits behind the token gate, and
// moderation additionally requires the admin role.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/services/approved", h.listingHandler.ListApproved)
	e.GET("/services/approved/:id", h.listingHandler.GetApproved)
	e.GET("/services", h.listingHandler.ListByOwner)
	e.GET("/services/:id", h.listingHandler.Get)

	gate := middleware.JWTAuthMiddleware(h.cfg.JWT)
	e.POST("/services", h.listingHandler.Create, gate)
	e.PUT("/services/:id", h.listingHandler.Update, gate)
	e.DELETE("/services/:id", h.listingHandler.Delete, gate)
	e.PATCH("/services/:id", h.listingHandler.Moderate, gate, middleware.RequireRole("admin"))
}
