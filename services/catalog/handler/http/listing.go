package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/internal/utils"
	"github.com/kormo-app/kormo/services/catalog"
)

// ListingHandler handles HTTP requests for service listings
type ListingHandler struct {
	catalogUC catalog.CatalogUC
}

// NewListingHandler creates a new listing handler
func NewListingHandler(catalogUC catalog.CatalogUC) *ListingHandler {
	return &ListingHandler{catalogUC: catalogUC}
}

// ListApproved handles browsing approved listings with optional filters
func (h *ListingHandler) ListApproved(c echo.Context) error {
	filter := models.ListingFilter{
		Title:    c.QueryParam("title"),
		Location: c.QueryParam("location"),
		Category: c.QueryParam("category"),
	}

	listings, err := h.catalogUC.ListApproved(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to fetch approved services", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch services")
	}

	return c.JSON(http.StatusOK, listings)
}

// GetApproved handles fetching a single approved listing
func (h *ListingHandler) GetApproved(c echo.Context) error {
	listing, err := h.catalogUC.GetApprovedByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapListingError(c, err, "Failed to fetch service")
	}

	return c.JSON(http.StatusOK, listing)
}

// Get handles fetching a listing regardless of status
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.catalogUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapListingError(c, err, "Failed to fetch service")
	}

	return c.JSON(http.StatusOK, listing)
}

// ListByOwner handles listing a provider's services by email
func (h *ListingHandler) ListByOwner(c echo.Context) error {
	listings, err := h.catalogUC.ListByOwner(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "Email query is required")
		}
		logger.Error("Failed to fetch services by owner", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch services")
	}

	return c.JSON(http.StatusOK, listings)
}

// Create handles posting a new listing. New listings always land pending.
func (h *ListingHandler) Create(c echo.Context) error {
	var listing models.ServiceListing
	if err := c.Bind(&listing); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.catalogUC.CreateListing(c.Request().Context(), &listing); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "Title and userEmail are required")
		}
		logger.Error("Failed to create service", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create service")
	}

	return c.JSON(http.StatusCreated, listing)
}

// Update handles a partial listing update
func (h *ListingHandler) Update(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.catalogUC.UpdateListing(c.Request().Context(), c.Param("id"), fields); err != nil {
		return h.mapListingError(c, err, "Failed to update service")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service updated successfully", nil)
}

// Delete handles removing a listing
func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.catalogUC.DeleteListing(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapListingError(c, err, "Failed to delete service")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service deleted successfully", nil)
}

// Moderate handles an admin approve/reject decision
func (h *ListingHandler) Moderate(c echo.Context) error {
	var req models.ModerationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.catalogUC.ModerateListing(c.Request().Context(), c.Param("id"), req.Action); err != nil {
		return h.mapListingError(c, err, "Failed to moderate service")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service status updated successfully", nil)
}

func (h *ListingHandler) mapListingError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return utils.BadRequestResponse(c, "Invalid service id")
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, "Service not found")
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
