package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/utils"
	"github.com/kormo-app/kormo/services/users"
)

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// ListUsers handles listing all user profiles
func (h *UserHandler) ListUsers(c echo.Context) error {
	profiles, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to fetch users", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch users")
	}

	return c.JSON(http.StatusOK, profiles)
}

// RecentUsers handles listing the most recently logged-in users
func (h *UserHandler) RecentUsers(c echo.Context) error {
	profiles, err := h.userUC.RecentUsers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to fetch recent users", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch users")
	}

	return c.JSON(http.StatusOK, profiles)
}

// SearchUsers handles email prefix search
func (h *UserHandler) SearchUsers(c echo.Context) error {
	email := c.QueryParam("email")

	profiles, err := h.userUC.SearchUsersByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "Email query is required")
		}
		logger.Error("User search failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to search users")
	}

	return c.JSON(http.StatusOK, profiles)
}

// UpdateRole handles admin role grants and revocations
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id := c.Param("id")

	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.userUC.UpdateUserRole(c.Request().Context(), id, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return utils.BadRequestResponse(c, "Role is required")
		case errors.Is(err, apperrors.ErrNotFound):
			return utils.NotFoundResponse(c, "User not found")
		default:
			logger.Error("Role update failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to update role")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", nil)
}
