package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/internal/utils"
	"github.com/kormo-app/kormo/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles username/password registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return utils.BadRequestResponse(c, validationMessage(err))
		case errors.Is(err, apperrors.ErrConflict):
			return utils.BadRequestResponse(c, "User already exists")
		case errors.Is(err, apperrors.ErrPartialFailure):
			logger.Error("Registration partially failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Registered in auth but failed to save profile")
		case errors.Is(err, apperrors.ErrTokenIssuance), errors.Is(err, apperrors.ErrConfiguration):
			logger.Error("Token issuance failed during registration", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Server error while creating token")
		default:
			logger.Error("Registration failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to register")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registered successfully", response)
}

// Login handles username/password login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return utils.BadRequestResponse(c, "phone and password required")
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			return utils.BadRequestResponse(c, "Invalid credentials")
		case errors.Is(err, apperrors.ErrTokenIssuance), errors.Is(err, apperrors.ErrConfiguration):
			logger.Error("Token issuance failed during login", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Server error while creating token")
		default:
			logger.Error("Login failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Auth error")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}

// SendOTP handles OTP dispatch requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.SendOTP(c.Request().Context(), req.Phone); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return utils.BadRequestResponse(c, "Phone is required")
		case errors.Is(err, apperrors.ErrDelivery):
			return utils.InternalServerErrorResponse(c, "Failed to send OTP via SMS")
		default:
			logger.Error("Failed to save OTP", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to save OTP")
		}
	}

	// Never echo the code back.
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully via SMS", nil)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.VerifyOTP(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return utils.BadRequestResponse(c, "Phone and OTP are required")
		case errors.Is(err, auth.ErrOTPNotFound):
			return utils.NotFoundResponse(c, "OTP not found")
		case errors.Is(err, auth.ErrUserNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, apperrors.ErrExpired):
			return utils.BadRequestResponse(c, "OTP expired")
		case errors.Is(err, apperrors.ErrCodeMismatch):
			return utils.BadRequestResponse(c, "Invalid OTP")
		case errors.Is(err, apperrors.ErrTokenIssuance), errors.Is(err, apperrors.ErrConfiguration):
			logger.Error("Token issuance failed during OTP verification", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Server error while creating token")
		default:
			logger.Error("OTP verification failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Server error")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", response)
}

// validationMessage keeps the original field-level wording without exposing
// the sentinel prefix.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := apperrors.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
