package auth

import (
	"fmt"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
)

// Verification errors that need distinct messages at the handler boundary.
// Both chain to apperrors.ErrNotFound.
var (
	ErrOTPNotFound  = fmt.Errorf("OTP not found: %w", apperrors.ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
)
