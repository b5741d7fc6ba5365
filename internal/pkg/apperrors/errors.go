// Package apperrors defines the sentinel errors shared across services.
// Handlers translate them to HTTP statuses at the boundary; usecases wrap
// them with context via fmt.Errorf("%w: ...").
package apperrors

import "errors"

var (
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates an attempt to create a resource that already exists.
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidCredentials covers both an unknown username and a failed
	// password comparison. Callers must receive the same generic message in
	// either case.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound indicates a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrExpired indicates a one-time code past its validity window.
	ErrExpired = errors.New("code expired")

	// ErrCodeMismatch indicates a one-time code that does not match the
	// stored value.
	ErrCodeMismatch = errors.New("code mismatch")

	// ErrDelivery indicates the SMS gateway rejected or failed a dispatch.
	// The stored code remains valid despite the failure.
	ErrDelivery = errors.New("delivery failed")

	// ErrPartialFailure indicates a cross-store write that was rolled back
	// with a compensating delete.
	ErrPartialFailure = errors.New("partial write failure")

	// ErrTokenIssuance indicates the session token could not be signed.
	ErrTokenIssuance = errors.New("token issuance failed")

	// ErrConfiguration indicates a missing or invalid server configuration,
	// e.g. an absent signing secret.
	ErrConfiguration = errors.New("server misconfiguration")

	// ErrUnauthorized indicates a missing, malformed or expired session token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated caller without the required role.
	ErrForbidden = errors.New("forbidden")
)
