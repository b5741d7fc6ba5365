package models

import (
	"time"
)

// OTP represents a one-time passcode bound to a phone number. Rows are
// append-only; only the most recently created row per phone is consulted
// during verification.
type OTP struct {
	ID        int64     `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	Code      string    `json:"code" db:"code"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// SendOTPRequest represents a request to send an OTP via SMS
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Profile *Profile `json:"profile"`
	Token   string   `json:"token"`
}
