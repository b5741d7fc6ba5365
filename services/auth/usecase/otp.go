package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	jwtpkg "github.com/kormo-app/kormo/internal/pkg/jwt"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/internal/utils"
	"github.com/kormo-app/kormo/services/auth"
)

const (
	otpLength = 6
	otpTTL    = 5 * time.Minute
)

// generateOTPCode produces a fixed-length numeric code. math/rand is enough
// for a single-use, short-lived code; see DESIGN.md for the hardening note.
func generateOTPCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = byte('0' + rand.Intn(10))
	}
	return string(code)
}

// SendOTP generates a passcode, persists it and delivers it via SMS. The
// record is saved before dispatch is attempted, so a delivery failure leaves
// a valid code behind; a later verify can still succeed if the caller
// obtains the code by other means. That ordering is deliberate.
func (u *AuthUC) SendOTP(ctx context.Context, phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: phone is required", apperrors.ErrValidation)
	}

	now := time.Now()
	otp := &models.OTP{
		Phone:     phone,
		Code:      generateOTPCode(otpLength),
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}

	if err := u.credRepo.CreateOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to save OTP: %w", err)
	}

	messageID, err := u.smsGW.SendSMS(ctx, utils.NormalizePhone(phone), fmt.Sprintf("Your OTP is %s", otp.Code))
	if err != nil {
		logger.Error("OTP SMS dispatch failed",
			logger.String("phone", phone),
			logger.Err(err))
		return fmt.Errorf("%w: %v", apperrors.ErrDelivery, err)
	}

	logger.Info("OTP sent",
		logger.String("phone", phone),
		logger.String("message_id", messageID))

	return nil
}

// VerifyOTP checks the supplied code against the newest record for the
// phone and issues a session token over the matching profile. Codes are not
// invalidated after a successful verification; they stay usable until
// expiry.
func (u *AuthUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	if phone == "" || code == "" {
		return nil, fmt.Errorf("%w: phone and OTP are required", apperrors.ErrValidation)
	}

	otp, err := u.credRepo.GetLatestOTP(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	if otp == nil {
		return nil, auth.ErrOTPNotFound
	}

	if time.Now().After(otp.ExpiresAt) {
		return nil, fmt.Errorf("%w: OTP expired", apperrors.ErrExpired)
	}

	if otp.Code != code {
		return nil, fmt.Errorf("%w: invalid OTP", apperrors.ErrCodeMismatch)
	}

	// Verifying a code never creates an account; the profile must already
	// exist.
	profile, err := u.profileRepo.GetProfileByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, auth.ErrUserNotFound
	}

	token, _, err := jwtpkg.GenerateToken(profile.ID.Hex(), profile.Phone, profile.Role, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Profile: profile.ToProfile(),
		Token:   token,
	}, nil
}
