package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	jwtpkg "github.com/kormo-app/kormo/internal/pkg/jwt"
	"github.com/kormo-app/kormo/internal/pkg/logger"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/internal/utils"
)

// bcryptCost matches the work factor the credential store was seeded with.
const bcryptCost = 10

// Register creates a credential record and a matching profile document.
// The two stores share no transaction; if the profile insert fails after the
// credential insert succeeded, the credential is removed again with a
// compensating delete so no credential exists without a profile.
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: username, password, email and phone are required", apperrors.ErrValidation)
	}

	if _, err := utils.ValidatePhone(req.Phone); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	existing, err := u.credRepo.GetCredentialByUsername(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing credential: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user already exists", apperrors.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = defaultRole
	}

	credID, err := u.credRepo.CreateCredential(ctx, req.Phone, string(hash), role)
	if err != nil {
		return nil, fmt.Errorf("failed to save credential: %w", err)
	}

	profile := &models.UserProfile{
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := u.profileRepo.CreateProfile(ctx, profile); err != nil {
		// The credential insert already succeeded; undo it so the stores
		// stay consistent. A failed compensation is logged but the caller
		// still sees the original failure.
		if delErr := u.credRepo.DeleteCredential(ctx, credID); delErr != nil {
			logger.Error("Failed to roll back credential after profile insert failure",
				logger.Int64("credential_id", credID),
				logger.Err(delErr))
		}
		return nil, fmt.Errorf("%w: registered in auth but failed to save profile: %v", apperrors.ErrPartialFailure, err)
	}

	token, _, err := jwtpkg.GenerateToken(profile.ID.Hex(), profile.Phone, profile.Role, u.cfg.JWT)
	if err != nil {
		if delErr := u.credRepo.DeleteCredential(ctx, credID); delErr != nil {
			logger.Error("Failed to roll back credential after token failure",
				logger.Int64("credential_id", credID),
				logger.Err(delErr))
		}
		if delErr := u.profileRepo.DeleteProfileByID(ctx, profile.ID); delErr != nil {
			logger.Error("Failed to roll back profile after token failure",
				logger.String("profile_id", profile.ID.Hex()),
				logger.Err(delErr))
		}
		return nil, err
	}

	return &models.AuthResponse{
		Profile: profile.ToProfile(),
		Token:   token,
	}, nil
}

// Login authenticates a phone/password pair against the credential store.
// An unknown username and a failed hash comparison produce the same generic
// error so the response leaks nothing about which check failed.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Phone == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: phone and password required", apperrors.ErrValidation)
	}

	cred, err := u.credRepo.GetCredentialByUsername(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	if cred == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	// The profile lookup is best-effort; a store failure falls back to a
	// minimal profile built from the credential record alone.
	resolved := u.resolveProfile(ctx, cred, req.Phone)

	token, _, err := jwtpkg.GenerateToken(resolved.ID, resolved.Phone, resolved.Role, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	if err := u.profileRepo.TouchLastLogIn(ctx, req.Phone); err != nil {
		logger.Warn("Failed to stamp last login", logger.String("phone", req.Phone), logger.Err(err))
	}

	return &models.AuthResponse{
		Profile: resolved,
		Token:   token,
	}, nil
}

// resolveProfile merges the credential record with the profile document.
// The credential store's role takes priority when the two disagree.
func (u *AuthUC) resolveProfile(ctx context.Context, cred *models.Credential, phone string) *models.Profile {
	profile, err := u.profileRepo.GetProfileByPhone(ctx, phone)
	if err != nil {
		logger.Warn("Profile lookup failed during login", logger.String("phone", phone), logger.Err(err))
		profile = nil
	}

	if profile == nil {
		role := cred.Role
		if role == "" {
			role = defaultRole
		}
		return &models.Profile{
			ID:       "",
			Username: cred.Username,
			Email:    "",
			Phone:    phone,
			Role:     role,
		}
	}

	resolved := profile.ToProfile()
	if cred.Role != "" {
		resolved.Role = cred.Role
	}
	if resolved.Role == "" {
		resolved.Role = defaultRole
	}
	return resolved
}
