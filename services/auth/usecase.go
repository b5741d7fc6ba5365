package auth

import (
	"context"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kormo-app/kormo/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// Password credentials
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// One-time passcodes
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)
}
