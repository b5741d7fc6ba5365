package usecase

import (
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/auth"
)

// AuthUC coordinates the credential store, profile store, SMS gateway and
// token issuer behind the authentication endpoints.
type AuthUC struct {
	credRepo    auth.CredentialRepo
	profileRepo auth.ProfileRepo
	smsGW       auth.SMSGW
	cfg         *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	credRepo auth.CredentialRepo,
	profileRepo auth.ProfileRepo,
	smsGW auth.SMSGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		credRepo:    credRepo,
		profileRepo: profileRepo,
		smsGW:       smsGW,
		cfg:         cfg,
	}
}

const defaultRole = "customer"
