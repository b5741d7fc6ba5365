package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/auth/mocks"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "kormo"
	return cfg
}

func brokenTokenConfig() *models.Config {
	cfg := testConfig()
	cfg.JWT.Secret = ""
	return cfg
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	profileRepo := mocks.NewMockProfileRepo(ctrl)
	uc := NewAuthUC(credRepo, profileRepo, mocks.NewMockSMSGW(ctrl), testConfig())

	req := &models.RegisterRequest{
		Username: "rahim",
		Password: "secret123",
		Email:    "rahim@example.com",
		Phone:    "01712345678",
	}

	credRepo.EXPECT().GetCredentialByUsername(gomock.Any(), "01712345678").Return(nil, nil)
	credRepo.EXPECT().
		CreateCredential(gomock.Any(), "01712345678", gomock.Any(), "customer").
		DoAndReturn(func(_ context.Context, _ string, hash, _ string) (int64, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
			return int64(7), nil
		})
	profileRepo.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.UserProfile) error {
			assert.Equal(t, "rahim", p.Username)
			assert.Equal(t, "customer", p.Role)
			p.ID = primitive.NewObjectID()
			return nil
		})

	resp, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "rahim", resp.Profile.Username)
	assert.Equal(t, "customer", resp.Profile.Role)
	assert.NotEmpty(t, resp.Profile.ID)
}

func TestRegister_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAuthUC(mocks.NewMockCredentialRepo(ctrl), mocks.NewMockProfileRepo(ctrl), mocks.NewMockSMSGW(ctrl), testConfig())

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "rahim",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegister_InvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAuthUC(mocks.NewMockCredentialRepo(ctrl), mocks.NewMockProfileRepo(ctrl), mocks.NewMockSMSGW(ctrl), testConfig())

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "rahim",
		Password: "secret123",
		Email:    "rahim@example.com",
		Phone:    "555123",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	uc := NewAuthUC(credRepo, mocks.NewMockProfileRepo(ctrl), mocks.NewMockSMSGW(ctrl), testConfig())

	credRepo.EXPECT().
		GetCredentialByUsername(gomock.Any(), "01712345678").
		Return(&models.Credential{ID: 1, Username: "01712345678"}, nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "rahim",
		Password: "secret123",
		Email:    "rahim@example.com",
		Phone:    "01712345678",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegister_ProfileFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	profileRepo := mocks.NewMockProfileRepo(ctrl)
	uc := NewAuthUC(credRepo, profileRepo, mocks.NewMockSMSGW(ctrl), testConfig())

	credRepo.EXPECT().GetCredentialByUsername(gomock.Any(), "01712345678").Return(nil, nil)
	credRepo.EXPECT().CreateCredential(gomock.Any(), "01712345678", gomock.Any(), "customer").Return(int64(9), nil)
	profileRepo.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
	// The credential insert succeeded, so it must be rolled back.
	credRepo.EXPECT().DeleteCredential(gomock.Any(), int64(9)).Return(nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "rahim",
		Password: "secret123",
		Email:    "rahim@example.com",
		Phone:    "01712345678",
	})
	assert.ErrorIs(t, err, apperrors.ErrPartialFailure)
}

func TestRegister_TokenFailureRollsBackBothStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	profileRepo := mocks.NewMockProfileRepo(ctrl)
	uc := NewAuthUC(credRepo, profileRepo, mocks.NewMockSMSGW(ctrl), brokenTokenConfig())

	oid := primitive.NewObjectID()
	credRepo.EXPECT().GetCredentialByUsername(gomock.Any(), "01712345678").Return(nil, nil)
	credRepo.EXPECT().CreateCredential(gomock.Any(), "01712345678", gomock.Any(), "customer").Return(int64(4), nil)
	profileRepo.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.UserProfile) error {
			p.ID = oid
			return nil
		})
	credRepo.EXPECT().DeleteCredential(gomock.Any(), int64(4)).Return(nil)
	profileRepo.EXPECT().DeleteProfileByID(gomock.Any(), oid).Return(nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "rahim",
		Password: "secret123",
		Email:    "rahim@example.com",
		Phone:    "01712345678",
	})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	profileRepo := mocks.NewMockProfileRepo(ctrl)
	uc := NewAuthUC(credRepo, profileRepo, mocks.NewMockSMSGW(ctrl), testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	oid := primitive.NewObjectID()
	credRepo.EXPECT().
		GetCredentialByUsername(gomock.Any(), "01712345678").
		Return(&models.Credential{ID: 1, Username: "01712345678", PasswordHash: string(hash), Role: "admin"}, nil)
	profileRepo.EXPECT().
		GetProfileByPhone(gomock.Any(), "01712345678").
		Return(&models.UserProfile{ID: oid, Username: "rahim", Email: "rahim@example.com", Phone: "01712345678", Role: "customer"}, nil)
	profileRepo.EXPECT().TouchLastLogIn(gomock.Any(), "01712345678").Return(nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{Phone: "01712345678", Password: "secret123"})
	require.NoError(t, err)
	// The credential store's role wins over the profile document's.
	assert.Equal(t, "admin", resp.Profile.Role)
	assert.Equal(t, oid.Hex(), resp.Profile.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_UnknownUserAndBadPasswordLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	uc := NewAuthUC(credRepo, mocks.NewMockProfileRepo(ctrl), mocks.NewMockSMSGW(ctrl), testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	credRepo.EXPECT().GetCredentialByUsername(gomock.Any(), "01712345678").Return(nil, nil)
	_, unknownErr := uc.Login(context.Background(), &models.LoginRequest{Phone: "01712345678", Password: "whatever"})

	credRepo.EXPECT().
		GetCredentialByUsername(gomock.Any(), "01712345678").
		Return(&models.Credential{ID: 1, Username: "01712345678", PasswordHash: string(hash)}, nil)
	_, badPassErr := uc.Login(context.Background(), &models.LoginRequest{Phone: "01712345678", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, badPassErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), badPassErr.Error())
}

func TestLogin_MissingProfileFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	profileRepo := mocks.NewMockProfileRepo(ctrl)
	uc := NewAuthUC(credRepo, profileRepo, mocks.NewMockSMSGW(ctrl), testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	credRepo.EXPECT().
		GetCredentialByUsername(gomock.Any(), "01712345678").
		Return(&models.Credential{ID: 1, Username: "01712345678", PasswordHash: string(hash), Role: ""}, nil)
	profileRepo.EXPECT().GetProfileByPhone(gomock.Any(), "01712345678").Return(nil, nil)
	profileRepo.EXPECT().TouchLastLogIn(gomock.Any(), "01712345678").Return(errors.New("mongo down"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{Phone: "01712345678", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "", resp.Profile.ID)
	assert.Equal(t, "", resp.Profile.Email)
	assert.Equal(t, "01712345678", resp.Profile.Phone)
	assert.Equal(t, "customer", resp.Profile.Role)
}

func TestLogin_TokenFailureIsNotACredentialError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepo(ctrl)
	profileRepo := mocks.NewMockProfileRepo(ctrl)
	uc := NewAuthUC(credRepo, profileRepo, mocks.NewMockSMSGW(ctrl), brokenTokenConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	credRepo.EXPECT().
		GetCredentialByUsername(gomock.Any(), "01712345678").
		Return(&models.Credential{ID: 1, Username: "01712345678", PasswordHash: string(hash)}, nil)
	profileRepo.EXPECT().GetProfileByPhone(gomock.Any(), "01712345678").Return(nil, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{Phone: "01712345678", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
