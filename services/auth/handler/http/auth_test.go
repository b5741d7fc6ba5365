package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/auth"
	"github.com/kormo-app/kormo/services/auth/mocks"
)

func performRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(authUC)

	authUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{
			Profile: &models.Profile{Username: "rahim", Phone: "01712345678", Role: "customer"},
			Token:   "jwt-token",
		}, nil)

	rec := performRequest(t, h.Register, `{"username":"rahim","password":"secret123","email":"rahim@example.com","phone":"01712345678"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt-token")
}

func TestRegisterHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "conflict",
			err:         fmt.Errorf("%w: user already exists", apperrors.ErrConflict),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User already exists",
		},
		{
			name:        "validation",
			err:         fmt.Errorf("%w: invalid Bangladesh phone number", apperrors.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid Bangladesh phone number",
		},
		{
			name:        "partial failure",
			err:         fmt.Errorf("%w: registered in auth but failed to save profile", apperrors.ErrPartialFailure),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Registered in auth but failed to save profile",
		},
		{
			name:        "token failure",
			err:         fmt.Errorf("%w: signing key is empty", apperrors.ErrConfiguration),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error while creating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authUC := mocks.NewMockAuthUC(ctrl)
			authUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := performRequest(t, NewAuthHandler(authUC).Register,
				`{"username":"rahim","password":"secret123","email":"rahim@example.com","phone":"01712345678"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authUC := mocks.NewMockAuthUC(ctrl)
	authUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	rec := performRequest(t, NewAuthHandler(authUC).Login, `{"phone":"01712345678","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestSendOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authUC := mocks.NewMockAuthUC(ctrl)
	authUC.EXPECT().SendOTP(gomock.Any(), "01712345678").Return(nil)

	rec := performRequest(t, NewAuthHandler(authUC).SendOTP, `{"phone":"01712345678"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OTP sent successfully via SMS")
}

func TestSendOTPHandler_DeliveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authUC := mocks.NewMockAuthUC(ctrl)
	authUC.EXPECT().
		SendOTP(gomock.Any(), "01712345678").
		Return(fmt.Errorf("%w: twilio down", apperrors.ErrDelivery))

	rec := performRequest(t, NewAuthHandler(authUC).SendOTP, `{"phone":"01712345678"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to send OTP via SMS")
}

func TestVerifyOTPHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "no code on record", err: auth.ErrOTPNotFound, wantStatus: http.StatusNotFound, wantMessage: "OTP not found"},
		{name: "no matching profile", err: auth.ErrUserNotFound, wantStatus: http.StatusNotFound, wantMessage: "User not found"},
		{name: "expired", err: fmt.Errorf("%w: OTP expired", apperrors.ErrExpired), wantStatus: http.StatusBadRequest, wantMessage: "OTP expired"},
		{name: "mismatch", err: fmt.Errorf("%w: invalid OTP", apperrors.ErrCodeMismatch), wantStatus: http.StatusBadRequest, wantMessage: "Invalid OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authUC := mocks.NewMockAuthUC(ctrl)
			authUC.EXPECT().VerifyOTP(gomock.Any(), "01712345678", "123456").Return(nil, tt.err)

			rec := performRequest(t, NewAuthHandler(authUC).VerifyOTP, `{"phone":"01712345678","otp":"123456"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

func TestVerifyOTPHandler_NeverEchoesCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authUC := mocks.NewMockAuthUC(ctrl)
	authUC.EXPECT().
		VerifyOTP(gomock.Any(), "01712345678", "123456").
		Return(&models.AuthResponse{
			Profile: &models.Profile{Phone: "01712345678", Role: "customer"},
			Token:   "jwt-token",
		}, nil)

	rec := performRequest(t, NewAuthHandler(authUC).VerifyOTP, `{"phone":"01712345678","otp":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt-token")
}
