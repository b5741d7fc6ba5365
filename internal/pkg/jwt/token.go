// Package jwt issues and validates the signed session assertions used by
// both authentication flows.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/models"
)

// GenerateToken signs a session token over the subject id, phone and role.
// The signing secret must be configured; an empty secret aborts issuance
// rather than signing with a default key.
func GenerateToken(subjectID, phone, role string, cfg models.JWTConfig) (string, int64, error) {
	if cfg.Secret == "" {
		return "", 0, fmt.Errorf("%w: missing JWT secret", apperrors.ErrConfiguration)
	}

	if role == "" {
		role = "customer"
	}

	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"id":    subjectID,
		"phone": phone,
		"role":  role,
		"exp":   expiresAt,
		"iss":   cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", apperrors.ErrTokenIssuance, err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns its claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}
