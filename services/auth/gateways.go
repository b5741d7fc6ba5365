package auth

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kormo-app/kormo/services/auth SMSGW

// SMSGW defines the external SMS dispatch gateway
type SMSGW interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}
