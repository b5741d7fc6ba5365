package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/kormo-app/kormo/internal/pkg/jwt"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/internal/utils"
)

// Context keys populated by the authorization gate
const (
	ContextUserID = "user_id"
	ContextPhone  = "user_phone"
	ContextRole   = "user_role"
)

// JWTAuthMiddleware verifies the inbound session token and attaches the
// decoded claims to the request context. Failures short-circuit with 401
// without invoking the downstream handler.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			id, ok := claims["id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing id claim")
			}
			role, ok := claims["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set(ContextUserID, fmt.Sprintf("%v", id))
			c.Set(ContextPhone, fmt.Sprintf("%v", claims["phone"]))
			c.Set(ContextRole, fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireRole restricts a route to callers whose token carries the given
// role. It must run after JWTAuthMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get(ContextRole).(string)
			if current != role {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
