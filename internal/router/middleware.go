package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"clearplot/internal/auth"
	"clearplot/internal/handler"
)

// OptionalAuth extracts a caller identity from a bearer token when one
// is present and verifiable. A missing, malformed or expired token is
// not an error: the request simply proceeds anonymously.
func OptionalAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				token := strings.TrimPrefix(header, "Bearer ")
				if claims, err := jwtService.ValidateToken(token); err == nil {
					c.Set(handler.ContextCallerID, claims.UserID)
				}
			}
			return next(c)
		}
	}
}
