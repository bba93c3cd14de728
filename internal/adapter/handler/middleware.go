package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stayflowhq/stayflow/errors"
	"github.com/stayflowhq/stayflow/pkg/jwt"
)

const claimsContextKey = "auth_claims"

// JWTAuth validates the bearer token and stores the claims on the echo
// context for downstream handlers
func JWTAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearer(c)
			if token == "" {
				return HandleError(nil, c, errors.ErrUnauthenticated())
			}

			claims, err := manager.ValidateAccessToken(token)
			if err != nil {
				return HandleError(nil, c, errors.ErrUnauthenticated())
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// accountIDFromContext returns the authenticated account, set by JWTAuth
func accountIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(claimsContextKey).(*jwt.Claims)
	if !ok || claims == nil {
		return uuid.Nil, false
	}
	return claims.AccountID, true
}

// extractBearer reads the token from the Authorization header, falling back
// to the access_token cookie
func extractBearer(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}
	return ""
}
