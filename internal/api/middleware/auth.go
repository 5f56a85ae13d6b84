package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/companycatalog/catalog-api/internal/api/metrics"
	"github.com/companycatalog/catalog-api/internal/core/ports"
)

// Context keys for claims injected by Auth.
const (
	CtxID      = "id"
	CtxRole    = "role"
	CtxSubject = "subject"
)

// Auth extracts the bearer token, verifies it and injects the claims into
// the echo context. A missing token and an invalid or expired one both end
// the request with 401; only the message distinguishes them.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.DenialsTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.DenialsTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.DenialsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxID, claims.ID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxSubject, claims.NaturalKey)

			return next(c)
		}
	}
}
