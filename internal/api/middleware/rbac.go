package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/companycatalog/catalog-api/internal/api/metrics"
)

// RBAC enforces a per-route role allow-list against the role claim injected
// by Auth. An empty allow-list admits any authenticated role.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				metrics.DenialsTotal.WithLabelValues("no_claims").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[role]; !ok {
					metrics.DenialsTotal.WithLabelValues("role_denied").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
			}
			return next(c)
		}
	}
}
