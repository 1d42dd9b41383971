package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simbirgo/rental-api/internal/api/metrics"
)

// RBAC enforces role-based access control on top of Auth. The role claim
// must match one of allowedRoles exactly (case-sensitive). A valid token
// with the wrong role gets 403, distinguishable from Auth's 401.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden_role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
