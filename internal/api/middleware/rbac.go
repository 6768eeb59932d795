package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// RBAC enforces role-based access control: the request's role claims must
// intersect the allowed set or the request is rejected before the handler.
// The rejection surfaces as domain.ErrForbidden for the central error
// handler to map.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get("roles").([]string)
			for _, r := range roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			return domain.ErrForbidden
		}
	}
}
