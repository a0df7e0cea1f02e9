package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequirePermission gates a route on permission keys from the token claims.
// The caller passes when it holds at least one of the listed keys.
func RequirePermission(keys ...string) echo.MiddlewareFunc {
	required := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		required[k] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, _ := c.Get("permissions").([]string)
			for _, p := range granted {
				if _, ok := required[p]; ok {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden"})
		}
	}
}
