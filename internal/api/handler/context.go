package handler

import (
	"github.com/labstack/echo/v4"
)

// hasPermission reports whether key is present in the token's permission
// set injected by the Auth middleware. Route-level gating belongs to the
// RBAC middleware; handlers use this only for field-level decisions such as
// hiding internal notes.
func hasPermission(c echo.Context, key string) bool {
	permissions, _ := c.Get("permissions").([]string)
	for _, p := range permissions {
		if p == key {
			return true
		}
	}
	return false
}
