package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/printops/backoffice-system/internal/core/ports"
)

// PermissionHandler serves the read-only permission catalog the role editor
// renders its checkbox grid from.
type PermissionHandler struct {
	catalog ports.PermissionCatalog
}

func NewPermissionHandler(catalog ports.PermissionCatalog) *PermissionHandler {
	return &PermissionHandler{catalog: catalog}
}

// List handles GET /v1/permissions.
//
// @Summary      List the permission catalog
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   permissionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/permissions [get]
func (h *PermissionHandler) List(c echo.Context) error {
	perms, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]permissionResponse, len(perms))
	for i, p := range perms {
		resp[i] = permissionResponse{Key: p.Key, Label: p.Label, Description: p.Description}
	}
	return c.JSON(http.StatusOK, resp)
}
