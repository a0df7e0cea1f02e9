package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

// RoleHandler handles HTTP requests for role administration.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /v1/roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        q          query     string  false  "Search over name, label and description"
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        page_size  query     int     false  "Page size (5, 10 or 20)"
// @Success      200        {object}  listRolesResponse
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Router       /v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.service.List(c.Request().Context(), ports.ListRolesInput{
		Query:    c.QueryParam("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	data := make([]roleResponse, len(result.Items))
	for i := range result.Items {
		data[i] = toRoleResponse(&result.Items[i])
	}

	return c.JSON(http.StatusOK, listRolesResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /v1/roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role details"
// @Success      201   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Create(c.Request().Context(), ports.CreateRoleInput{
		Label:          req.Label,
		Description:    req.Description,
		Status:         domain.RoleStatus(req.Status),
		PermissionKeys: req.Permissions,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRoleResponse(role))
}

// Update handles PATCH /v1/roles/:name. The system name is immutable; only
// label, description and status can change.
//
// @Summary      Update role details
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string             true  "Role system name"
// @Param        body  body      updateRoleRequest  true  "Fields to change"
// @Success      200   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/roles/{name} [patch]
func (h *RoleHandler) Update(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.RoleDetailsPatch{
		Label:       req.Label,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.RoleStatus(*req.Status)
		patch.Status = &status
	}

	role, err := h.service.UpdateDetails(c.Request().Context(), c.Param("name"), patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// ReplacePermissions handles PUT /v1/roles/:name/permissions. The submitted
// set overwrites the stored one; an explicit empty array clears everything.
//
// @Summary      Replace a role's permission set
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string                     true  "Role system name"
// @Param        body  body      replacePermissionsRequest  true  "Full permission key set"
// @Success      200   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/roles/{name}/permissions [put]
func (h *RoleHandler) ReplacePermissions(c echo.Context) error {
	var req replacePermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Permissions == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "permissions is required")
	}

	role, err := h.service.ReplacePermissions(c.Request().Context(), c.Param("name"), req.Permissions)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Delete handles DELETE /v1/roles/:name.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "Role system name"
// @Success      204   "No Content"
// @Failure      404   {object}  errorResponse
// @Router       /v1/roles/{name} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
