package handler

import (
	"time"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// --- Request / Response types ---

type createRoleRequest struct {
	Label       string   `json:"label"       validate:"required,min=2,max=150"`
	Description string   `json:"description" validate:"max=500"`
	Status      string   `json:"status"      validate:"omitempty,oneof=active inactive"`
	Permissions []string `json:"permissions"`
}

type updateRoleRequest struct {
	Label       *string `json:"label"       validate:"omitempty,min=2,max=150"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      *string `json:"status"      validate:"omitempty,oneof=active inactive"`
}

type replacePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required"`
}

// roleResponse is the transport view of a role. Permissions are flattened to
// their keys; display metadata is served by the permission catalog endpoint.
type roleResponse struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

type listRolesResponse struct {
	Data       []roleResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type permissionResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func toRoleResponse(r *domain.Role) roleResponse {
	return roleResponse{
		Name:        r.Name,
		Label:       r.Label,
		Description: r.Description,
		Status:      string(r.Status),
		Permissions: r.PermissionKeys(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
