package ports

import (
	"context"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// CreateRoleInput carries all data needed to create a new role. The system
// name is derived from Label by the service; it is not accepted as input.
type CreateRoleInput struct {
	Label          string
	Description    string
	Status         domain.RoleStatus
	PermissionKeys []string
}

// RoleDetailsPatch is a partial update of the role's detail fields. Nil
// means "leave unchanged". The permission set has its own operation.
type RoleDetailsPatch struct {
	Label       *string
	Description *string
	Status      *domain.RoleStatus
}

// ListRolesInput carries the search and pagination parameters for the role
// listing. PageSize falls back to the default (10) when out of range.
type ListRolesInput struct {
	Query    string
	Page     int
	PageSize int
}

// ListRolesResult is one page of the (possibly searched) role list.
type ListRolesResult struct {
	Items      []domain.Role
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// RoleService defines the role administration use-cases. Detail updates and
// permission replacement are deliberately separate operations so each keeps
// a single precondition/postcondition pair.
type RoleService interface {
	List(ctx context.Context, input ListRolesInput) (*ListRolesResult, error)
	Create(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
	UpdateDetails(ctx context.Context, name string, patch RoleDetailsPatch) (*domain.Role, error)
	// ReplacePermissions overwrites the role's permission set. An explicit
	// empty slice clears all permissions; a membership-equal set is a no-op
	// and issues no write.
	ReplacePermissions(ctx context.Context, name string, keys []string) (*domain.Role, error)
	Delete(ctx context.Context, name string) error
}

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	// List returns all roles ordered by name, permissions preloaded.
	List(ctx context.Context) ([]domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) error
	// UpdateDetails persists only the detail fields of role (label,
	// description, status), never the name or the permission set.
	UpdateDetails(ctx context.Context, role *domain.Role) error
	// ReplacePermissions overwrites the association in one transaction.
	ReplacePermissions(ctx context.Context, role *domain.Role, perms []domain.Permission) error
	// Delete removes the role and its permission associations.
	Delete(ctx context.Context, name string) error
}

// PermissionCatalog exposes the read-only permission catalog.
type PermissionCatalog interface {
	List(ctx context.Context) ([]domain.Permission, error)
	// FindByKeys resolves keys to catalog entries, preserving input order.
	// Unknown keys are reported via domain.ErrUnknownPermission.
	FindByKeys(ctx context.Context, keys []string) ([]domain.Permission, error)
}
