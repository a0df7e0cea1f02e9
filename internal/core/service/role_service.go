package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/printops/backoffice-system/internal/api/metrics"
	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
	"github.com/printops/backoffice-system/internal/core/view"
)

const (
	cacheKeyRoles       = "view:roles"
	defaultRolePageSize = 10
)

// rolePageSizes are the page-size options the role listing offers.
var rolePageSizes = map[int]bool{5: true, 10: true, 20: true}

// ViewCache abstracts the transient listing cache (Redis). A nil cache is
// valid and means every read goes to the repository.
type ViewCache interface {
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type RoleService struct {
	repo    ports.RoleRepository
	catalog ports.PermissionCatalog
	cache   ViewCache
	logger  zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, catalog ports.PermissionCatalog, cache ViewCache, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, catalog: catalog, cache: cache, logger: logger}
}

// List returns one page of roles matching the search query. The full role
// list is the cached unit; search and pagination run in memory so a page or
// query change never refetches.
func (s *RoleService) List(ctx context.Context, input ports.ListRolesInput) (*ports.ListRolesResult, error) {
	roles, err := s.loadRoles(ctx)
	if err != nil {
		return nil, err
	}

	matched := view.SearchRoles(roles, input.Query)

	pageSize := input.PageSize
	if !rolePageSizes[pageSize] {
		pageSize = defaultRolePageSize
	}
	page := view.ClampPage(input.Page, len(matched), pageSize)
	lo, hi := view.PageBounds(len(matched), page, pageSize)

	return &ports.ListRolesResult{
		Items:      matched[lo:hi],
		Total:      len(matched),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: view.TotalPages(len(matched), pageSize),
	}, nil
}

// Create derives the system name from the label and persists a new role.
// A label whose derived name collides with an existing role is rejected.
func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	if input.Label == "" {
		return nil, domain.NewValidationError("label", "label is required")
	}

	status := input.Status
	if status == "" {
		status = domain.RoleStatusActive
	}
	if !domain.ValidRoleStatus(status) {
		return nil, domain.NewValidationError("status", "status must be active or inactive")
	}

	name := domain.DeriveSystemName(input.Label)
	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrDuplicateRole
	} else if err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, err
	}

	perms, err := s.catalog.FindByKeys(ctx, input.PermissionKeys)
	if err != nil {
		return nil, err
	}

	role := &domain.Role{
		Name:        name,
		Label:       input.Label,
		Description: input.Description,
		Status:      status,
		Permissions: perms,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		s.logger.Error().Err(err).Str("role", name).Msg("failed to create role")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.RolesMutatedTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("role", name).Int("permissions", len(perms)).Msg("role created")
	return role, nil
}

// UpdateDetails applies a partial update to label, description, and status.
// The system name and the permission set are never touched here.
func (s *RoleService) UpdateDetails(ctx context.Context, name string, patch ports.RoleDetailsPatch) (*domain.Role, error) {
	role, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if patch.Label != nil {
		if *patch.Label == "" {
			return nil, domain.NewValidationError("label", "label must not be empty")
		}
		role.Label = *patch.Label
	}
	if patch.Description != nil {
		role.Description = *patch.Description
	}
	if patch.Status != nil {
		if !domain.ValidRoleStatus(*patch.Status) {
			return nil, domain.NewValidationError("status", "status must be active or inactive")
		}
		role.Status = *patch.Status
	}

	if err := s.repo.UpdateDetails(ctx, role); err != nil {
		s.logger.Error().Err(err).Str("role", name).Msg("failed to update role details")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.RolesMutatedTotal.WithLabelValues("update_details").Inc()
	s.logger.Info().Str("role", name).Msg("role details updated")
	return role, nil
}

// ReplacePermissions overwrites the role's permission set with keys. When
// the candidate set is membership-equal to the current one the request is a
// no-op and no write is issued. An explicit empty slice clears everything.
func (s *RoleService) ReplacePermissions(ctx context.Context, name string, keys []string) (*domain.Role, error) {
	role, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if !view.DiffPermissionSets(role.PermissionKeys(), keys) {
		metrics.PermissionReplaceNoopsTotal.Inc()
		s.logger.Debug().Str("role", name).Msg("permission set unchanged, skipping write")
		return role, nil
	}

	perms, err := s.catalog.FindByKeys(ctx, keys)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplacePermissions(ctx, role, perms); err != nil {
		s.logger.Error().Err(err).Str("role", name).Msg("failed to replace permissions")
		return nil, err
	}
	role.Permissions = perms

	s.invalidate(ctx)
	metrics.RolesMutatedTotal.WithLabelValues("replace_permissions").Inc()
	s.logger.Info().Str("role", name).Int("permissions", len(perms)).Msg("permission set replaced")
	return role, nil
}

// Delete removes the role and its permission associations. Terminal: there
// is no soft delete.
func (s *RoleService) Delete(ctx context.Context, name string) error {
	if _, err := s.repo.FindByName(ctx, name); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		s.logger.Error().Err(err).Str("role", name).Msg("failed to delete role")
		return err
	}

	s.invalidate(ctx)
	metrics.RolesMutatedTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("role", name).Msg("role deleted")
	return nil
}

// loadRoles reads the full role list through the cache.
func (s *RoleService) loadRoles(ctx context.Context) ([]domain.Role, error) {
	if s.cache != nil {
		var cached []domain.Role
		hit, err := s.cache.GetJSON(ctx, cacheKeyRoles, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("role cache read failed, falling back to repository")
		} else if hit {
			metrics.CacheLookupsTotal.WithLabelValues("roles", "hit").Inc()
			return cached, nil
		} else {
			metrics.CacheLookupsTotal.WithLabelValues("roles", "miss").Inc()
		}
	}

	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKeyRoles, roles); err != nil {
			s.logger.Warn().Err(err).Msg("role cache write failed")
		}
	}
	return roles, nil
}

// invalidate discards the cached role view after a mutation. The next read
// refetches from the repository, mirroring the admin UI's refetch-on-mutate
// cycle.
func (s *RoleService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyRoles); err != nil {
		s.logger.Warn().Err(err).Msg("role cache invalidation failed")
	}
}
