package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// RoleRepository persists roles and their permission associations.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Order("name").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("name = ?", name).
		First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find role %s: %w", name, err)
	}
	return &role, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return fmt.Errorf("create role %s: %w", role.Name, err)
	}
	return nil
}

// UpdateDetails writes only label, description and status. Select guards the
// name and timestamps from accidental overwrites.
func (r *RoleRepository) UpdateDetails(ctx context.Context, role *domain.Role) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Role{}).
		Where("id = ?", role.ID).
		Select("label", "description", "status").
		Updates(map[string]any{
			"label":       role.Label,
			"description": role.Description,
			"status":      role.Status,
		}).Error
	if err != nil {
		return fmt.Errorf("update role %s: %w", role.Name, err)
	}
	return nil
}

// ReplacePermissions swaps the role's association set in one statement.
// GORM's Replace deletes the old join rows and inserts the new ones.
func (r *RoleRepository) ReplacePermissions(ctx context.Context, role *domain.Role, perms []domain.Permission) error {
	err := r.db.WithContext(ctx).
		Model(role).
		Association("Permissions").
		Replace(perms)
	if err != nil {
		return fmt.Errorf("replace permissions for %s: %w", role.Name, err)
	}
	return nil
}

// Delete removes the role and clears its join rows in one transaction.
func (r *RoleRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var role domain.Role
		err := tx.Where("name = ?", name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoleNotFound
		}
		if err != nil {
			return fmt.Errorf("find role %s: %w", name, err)
		}
		if err := tx.Model(&role).Association("Permissions").Clear(); err != nil {
			return fmt.Errorf("clear permissions for %s: %w", name, err)
		}
		if err := tx.Delete(&role).Error; err != nil {
			return fmt.Errorf("delete role %s: %w", name, err)
		}
		return nil
	})
}
