package gormdb

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// PermissionCatalog reads the seeded permission catalog.
type PermissionCatalog struct {
	db *gorm.DB
}

func NewPermissionCatalog(db *gorm.DB) *PermissionCatalog {
	return &PermissionCatalog{db: db}
}

func (c *PermissionCatalog) List(ctx context.Context) ([]domain.Permission, error) {
	var perms []domain.Permission
	err := c.db.WithContext(ctx).Order("id").Find(&perms).Error
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return perms, nil
}

// FindByKeys resolves keys to catalog entries, preserving the input order.
// Any key missing from the catalog fails the whole lookup.
func (c *PermissionCatalog) FindByKeys(ctx context.Context, keys []string) ([]domain.Permission, error) {
	if len(keys) == 0 {
		return []domain.Permission{}, nil
	}

	var found []domain.Permission
	err := c.db.WithContext(ctx).Where("key IN ?", keys).Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("find permissions: %w", err)
	}

	byKey := make(map[string]domain.Permission, len(found))
	for _, p := range found {
		byKey[p.Key] = p
	}

	perms := make([]domain.Permission, 0, len(keys))
	var missing []string
	for _, k := range keys {
		p, ok := byKey[k]
		if !ok {
			missing = append(missing, k)
			continue
		}
		perms = append(perms, p)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPermission, strings.Join(missing, ", "))
	}
	return perms, nil
}
