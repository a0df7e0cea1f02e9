package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// AddressRepository persists customer addresses.
type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]domain.CustomerAddress, error) {
	var addresses []domain.CustomerAddress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("list addresses for %s: %w", userID, err)
	}
	return addresses, nil
}

// Create inserts the address; when it is flagged as default, any previous
// default for the same user is demoted in the same transaction.
func (r *AddressRepository) Create(ctx context.Context, address *domain.CustomerAddress) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			err := tx.Model(&domain.CustomerAddress{}).
				Where("user_id = ? AND is_default = ?", address.UserID, true).
				Update("is_default", false).Error
			if err != nil {
				return fmt.Errorf("demote default address: %w", err)
			}
		}
		if err := tx.Create(address).Error; err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		return nil
	})
}

func (r *AddressRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.CustomerAddress{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete address %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}
