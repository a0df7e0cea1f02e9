package ports

import (
	"context"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// AddressInput carries a new customer address.
type AddressInput struct {
	Label         string
	RecipientName string
	Phone         string
	Line1         string
	Line2         *string
	Landmark      *string
	City          string
	State         string
	Pincode       string
	Instructions  *string
	Type          string
	IsDefault     bool
}

// AddressService defines the address-book use-cases.
type AddressService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.CustomerAddress, error)
	Create(ctx context.Context, userID string, input AddressInput) (*domain.CustomerAddress, error)
	Delete(ctx context.Context, id string) error
}

// AddressRepository defines persistence operations for customer addresses.
type AddressRepository interface {
	// ListByUser returns the user's addresses, default first.
	ListByUser(ctx context.Context, userID string) ([]domain.CustomerAddress, error)
	Create(ctx context.Context, address *domain.CustomerAddress) error
	Delete(ctx context.Context, id string) error
}
