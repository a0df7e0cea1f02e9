package ports

import (
	"context"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// OrderInput carries order fields as submitted by the admin forms. Numeric
// fields arrive as raw strings and are normalised by the service: empty
// budget becomes null, empty quantity becomes 1, tags are comma-split, and
// assigned_to is trimmed with empty collapsing to unassigned.
type OrderInput struct {
	ProjectName   string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	Company       string
	ServiceLine   string
	Channel       string
	Status        string
	Priority      string
	DueDate       string
	Budget        string
	Quantity      string
	Description   string
	InternalNotes string
	AssignedTo    string
	Tags          string
}

// ListOrdersInput carries the filter and pagination parameters for the
// order listing. Empty filter fields match all.
type ListOrdersInput struct {
	Status     string
	Priority   string
	Channel    string
	Unassigned bool
	Page       int
	Limit      int
}

// ListOrdersResult is one page of the filtered order list.
type ListOrdersResult struct {
	Items      []domain.Order
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines the order administration use-cases. UpdateStatus is
// the fast path used by single-click status changes in the listing view and
// touches only the status field.
type OrderService interface {
	List(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
	Create(ctx context.Context, input OrderInput) (*domain.Order, error)
	Update(ctx context.Context, id uint, input OrderInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*domain.Order, error)
	Delete(ctx context.Context, id uint) error
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// List returns all orders, newest first.
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	// UpdateStatus writes only the status column.
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error
	Delete(ctx context.Context, id uint) error
}
