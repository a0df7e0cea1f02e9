package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/printops/backoffice-system/internal/api/metrics"
	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
	"github.com/printops/backoffice-system/internal/core/view"
)

const (
	defaultOrderLimit = 10
	maxOrderLimit     = 100
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// List returns one page of orders matching the filter. Filtering and
// pagination run in memory over the full set, matching the listing view's
// behaviour: the page is re-clamped whenever the filtered total shrinks.
func (s *OrderService) List(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := view.FilterOrders(orders, view.OrderFilter{
		Status:     domain.OrderStatus(input.Status),
		Priority:   domain.OrderPriority(input.Priority),
		Channel:    domain.OrderChannel(input.Channel),
		Unassigned: input.Unassigned,
	})

	limit := input.Limit
	if limit <= 0 {
		limit = defaultOrderLimit
	}
	if limit > maxOrderLimit {
		limit = maxOrderLimit
	}
	page := view.ClampPage(input.Page, len(matched), limit)
	lo, hi := view.PageBounds(len(matched), page, limit)

	return &ports.ListOrdersResult{
		Items:      matched[lo:hi],
		Total:      len(matched),
		Page:       page,
		Limit:      limit,
		TotalPages: view.TotalPages(len(matched), limit),
	}, nil
}

// Create normalises the payload and persists a new order with pipeline
// defaults: Pending status, Medium priority, Backoffice channel, quantity 1.
func (s *OrderService) Create(ctx context.Context, input ports.OrderInput) (*domain.Order, error) {
	order, verr := normalizeOrderInput(input)
	if verr != nil {
		return nil, verr
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("project", order.ProjectName).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersMutatedTotal.WithLabelValues("create").Inc()
	s.logger.Info().Uint("order_id", order.ID).Str("project", order.ProjectName).Str("client", order.ClientName).Msg("order created")
	return order, nil
}

// Update replaces the full record, applying the same normalisation as
// Create. The stored status is kept unless the payload names a new one;
// status-only changes should use UpdateStatus instead.
func (s *OrderService) Update(ctx context.Context, id uint, input ports.OrderInput) (*domain.Order, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = string(existing.Status)
	}
	order, verr := normalizeOrderInput(input)
	if verr != nil {
		return nil, verr
	}
	order.ID = existing.ID
	order.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, order); err != nil {
		s.logger.Error().Err(err).Uint("order_id", id).Msg("failed to update order")
		return nil, err
	}

	metrics.OrdersMutatedTotal.WithLabelValues("update").Inc()
	s.logger.Info().Uint("order_id", id).Msg("order updated")
	return order, nil
}

// UpdateStatus is the fast path behind single-click status changes: it
// writes only the status column. Any pipeline member is reachable from any
// other.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !domain.ValidOrderStatus(next) {
		return nil, domain.NewValidationError("status", "status must be one of the pipeline stages")
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.OrdersMutatedTotal.WithLabelValues("update_status").Inc()
	metrics.StatusFastPathTotal.WithLabelValues(status).Inc()
	s.logger.Info().Uint("order_id", id).Str("status", status).Msg("order status updated")
	return order, nil
}

// Delete removes the order permanently.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Uint("order_id", id).Msg("failed to delete order")
		return err
	}

	metrics.OrdersMutatedTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Uint("order_id", id).Msg("order deleted")
	return nil
}

// normalizeOrderInput validates and coerces a raw form payload into a
// domain order. All form normalisation happens here, in one place:
// budget ""→nil, quantity ""→1, tags comma-split with empties dropped,
// assigned_to trimmed with empty→nil, enum defaults filled in.
func normalizeOrderInput(in ports.OrderInput) (*domain.Order, *domain.ValidationError) {
	verr := &domain.ValidationError{}

	projectName := strings.TrimSpace(in.ProjectName)
	if projectName == "" {
		verr.Add("project_name", "project name is required")
	}
	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		verr.Add("client_name", "client name is required")
	}

	channel := domain.OrderChannel(in.Channel)
	if channel == "" {
		channel = domain.ChannelBackoffice
	} else if !domain.ValidChannel(channel) {
		verr.Add("channel", "unknown channel")
	}

	status := domain.OrderStatus(in.Status)
	if status == "" {
		status = domain.OrderStatusPending
	} else if !domain.ValidOrderStatus(status) {
		verr.Add("status", "status must be one of the pipeline stages")
	}

	priority := domain.OrderPriority(in.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	} else if !domain.ValidPriority(priority) {
		verr.Add("priority", "unknown priority")
	}

	budget, budgetErr := parseBudget(in.Budget)
	if budgetErr != "" {
		verr.Add("budget", budgetErr)
	}

	quantity, quantityErr := parseQuantity(in.Quantity)
	if quantityErr != "" {
		verr.Add("quantity", quantityErr)
	}

	dueDate := strings.TrimSpace(in.DueDate)
	if dueDate != "" {
		if _, err := time.Parse("2006-01-02", dueDate); err != nil {
			verr.Add("due_date", "due date must be YYYY-MM-DD")
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	return &domain.Order{
		ProjectName:   projectName,
		ClientName:    clientName,
		ClientEmail:   strings.TrimSpace(in.ClientEmail),
		ClientPhone:   strings.TrimSpace(in.ClientPhone),
		Company:       strings.TrimSpace(in.Company),
		ServiceLine:   strings.TrimSpace(in.ServiceLine),
		Channel:       channel,
		Status:        status,
		Priority:      priority,
		DueDate:       dueDate,
		Budget:        budget,
		Quantity:      quantity,
		Description:   in.Description,
		InternalNotes: in.InternalNotes,
		AssignedTo:    normalizeAssignee(in.AssignedTo),
		Tags:          splitTags(in.Tags),
	}, nil
}

// parseBudget coerces the raw budget string: empty means no budget (nil).
func parseBudget(raw string) (*float64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ""
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, "budget must be a non-negative number"
	}
	return &v, ""
}

// parseQuantity coerces the raw quantity string: empty defaults to 1.
func parseQuantity(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, ""
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, "quantity must be a positive integer"
	}
	return v, ""
}

// splitTags turns a comma-separated string into trimmed tags, dropping
// empty entries. Always returns a non-nil slice so the JSON view renders
// [] rather than null.
func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// normalizeAssignee trims the owner identifier; blank means unassigned.
func normalizeAssignee(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
