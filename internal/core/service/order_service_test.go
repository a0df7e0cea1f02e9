package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	byID       map[uint]*domain.Order
	nextID     uint
	statusOnly int // UpdateStatus calls, to prove the fast path is used
	createErr  error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[uint]*domain.Order), nextID: 1}
}

func (r *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	ids := make([]int, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, int(id))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.byID[uint(id)])
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uint) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	o.ID = r.nextID
	r.nextID++
	clone := *o
	r.byID[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *domain.Order) error {
	if _, ok := r.byID[o.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	clone := *o
	r.byID[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uint, status domain.OrderStatus) error {
	o, ok := r.byID[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	r.statusOnly++
	o.Status = status
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.byID, id)
	return nil
}

func minimalOrderInput() ports.OrderInput {
	return ports.OrderInput{ProjectName: "X", ClientName: "Y"}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestOrderService_Create_Defaults(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, discardLogger)

	order, err := svc.Create(context.Background(), minimalOrderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected status Pending, got %q", order.Status)
	}
	if order.Priority != domain.PriorityMedium {
		t.Errorf("expected priority Medium, got %q", order.Priority)
	}
	if order.Channel != domain.ChannelBackoffice {
		t.Errorf("expected channel Backoffice, got %q", order.Channel)
	}
	if order.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", order.Quantity)
	}
	if order.Budget != nil {
		t.Errorf("expected nil budget, got %v", *order.Budget)
	}
	if len(order.Tags) != 0 {
		t.Errorf("expected no tags, got %v", order.Tags)
	}
	if order.AssignedTo != nil {
		t.Errorf("expected unassigned, got %v", *order.AssignedTo)
	}
}

func TestOrderService_Create_MissingRequiredFields(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), discardLogger)

	_, err := svc.Create(context.Background(), ports.OrderInput{ProjectName: "  ", ClientName: ""})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected both missing fields reported, got %+v", verr.Fields)
	}
}

func TestOrderService_Create_Normalization(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, discardLogger)

	order, err := svc.Create(context.Background(), ports.OrderInput{
		ProjectName: "Catalogue",
		ClientName:  "Acme",
		Budget:      "15000",
		Quantity:    "3",
		Tags:        "rush, ncr, print",
		AssignedTo:  "  dana  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Budget == nil || *order.Budget != 15000 {
		t.Errorf("budget not coerced: %v", order.Budget)
	}
	if order.Quantity != 3 {
		t.Errorf("quantity not coerced: %d", order.Quantity)
	}
	want := []string{"rush", "ncr", "print"}
	if len(order.Tags) != 3 || order.Tags[0] != want[0] || order.Tags[1] != want[1] || order.Tags[2] != want[2] {
		t.Errorf("tags not normalised: %v", order.Tags)
	}
	if order.AssignedTo == nil || *order.AssignedTo != "dana" {
		t.Errorf("assigned_to not trimmed: %v", order.AssignedTo)
	}
}

func TestOrderService_Create_BlankAssigneeIsUnassigned(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), discardLogger)

	input := minimalOrderInput()
	input.AssignedTo = " "
	order, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.AssignedTo != nil {
		t.Fatalf("whitespace-only assignee must normalise to nil, got %q", *order.AssignedTo)
	}
}

func TestOrderService_Create_BadNumericInput(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), discardLogger)

	input := minimalOrderInput()
	input.Budget = "a lot"
	input.Quantity = "-2"
	_, err := svc.Create(context.Background(), input)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected budget and quantity errors, got %+v", verr.Fields)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestOrderService_Update_KeepsStatusWhenOmitted(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), minimalOrderInput())
	if _, err := svc.UpdateStatus(context.Background(), created.ID, string(domain.OrderStatusQA)); err != nil {
		t.Fatalf("status update: %v", err)
	}

	input := minimalOrderInput()
	input.ProjectName = "Renamed"
	updated, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ProjectName != "Renamed" {
		t.Errorf("project name not updated: %q", updated.ProjectName)
	}
	if updated.Status != domain.OrderStatusQA {
		t.Errorf("omitted status must keep stored value, got %q", updated.Status)
	}
}

func TestOrderService_Update_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), discardLogger)

	_, err := svc.Update(context.Background(), 404, minimalOrderInput())
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus tests
// ---------------------------------------------------------------------------

func TestOrderService_UpdateStatus_FastPath(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), minimalOrderInput())
	order, err := svc.UpdateStatus(context.Background(), created.ID, "Completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderStatusCompleted {
		t.Errorf("expected Completed, got %q", order.Status)
	}
	if repo.statusOnly != 1 {
		t.Errorf("expected the status-only repository path, got %d calls", repo.statusOnly)
	}
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, discardLogger)
	created, _ := svc.Create(context.Background(), minimalOrderInput())

	_, err := svc.UpdateStatus(context.Background(), created.ID, "Shipped")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.statusOnly != 0 {
		t.Error("invalid status must not reach the repository")
	}
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), discardLogger)

	_, err := svc.UpdateStatus(context.Background(), 404, "Pending")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestOrderService_Delete(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, discardLogger)
	created, _ := svc.Create(context.Background(), minimalOrderInput())

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestOrderService_List_FilterAndPaginate(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, discardLogger)

	for i := 0; i < 25; i++ {
		input := ports.OrderInput{
			ProjectName: fmt.Sprintf("Project %02d", i),
			ClientName:  "Acme",
		}
		if i%2 == 0 {
			input.Priority = string(domain.PriorityHigh)
		}
		if i%5 == 0 {
			input.AssignedTo = "dana"
		}
		if _, err := svc.Create(context.Background(), input); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	result, err := svc.List(context.Background(), ports.ListOrdersInput{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 25 || result.TotalPages != 3 || len(result.Items) != 10 {
		t.Fatalf("unexpected page: total=%d pages=%d items=%d", result.Total, result.TotalPages, len(result.Items))
	}

	result, _ = svc.List(context.Background(), ports.ListOrdersInput{Priority: string(domain.PriorityHigh), Limit: 100})
	if result.Total != 13 {
		t.Fatalf("priority filter: expected 13, got %d", result.Total)
	}

	result, _ = svc.List(context.Background(), ports.ListOrdersInput{Unassigned: true, Limit: 100})
	if result.Total != 20 {
		t.Fatalf("unassigned filter: expected 20, got %d", result.Total)
	}

	// Page past the end clamps back to the last page.
	result, _ = svc.List(context.Background(), ports.ListOrdersInput{Page: 99, Limit: 10})
	if result.Page != 3 || len(result.Items) != 5 {
		t.Fatalf("clamp failed: page=%d items=%d", result.Page, len(result.Items))
	}
}

func TestOrderService_List_EmptySet(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), discardLogger)

	result, err := svc.List(context.Background(), ports.ListOrdersInput{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 0 || result.TotalPages != 1 || result.Page != 1 {
		t.Fatalf("empty set: %+v", result)
	}
}
