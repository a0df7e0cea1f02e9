package view

import (
	"reflect"
	"testing"

	"github.com/printops/backoffice-system/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, ProjectName: "Brand refresh", Status: domain.OrderStatusPending, Priority: domain.PriorityHigh, Channel: domain.ChannelBackoffice},
		{ID: 2, ProjectName: "Packaging run", Status: domain.OrderStatusQA, Priority: domain.PriorityMedium, Channel: domain.ChannelWebsite, AssignedTo: strPtr("dana")},
		{ID: 3, ProjectName: "Catalogue print", Status: domain.OrderStatusPending, Priority: domain.PriorityMedium, Channel: domain.ChannelBackoffice, AssignedTo: strPtr("lee")},
		{ID: 4, ProjectName: "Event signage", Status: domain.OrderStatusCompleted, Priority: domain.PriorityCritical, Channel: domain.ChannelPhone},
	}
}

func TestFilterOrders_EmptyFilterReturnsInputUnchanged(t *testing.T) {
	orders := sampleOrders()
	got := FilterOrders(orders, OrderFilter{})
	if !reflect.DeepEqual(got, orders) {
		t.Fatalf("empty filter must be identity, got %+v", got)
	}
}

func TestFilterOrders_IsPure(t *testing.T) {
	orders := sampleOrders()
	f := OrderFilter{Status: domain.OrderStatusPending}
	first := FilterOrders(orders, f)
	second := FilterOrders(orders, f)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same filter applied twice must yield the same result")
	}
	if len(first) != 2 || first[0].ID != 1 || first[1].ID != 3 {
		t.Fatalf("unexpected result: %+v", first)
	}
}

func TestFilterOrders_CombinesFields(t *testing.T) {
	got := FilterOrders(sampleOrders(), OrderFilter{
		Status:  domain.OrderStatusPending,
		Channel: domain.ChannelBackoffice,
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	got = FilterOrders(sampleOrders(), OrderFilter{
		Status:   domain.OrderStatusPending,
		Priority: domain.PriorityMedium,
	})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only order 3, got %+v", got)
	}
}

func TestFilterOrders_UnassignedOnly(t *testing.T) {
	got := FilterOrders(sampleOrders(), OrderFilter{Unassigned: true})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("expected unassigned orders 1 and 4, got %+v", got)
	}
}

func TestSearchRoles_MatchesNameLabelDescription(t *testing.T) {
	roles := []domain.Role{
		{Name: "sales_manager", Label: "Sales Manager", Description: "Runs the sales desk"},
		{Name: "editor", Label: "Content Editor", Description: "Maintains about pages"},
		{Name: "viewer", Label: "Viewer", Description: "Read-only access"},
	}

	if got := SearchRoles(roles, ""); len(got) != 3 {
		t.Fatalf("empty query must return all roles, got %d", len(got))
	}
	if got := SearchRoles(roles, "SALES"); len(got) != 1 || got[0].Name != "sales_manager" {
		t.Fatalf("case-insensitive name match failed: %+v", got)
	}
	if got := SearchRoles(roles, "content"); len(got) != 1 || got[0].Name != "editor" {
		t.Fatalf("label match failed: %+v", got)
	}
	if got := SearchRoles(roles, "read-only"); len(got) != 1 || got[0].Name != "viewer" {
		t.Fatalf("description match failed: %+v", got)
	}
	if got := SearchRoles(roles, "nothing here"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 5, 5},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	if got := ClampPage(0, 25, 10); got != 1 {
		t.Errorf("page below 1 must clamp to 1, got %d", got)
	}
	if got := ClampPage(7, 25, 10); got != 3 {
		t.Errorf("page past the end must clamp to last page, got %d", got)
	}
	if got := ClampPage(2, 25, 10); got != 2 {
		t.Errorf("in-range page must be untouched, got %d", got)
	}
	if got := ClampPage(5, 0, 10); got != 1 {
		t.Errorf("empty set must clamp to page 1, got %d", got)
	}
}

func TestPageBounds_FirstPageOf25(t *testing.T) {
	lo, hi := PageBounds(25, 1, 10)
	if lo != 0 || hi != 10 {
		t.Fatalf("expected [0,10), got [%d,%d)", lo, hi)
	}
}

func TestPageBounds_LastPartialPage(t *testing.T) {
	lo, hi := PageBounds(25, 3, 10)
	if lo != 20 || hi != 25 {
		t.Fatalf("expected [20,25), got [%d,%d)", lo, hi)
	}
}

func TestPageBounds_EmptySet(t *testing.T) {
	lo, hi := PageBounds(0, 1, 10)
	if lo != 0 || hi != 0 {
		t.Fatalf("expected empty window, got [%d,%d)", lo, hi)
	}
	if TotalPages(0, 10) != 1 {
		t.Fatal("empty set must still report one page")
	}
}

func TestDiffPermissionSets_EqualInAnyOrder(t *testing.T) {
	if DiffPermissionSets([]string{"a", "b", "c"}, []string{"c", "a", "b"}) {
		t.Fatal("equal sets in different order must not diff")
	}
	if DiffPermissionSets(nil, nil) {
		t.Fatal("two empty sets must not diff")
	}
	if DiffPermissionSets([]string{"a", "a", "b"}, []string{"b", "a"}) {
		t.Fatal("duplicates must not affect membership comparison")
	}
}

func TestDiffPermissionSets_Divergence(t *testing.T) {
	if !DiffPermissionSets([]string{"a", "b"}, []string{"a"}) {
		t.Fatal("size mismatch must diff")
	}
	if !DiffPermissionSets([]string{"a", "b"}, []string{"a", "c"}) {
		t.Fatal("same size, different content must diff")
	}
	if !DiffPermissionSets([]string{"a"}, nil) {
		t.Fatal("clearing all permissions must diff")
	}
}
