// Package view holds the pure functions behind the admin listing screens:
// exact-match order filtering, role search, page clamping and slicing, and
// the permission-set membership diff. Everything here is a pure function of
// its inputs so the listing state container can be rebuilt from any snapshot.
package view

import (
	"strings"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// OrderFilter selects orders by exact field match. A zero-value field means
// match-all for that field. Unassigned additionally restricts the result to
// orders with no owner.
type OrderFilter struct {
	Status     domain.OrderStatus
	Priority   domain.OrderPriority
	Channel    domain.OrderChannel
	Unassigned bool
}

// FilterOrders returns the subset of orders matching every present filter
// field, preserving input order. An empty filter returns the input unchanged.
func FilterOrders(orders []domain.Order, f OrderFilter) []domain.Order {
	if f == (OrderFilter{}) {
		return orders
	}
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.Priority != "" && o.Priority != f.Priority {
			continue
		}
		if f.Channel != "" && o.Channel != f.Channel {
			continue
		}
		if f.Unassigned && !o.Unassigned() {
			continue
		}
		out = append(out, o)
	}
	return out
}

// SearchRoles returns roles whose name, label, or description contains the
// query (case-insensitive substring). An empty query returns the input
// unchanged.
func SearchRoles(roles []domain.Role, query string) []domain.Role {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return roles
	}
	out := make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Label), q) ||
			strings.Contains(strings.ToLower(r.Description), q) {
			out = append(out, r)
		}
	}
	return out
}

// TotalPages returns the number of pages needed for total items, never less
// than one: an empty result set still renders a single (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, TotalPages(total, pageSize)]. Called
// whenever the page size or the underlying set changes so the view never
// points past the end.
func ClampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, pageSize); page > max {
		return max
	}
	return page
}

// PageBounds returns the half-open window [lo, hi) for a 1-indexed page over
// total items. The page is clamped first, so the window is always valid.
func PageBounds(total, page, pageSize int) (lo, hi int) {
	if pageSize <= 0 {
		return 0, total
	}
	page = ClampPage(page, total, pageSize)
	lo = (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi = lo + pageSize
	if hi > total {
		hi = total
	}
	return lo, hi
}

// DiffPermissionSets reports whether current and next differ in membership,
// ignoring order and duplicates. A size mismatch alone is not trusted:
// content divergence is checked both ways so the caller can skip a write
// exactly when the sets are equal.
func DiffPermissionSets(current, next []string) bool {
	cur := make(map[string]struct{}, len(current))
	for _, k := range current {
		cur[k] = struct{}{}
	}
	nxt := make(map[string]struct{}, len(next))
	for _, k := range next {
		nxt[k] = struct{}{}
	}
	if len(cur) != len(nxt) {
		return true
	}
	for k := range nxt {
		if _, ok := cur[k]; !ok {
			return true
		}
	}
	return false
}
