// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Role metrics ──────────────────────────────────────────────────────────────

// RolesMutatedTotal counts role mutations that completed successfully.
// Label:
//   - action: "create", "update_details", "replace_permissions", "delete"
var RolesMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_mutated_total",
		Help:      "Total number of successful role mutations, by action.",
	},
	[]string{"action"},
)

// PermissionReplaceNoopsTotal counts permission-set updates skipped because
// the candidate set was membership-equal to the current set.
var PermissionReplaceNoopsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_replace_noops_total",
		Help:      "Total number of permission replacements skipped as no-ops.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersMutatedTotal counts order mutations that completed successfully.
// Label:
//   - action: "create", "update", "update_status", "delete"
var OrdersMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_mutated_total",
		Help:      "Total number of successful order mutations, by action.",
	},
	[]string{"action"},
)

// StatusFastPathTotal counts single-click status changes from the listing
// view, by the status applied.
var StatusFastPathTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_fast_path_total",
		Help:      "Total number of status-only order updates, by new status.",
	},
	[]string{"status"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheLookupsTotal counts listing-cache lookups.
// Labels:
//   - view: cached view name (e.g. "roles", "permissions")
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of view cache lookups, by view and result.",
	},
	[]string{"view", "result"},
)
