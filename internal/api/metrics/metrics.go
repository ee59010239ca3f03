// Package metrics defines and registers all custom Prometheus metrics for
// the todo API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - outcome: "created", "duplicate_email", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SigninsTotal counts signin attempts.
// Label:
//   - outcome: "ok", "unknown_user", "bad_password", or "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDenialsTotal counts denied authorization decisions.
// Label:
//   - reason: stable denial reason (e.g. "not_owner", "self_assignment",
//     "insufficient_role")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of denied authorization decisions, by reason.",
	},
	[]string{"reason"},
)

// AdminAccessesTotal counts requests that reached an admin-sensitive route.
// Label:
//   - path: the registered route path (e.g. "/admin/users/:userID/role")
var AdminAccessesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_accesses_total",
		Help:      "Total number of requests to admin-sensitive routes, by route path.",
	},
	[]string{"path"},
)
