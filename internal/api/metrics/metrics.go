// Package metrics defines and registers all custom Prometheus metrics for the
// backoffice API. It is the single source of truth for metric names, labels,
// and help strings. Request-level metrics (latency, status codes) come from
// the echoprometheus middleware; everything here is domain-specific.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations by outcome.
// Label:
//   - result: "success", "duplicate", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ForbiddenTotal counts requests rejected by the role allow-list check.
// Label:
//   - route: the matched route path
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of requests denied by role-based access control.",
	},
	[]string{"route"},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntityWritesTotal counts successful create/update/delete operations.
// Labels:
//   - entity: "item", "task", "attendance", "payroll", "department", "invoice"
//   - op:     "create", "update", "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity write operations.",
	},
	[]string{"entity", "op"},
)
