// Package metrics defines and registers all custom Prometheus metrics for the
// case-admin API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "caseadmin"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid", or "locked"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AdminMutationsTotal counts write operations on administered entities.
// Labels:
//   - entity: "user", "role", or a parametric kind ("court", "claimant", ...)
//   - op: "create", "update", "toggle", "set_roles", or "delete"
var AdminMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_mutations_total",
		Help:      "Total number of administrative mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)
