// Package metrics defines and registers all custom Prometheus metrics for
// the company catalog API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// RegistrationsTotal counts registration attempts.
// Labels:
//   - variant: "user" or "company"
//   - outcome: "success", "duplicate", "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of registration attempts, by variant and outcome.",
	},
	[]string{"variant", "outcome"},
)

// LoginsTotal counts authentication attempts. The "failed" outcome covers
// both unknown principals and wrong secrets so the metric cannot be used to
// enumerate accounts any more than the API response can.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of authentication attempts, by variant and outcome.",
	},
	[]string{"variant", "outcome"},
)

// DenialsTotal counts requests stopped by the authorization middleware.
// Label:
//   - reason: "no_token", "invalid_token", "no_claims", "role_denied"
var DenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests denied by the authorization middleware.",
	},
	[]string{"reason"},
)

// LoginDuration measures authentication latency end-to-end, dominated by
// the bcrypt verification cost.
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_login_duration_seconds",
		Help:      "Duration of authentication requests from bind to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"variant"},
)
