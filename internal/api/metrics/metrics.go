// Package metrics defines and registers the custom Prometheus metrics for
// the portal API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts.
// Labels:
//   - role: the asserted role ("doctor", "patient", "hospital", or "unknown")
//   - outcome: "success", "invalid_credentials", "store_unavailable", "bad_request"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and outcome.",
	},
	[]string{"role", "outcome"},
)

// LoginDuration measures login latency end-to-end, dominated by the
// credential directory fetch.
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login handling including the directory fetch.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - outcome: "restored", "empty", "error"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of persisted session restore attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AppointmentsBookedTotal counts appointments created through the portal.
var AppointmentsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked.",
	},
)

// AppointmentTransitionsTotal counts appointment status transitions.
// Label:
//   - status: the new status applied ("confirmed", "declined", ...)
var AppointmentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_transitions_total",
		Help:      "Total number of appointment status transitions, by new status.",
	},
	[]string{"status"},
)
