// Package metrics defines all custom Prometheus metrics for the lodging API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Call Register once per registry before the HTTP server starts.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lodging"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "Host" or "Guest"
var UsersRegisteredTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" or "error"
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Accommodation metrics ─────────────────────────────────────────────────────

var AccommodationsCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accommodations_created_total",
		Help:      "Total number of accommodation listings created.",
	},
)

var AccommodationsDeletedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accommodations_deleted_total",
		Help:      "Total number of accommodation listings deleted.",
	},
)

// Register adds every collector in this package to reg. Collectors that are
// already registered with reg are skipped.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		UsersRegisteredTotal,
		LoginsTotal,
		AccommodationsCreatedTotal,
		AccommodationsDeletedTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
