// Package metrics defines the custom Prometheus metrics for the ticketing
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketing"

// TripsRedeemedTotal counts successful ticket redemptions (one per Viaje row).
var TripsRedeemedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_redeemed_total",
		Help:      "Total number of tickets successfully redeemed.",
	},
)

// RedemptionsRejectedTotal counts rejected redemption attempts.
// Label:
//   - reason: "insufficient_balance", "student_not_found" or "duplicate_scan"
var RedemptionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redemptions_rejected_total",
		Help:      "Total number of rejected ticket redemption attempts.",
	},
	[]string{"reason"},
)

// StudentsCreatedTotal counts newly registered students.
var StudentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_created_total",
		Help:      "Total number of students registered.",
	},
)

// LoginFailuresTotal counts rejected token requests.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of failed administrator logins.",
	},
)

// AuditQueueDepth tracks events waiting in each audit dispatcher worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
