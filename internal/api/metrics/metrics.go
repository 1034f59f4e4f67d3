// Package metrics defines and registers all custom Prometheus metrics for
// the Nailyse API. It is the single source of truth for metric names, labels
// and help strings. Metrics register themselves with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nailyse"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// AppointmentsCreatedTotal counts persisted bookings.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments booked.",
	},
)

// EmailsSentTotal counts transactional email attempts.
// Labels:
//   - template: "welcome", "appointment" or "order"
//   - result:   "ok" or "error"
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of transactional email send attempts, by template and result.",
	},
	[]string{"template", "result"},
)

// CheckoutSessionsTotal counts created checkout sessions.
// Label:
//   - mode: "live" (Stripe was contacted) or "mock" (placeholder key)
var CheckoutSessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_sessions_total",
		Help:      "Total number of checkout sessions created, by provider mode.",
	},
	[]string{"mode"},
)

// PaymentConfirmsTotal counts confirm-endpoint outcomes.
// Label:
//   - result: "ok", "duplicate" or "error"
var PaymentConfirmsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_confirms_total",
		Help:      "Total number of payment confirmations processed, by result.",
	},
	[]string{"result"},
)
