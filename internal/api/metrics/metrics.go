// Package metrics defines the custom Prometheus metrics for the marketplace
// API. It is the single source of truth for metric names, labels, and help
// strings; everything registers against the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// RoomsCreatedTotal counts successfully inserted room listings.
var RoomsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Total number of room listings created.",
	},
)

// BookingsCreatedTotal counts successfully inserted bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// NotificationsSentTotal counts delivered notification emails.
// Label:
//   - recipient: "guest" or "host"
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notification emails delivered.",
	},
	[]string{"recipient"},
)

// NotificationsErrorsTotal counts notification deliveries that failed.
// Label:
//   - reason: short failure description ("send_failed", "dedup_failed")
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notification emails that failed to deliver.",
	},
	[]string{"reason"},
)

// NotificationsDedupTotal counts deduplication decisions in the dispatcher.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new job, delivered)
var NotificationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dedup_total",
		Help:      "Total number of notification dedup checks, by result (hit/miss).",
	},
	[]string{"result"},
)

// PaymentIntentsTotal counts payment intent requests.
// Label:
//   - result: "created", "rejected" (bad price), or "error" (processor failure)
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent requests, by result.",
	},
	[]string{"result"},
)
