// Package metrics defines and registers all custom Prometheus metrics for
// the events API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them through the echoprometheus handler on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "events_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - user_type: "admin" or "user"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by principal kind.",
	},
	[]string{"user_type"},
)

// LoginFailuresTotal counts rejected login attempts. No labels: the response
// deliberately does not distinguish unknown identifier from wrong password,
// and neither does this metric.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts.",
	},
)

// UsersRegisteredTotal counts new member registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of member accounts created.",
	},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// EventsCreatedTotal counts newly published events.
// Label:
//   - type: event type (e.g. "Conference", "Hackathon")
var EventsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events published, by event type.",
	},
	[]string{"type"},
)

// OpportunitiesCreatedTotal counts newly published research opportunities.
// Label:
//   - type: opportunity type (e.g. "Research", "Internship")
var OpportunitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "opportunities_created_total",
		Help:      "Total number of research opportunities published, by type.",
	},
	[]string{"type"},
)
