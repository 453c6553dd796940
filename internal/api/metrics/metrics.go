// Package metrics defines and registers the custom Prometheus metrics for
// the HomeAndOwn listings API. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level request metrics come from the
// echoprometheus middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "homeandown"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - user_type: "buyer", "seller" or "agent"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by user type.",
	},
	[]string{"user_type"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests turned away by the auth middleware.
// Label:
//   - reason: "missing" or "invalid"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the bearer-token middleware.",
	},
	[]string{"reason"},
)

// PropertiesCreatedTotal counts newly created listings.
// Label:
//   - listing_type: "SALE" or "RENT"
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created, by listing type.",
	},
	[]string{"listing_type"},
)

// AgentCacheTotal counts agent-directory cache lookups.
// Label:
//   - result: "hit" or "miss"
var AgentCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "agent_cache_total",
		Help:      "Total number of agent directory cache lookups, by result.",
	},
	[]string{"result"},
)
