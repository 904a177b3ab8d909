package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the logistics gateway
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by the logistics gateway",
	})
}

// NewGateRedirectsTotal returns a Prometheus counter vector for access gate redirects, labeled by decision
func NewGateRedirectsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "access_gate_redirects_total",
		Help: "Total number of navigation requests redirected by the access gate",
	}, []string{"decision"})
}

// NewNotificationsTotal returns a Prometheus counter vector for user notifications, labeled by variant
func NewNotificationsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_total",
		Help: "Total number of user notifications emitted by console operations",
	}, []string{"variant"})
}

// NewRateLimitDeniedTotal returns a Prometheus counter for API requests rejected by the rate limiter
func NewRateLimitDeniedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_denied_total",
		Help: "Total number of API requests rejected by the rate limiter",
	})
}

// NewTrackingEventsTotal returns a Prometheus counter vector for consumed tracking events, labeled by outcome
func NewTrackingEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracking_events_total",
		Help: "Total number of shipment tracking events consumed",
	}, []string{"outcome"})
}
