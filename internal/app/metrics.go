package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"seller-console/internal/metrics"
)

// Register against the default registry so /metrics picks the collectors up.
// Re-registration (containers built more than once in one process) reuses
// the existing collector.

func registerCounterVec(cv *prometheus.CounterVec) *prometheus.CounterVec {
	if err := prometheus.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return cv
}

func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func gateRedirectsTotal() *prometheus.CounterVec {
	return registerCounterVec(metrics.NewGateRedirectsTotal())
}

func notificationsTotal() *prometheus.CounterVec {
	return registerCounterVec(metrics.NewNotificationsTotal())
}

func trackingEventsTotal() *prometheus.CounterVec {
	return registerCounterVec(metrics.NewTrackingEventsTotal())
}

func gatewayRetriesTotal() prometheus.Counter {
	return registerCounter(metrics.NewGatewayRetriesTotal())
}

func rateLimitDeniedTotal() prometheus.Counter {
	return registerCounter(metrics.NewRateLimitDeniedTotal())
}
