package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	HTTPRequests          *prometheus.CounterVec
	HTTPLatency           *prometheus.HistogramVec
	WithdrawalTransitions *prometheus.CounterVec
	NotificationsSent     *prometheus.CounterVec
	NotificationFailures  prometheus.Counter
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, route and status.",
			}, []string{"method", "route", "status"}),
			HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency distribution of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route"}),
			WithdrawalTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "withdrawal_transitions_total",
				Help:      "Withdrawal status transitions by target status.",
			}, []string{"status"}),
			NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Notification rows inserted by type.",
			}, []string{"type"}),
			NotificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_failures_total",
				Help:      "Notification inserts that failed and were dropped.",
			}),
		}

		prometheus.MustRegister(
			metricsInstance.HTTPRequests,
			metricsInstance.HTTPLatency,
			metricsInstance.WithdrawalTransitions,
			metricsInstance.NotificationsSent,
			metricsInstance.NotificationFailures,
		)
	})
	return metricsInstance
}
