package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmx_api_requests_total",
		Help: "Total number of backend API requests by endpoint, method and outcome.",
	},
		[]string{"endpoint", "method", "outcome"},
	)

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "farmx_api_request_duration_seconds",
		Help:    "Latency of backend API requests.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"endpoint", "method"},
	)

	StatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmx_status_updates_total",
		Help: "Total number of order status updates submitted from cards.",
	},
		[]string{"role", "result"},
	)

	DeliveryConfirmationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmx_delivery_confirmations_total",
		Help: "Total number of delivery code confirmations attempted by handlers.",
	},
		[]string{"result"},
	)

	CountdownsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "farmx_countdowns_active",
		Help: "Current number of running delivery countdowns.",
	})

	FakeAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmx_fakeapi_requests_total",
		Help: "Total number of requests served by the development backend.",
	},
		[]string{"route", "method", "status"},
	)

	AuditEntriesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmx_audit_entries_dropped_total",
		Help: "Total number of audit entries written through the emergency path.",
	})
)
