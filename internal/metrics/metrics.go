package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Inbound webhook metrics
	WebhookRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larkrelay_webhook_requests_total",
			Help: "Total number of inbound webhook requests by response status",
		},
		[]string{"status"},
	)

	WebhookBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "larkrelay_webhook_bytes_total",
			Help: "Total bytes of webhook payload received",
		},
	)

	// Pipeline metrics
	EventsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larkrelay_events_skipped_total",
			Help: "Total number of events acknowledged but not relayed",
		},
		[]string{"reason"},
	)

	// Delivery metrics
	DeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larkrelay_deliveries_total",
			Help: "Total number of downstream delivery attempts by outcome",
		},
		[]string{"outcome"},
	)

	DeliveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larkrelay_delivery_duration_seconds",
			Help:    "Duration of downstream delivery attempts in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Rate limiting metrics
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larkrelay_rate_limit_hits_total",
			Help: "Total number of rate limit hits",
		},
		[]string{"client"},
	)
)

// Delivery outcome label values.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)
