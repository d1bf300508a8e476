package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsCommitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_project_transitions_total",
			Help: "Lifecycle transitions committed, by operation",
		},
		[]string{"op"},
	)

	TransitionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_project_transitions_rejected_total",
			Help: "Lifecycle transitions rejected, by operation and reason",
		},
		[]string{"op", "reason"},
	)

	TransitionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solar_project_transition_duration_seconds",
			Help:    "Load, apply and commit time of a lifecycle transition",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	NotificationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_notifications_emitted_total",
			Help: "Notifications persisted, by message key",
		},
		[]string{"message_key"},
	)

	DeliveryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_notification_delivery_failures_total",
			Help: "Best-effort side effects that failed after commit, by channel",
		},
		[]string{"channel"},
	)

	CommissionSigned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solar_commission_signed_amount_total",
			Help: "Sum of commission amounts recorded at signing",
		},
	)
)
