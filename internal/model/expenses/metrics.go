package expenses

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remoteEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "reconciler",
			Name:      "remote_events_total",
		},
		[]string{"kind"},
	)
	duplicateSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "reconciler",
			Name:      "duplicates_suppressed_total",
		},
		[]string{"source"},
	)
	staleResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "reconciler",
			Name:      "stale_responses_total",
		},
		[]string{"op"},
	)
	foreignEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "reconciler",
			Name:      "foreign_events_total",
		},
	)
	compensations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "reconciler",
			Name:      "delete_compensations_total",
		},
	)
)
