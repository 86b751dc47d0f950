package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSubscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "expenses",
			Subsystem: "feed",
			Name:      "active_subscriptions",
		},
	)
	publishedEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "feed",
			Name:      "published_events_total",
		},
		[]string{"kind"},
	)
)
