package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "notifier",
		Name:      "notifications_sent_total",
		Help:      "Total number of webhook notifications delivered.",
	}, []string{"event"})

	notificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "notifier",
		Name:      "notifications_failed_total",
		Help:      "Total number of webhook notifications that could not be delivered.",
	}, []string{"event"})
)
