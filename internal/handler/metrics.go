package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "orders_created_total",
			Help:      "Total number of orders placed through checkout",
		},
	)

	orderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_transitions_total",
			Help:      "Total number of order status transitions by target status",
		},
		[]string{"target"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		orderTransitions,
	)
}
