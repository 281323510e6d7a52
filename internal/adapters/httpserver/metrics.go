package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gkurta_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gkurta_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	catalogProductsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gkurta_catalog_products",
			Help: "Number of products loaded from the catalogue",
		},
	)

	orderMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gkurta_order_messages_total",
			Help: "Order messages composed successfully",
		},
	)
)
