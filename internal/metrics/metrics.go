// Package metrics defines Prometheus metrics for graphpane.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphpane_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphpane_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphpane_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphpane_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphpane_nodes_total",
			Help: "Total node count",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphpane_edges_total",
			Help: "Total edge count",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		WSConnections, NodeCount, EdgeCount,
	)
}
