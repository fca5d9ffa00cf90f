package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealtracker_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mealtracker_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	// Counts write operations per table, fed by the change bus.
	TableWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealtracker_table_writes_total",
			Help: "Total create/update/delete operations per table",
		},
		[]string{"table", "action"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, TableWrites)
}
