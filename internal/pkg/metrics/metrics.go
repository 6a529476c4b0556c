// Package metrics exposes the Prometheus collectors used across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workforce_http_requests_total",
		Help: "Total HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "workforce_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	PredictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "workforce_fit_predictions_total",
		Help: "Fit prediction requests that produced a ranking.",
	})

	SkillGapReportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "workforce_skill_gap_reports_total",
		Help: "Skill gap reports computed (cache misses only).",
	})

	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "workforce_websocket_clients",
		Help: "Currently connected websocket clients.",
	})
)
