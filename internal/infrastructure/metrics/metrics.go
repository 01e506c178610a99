package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_settlement_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "freight_settlement_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LegacyAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_settlement_legacy_api_requests_total",
			Help: "Calls to the remote back office by op and outcome",
		},
		[]string{"op", "outcome"},
	)

	LegacyAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "freight_settlement_legacy_api_duration_seconds",
			Help:    "Remote back office call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	StageBulkSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_settlement_stage_bulk_saves_total",
			Help: "Bulk stage payment saves by outcome",
		},
		[]string{"outcome"},
	)

	TicketAuthorizations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_settlement_ticket_authorizations_total",
			Help: "Driver payment ticket authorizations by outcome",
		},
		[]string{"outcome"},
	)

	PermissionRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_settlement_permission_refreshes_total",
			Help: "Session permission refreshes by outcome",
		},
		[]string{"outcome"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "freight_settlement_active_sessions",
			Help: "Operator sessions with a running permission refresher",
		},
	)
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
	OutcomeInvalid  = "invalid"
)
