// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Execution metrics
var (
	ExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ooo_executions_total",
			Help: "Total number of settings mutations executed",
		},
		[]string{"action", "mode", "status"},
	)

	ExecutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ooo_execution_duration_seconds",
			Help:    "Duration of settings mutations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action", "mode"},
	)
)

// Credential metrics
var (
	TokenRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ooo_token_refreshes_total",
			Help: "Total number of refresh-token grants by result",
		},
		[]string{"result"},
	)

	TokenRotationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ooo_token_rotations_total",
			Help: "Total number of rotated refresh tokens persisted",
		},
	)

	UnauthorizedRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ooo_provider_unauthorized_retries_total",
			Help: "Total number of mail provider calls retried after a 401",
		},
		[]string{"operation"},
	)
)

// Audit metrics
var (
	AuditWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ooo_audit_write_failures_total",
			Help: "Total number of audit records that could not be stored",
		},
	)
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ooo_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ooo_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	WebhookCallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ooo_webhook_callbacks_total",
			Help: "Total number of inbound automation callbacks by verification result",
		},
		[]string{"result"},
	)
)
