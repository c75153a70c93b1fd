package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Relay call outcomes
const (
	ResultAccepted         = "accepted"
	ResultRejected         = "rejected"
	ResultTransportFailure = "transport_failure"
)

// Submission modes
const (
	ModeRelay = "relay"
	ModeDemo  = "demo"
)

var (
	ApplicationsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "touchdown_applications_started_total",
			Help: "Total number of application forms opened through the API",
		},
	)

	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "touchdown_applications_submitted_total",
			Help: "Total number of applications that reached the submitted phase",
		},
		[]string{"mode"},
	)

	RelayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "touchdown_relay_requests_total",
			Help: "Total number of POSTs to the form relay by outcome",
		},
		[]string{"result"},
	)

	RelayDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "touchdown_relay_request_duration_seconds",
			Help:    "Duration of form relay POSTs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
