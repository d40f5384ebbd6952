package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trendora"

// requestsTotal counts completed requests.
// Labels:
//   - method: HTTP method
//   - status: HTTP status code, or "transport_error" when no response arrived
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_requests_total",
		Help:      "Total number of API requests issued, by method and status.",
	},
	[]string{"method", "status"},
)

// requestDuration measures end-to-end request latency.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "client_request_duration_seconds",
		Help:      "Duration of API requests from dispatch to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// authRejectionsTotal counts 401 responses observed by the response
// interceptor, i.e. credentials invalidated mid-session.
var authRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_auth_rejections_total",
		Help:      "Total number of authentication rejections (HTTP 401) observed.",
	},
)
