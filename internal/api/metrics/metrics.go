// Package metrics defines and registers all custom Prometheus metrics for the
// time-tracking API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetracking"

// RegistrationsTotal counts completed user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)

// LoginsTotal counts login attempts by result ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts refresh-token rotations.
var TokenRefreshesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of successful token refreshes.",
	},
)

// AuthFailuresTotal counts rejected bearer tokens at the middleware.
// Label:
//   - reason: "missing_header", "bad_header", "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// UploadsTotal counts stored file uploads.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of stored file uploads.",
	},
)

// UploadBytes observes the size of stored uploads.
var UploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_bytes",
		Help:      "Size distribution of stored uploads in bytes.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB … 16GiB
	},
)
