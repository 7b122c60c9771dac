// Package metrics defines the custom Prometheus metrics for the course API.
// It is the single source of truth for metric names, labels, and help strings.
// All metrics register on the default registry at init and are exposed on
// GET /metrics alongside the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courseapi"

// CoursesCreatedTotal counts successfully created courses.
var CoursesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_created_total",
		Help:      "Total number of courses created.",
	},
)

// CourseMutationsTotal counts update/delete attempts by outcome.
// Labels:
//   - operation: "update" or "delete"
//   - outcome: "ok", "denied", "invalid", "not_found", "error"
var CourseMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_mutations_total",
		Help:      "Total number of course mutation attempts, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: short description ("missing_header", "bad_credentials", "bad_token", ...)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication gate.",
	},
	[]string{"reason"},
)
