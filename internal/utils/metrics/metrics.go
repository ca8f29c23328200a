// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts every HTTP request received.
	RequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_requests_total",
		Help: "The total number of HTTP requests",
	})

	// ResponsesTotal counts responses by status code.
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_responses_total",
		Help: "The total number of HTTP responses by status code",
	}, []string{"status"})

	// RequestDuration observes request handling time.
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jobboard_request_duration_seconds",
		Help:    "The request duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RequestDurationByPath observes request handling time per route.
	RequestDurationByPath = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobboard_request_duration_by_path_seconds",
		Help:    "The request duration in seconds by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ApplicationsTotal counts persisted job applications.
	ApplicationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_applications_total",
		Help: "The total number of job applications submitted",
	})

	// DigestsPublishedTotal counts applicant digest events published.
	DigestsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_digests_published_total",
		Help: "The total number of applicant digest events published",
	})

	// UsersDeletedTotal counts completed cascade deletions by role.
	UsersDeletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_users_deleted_total",
		Help: "The total number of cascade user deletions by role",
	}, []string{"role"})
)
