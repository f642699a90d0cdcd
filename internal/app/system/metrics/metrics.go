// Package metrics exposes Prometheus counters for user service calls and for
// the best-effort director synchronization, whose failures are swallowed by
// the orchestrator and would otherwise only be visible in logs.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sync outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
)

var (
	registerOnce sync.Once

	remoteCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "institutionhub",
			Subsystem: "user_service",
			Name:      "requests_total",
			Help:      "Requests sent to the user service.",
		},
		[]string{"op", "status", "success"},
	)
	remoteDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "institutionhub",
			Subsystem: "user_service",
			Name:      "request_duration_seconds",
			Help:      "User service request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	directorSync = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "institutionhub",
			Subsystem: "director_sync",
			Name:      "total",
			Help:      "Director link/unlink attempts by outcome.",
		},
		[]string{"branch", "outcome"},
	)
)

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(remoteCalls, remoteDuration, directorSync)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

// RecordRemoteCall counts one user service request. status is 0 when the
// request never produced a response.
func RecordRemoteCall(op string, status int, success bool, d time.Duration) {
	Register()
	remoteCalls.WithLabelValues(op, strconv.Itoa(status), strconv.FormatBool(success)).Inc()
	remoteDuration.WithLabelValues(op).Observe(d.Seconds())
}

// RecordDirectorSync counts one branch ("link" or "unlink") of a director swap.
func RecordDirectorSync(branch, outcome string) {
	Register()
	directorSync.WithLabelValues(branch, outcome).Inc()
}
