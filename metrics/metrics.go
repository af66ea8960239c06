// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of the diffgap server.
// Collectors register on the default registry through promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/diffgap/calculi"
)

var (
	// HTTPRequestsTotal counts requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diffgap_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures response time.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diffgap_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	// RunsTotal counts pipeline runs by effective-gap method and outcome.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diffgap_runs_total",
			Help: "Total number of spectral-gap computations",
		},
		[]string{"method", "outcome"},
	)

	// RunDuration measures one full computation, labeled by method.
	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diffgap_run_duration_seconds",
			Help:    "Duration of one spectral-gap computation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"method"},
	)

	// LastGap is the most recent per-embedding gap.
	LastGap = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "diffgap_last_gap",
			Help: "Spectral gap of the most recent computation per embedding",
		},
		[]string{"kind"},
	)

	// LastEffectiveGap is the most recent effective gap per method.
	LastEffectiveGap = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "diffgap_last_effective_gap",
			Help: "Effective gap of the most recent computation",
		},
		[]string{"method"},
	)
)

// ObserveRun records one computation. A nil err marks success.
func ObserveRun(method calculi.Method, out calculi.Output, elapsed time.Duration, err error) {
	m := string(method)
	RunDuration.WithLabelValues(m).Observe(elapsed.Seconds())
	if err != nil {
		RunsTotal.WithLabelValues(m, "error").Inc()
		return
	}
	RunsTotal.WithLabelValues(m, "ok").Inc()
	for _, g := range out.Gaps {
		LastGap.WithLabelValues(string(g.Kind)).Set(g.Gap)
	}
	LastEffectiveGap.WithLabelValues(m).Set(out.EffectiveGap)
}
