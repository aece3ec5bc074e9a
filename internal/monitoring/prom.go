// Copyright 2025 the conformo authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "conformo_http_requests_total",
	Help: "The total number of handled http requests",
}, []string{"method", "status"})

var HTTPRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "conformo_http_request_duration_seconds",
	Help:    "Duration of handled http requests in seconds",
	Buckets: prometheus.DefBuckets,
})

var StatSnapshotRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "conformo_stat_snapshot_runs_total",
	Help: "The total number of statistics snapshot daemon runs",
})

var StatSnapshotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "conformo_stat_snapshot_duration_seconds",
	Help:    "Duration of a statistics snapshot run in seconds",
	Buckets: prometheus.DefBuckets,
})

var SeedRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "conformo_seed_rows_total",
	Help: "The total number of seeded rows by outcome",
}, []string{"outcome"})
