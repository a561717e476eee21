// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudflare_operator_reconcile_total",
			Help: "Total number of reconcile attempts per resource kind.",
		},
		[]string{"kind"},
	)

	reconcileFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudflare_operator_reconcile_failures_total",
			Help: "Failed reconcile attempts per resource kind and error kind.",
		},
		[]string{"kind", "error"},
	)

	lastReconcileTimestamp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cloudflare_operator_last_reconcile_timestamp_seconds",
			Help: "Unix time of the most recent reconcile per resource kind.",
		},
		[]string{"kind"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cloudflare_operator_reconcile_duration_seconds",
			Help:    "Latency of a reconcile pass in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	clientCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cloudflare_operator_client_cache_size",
			Help: "Number of Cloudflare API clients held by the client cache.",
		},
	)
)

func init() {
	metrics.Registry.MustRegister(Collectors()...)
}

// Collectors returns every collector owned by this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		reconcileTotal,
		reconcileFailuresTotal,
		lastReconcileTimestamp,
		reconcileDuration,
		clientCacheSize,
	}
}
