// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package monitoring

import "time"

// ErrorKindNone is the error kind reported for a successful reconcile.
const ErrorKindNone = "None"

// RecordLastReconcile marks the start of a reconcile for kind.
func RecordLastReconcile(kind string) {
	now := time.Now()
	lastReconcileTimestamp.WithLabelValues(kind).Set(float64(now.Unix()))
	DefaultDiagnostics.Touch(now)
}

// RecordReconcileResult counts one finished reconcile. An errorKind other than
// ErrorKindNone or the empty string counts as a failure.
func RecordReconcileResult(kind, errorKind string, duration time.Duration) {
	reconcileTotal.WithLabelValues(kind).Inc()
	reconcileDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if errorKind != "" && errorKind != ErrorKindNone {
		reconcileFailuresTotal.WithLabelValues(kind, errorKind).Inc()
	}
}

// SetClientCacheSize publishes the number of cached API clients.
func SetClientCacheSize(n int) {
	clientCacheSize.Set(float64(n))
}
