// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package monitoring holds the Prometheus collectors, reconcile hooks,
// diagnostics state and OpenTelemetry tracing helpers of the operator.
//
// Collectors are registered against controller-runtime's registry on import,
// so they are served from the manager's metrics endpoint next to the generic
// controller-runtime metrics.
//
// Reconcilers report through two hooks:
//
//	monitoring.RecordLastReconcile("zone")
//	monitoring.RecordReconcileResult("zone", "DependencyNotReady", elapsed)
package monitoring
