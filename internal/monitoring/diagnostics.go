// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package monitoring

import (
	"sync"
	"time"
)

// Diagnostics keeps process-level state shared by all reconcile loops.
type Diagnostics struct {
	mu        sync.RWMutex
	lastEvent time.Time
}

// DefaultDiagnostics is updated by RecordLastReconcile.
var DefaultDiagnostics = &Diagnostics{}

// Touch records t as the time of the latest reconcile event.
func (d *Diagnostics) Touch(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t.After(d.lastEvent) {
		d.lastEvent = t
	}
}

// LastEvent returns the time of the latest reconcile event, zero if none.
func (d *Diagnostics) LastEvent() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastEvent
}

// Snapshot is a point-in-time view of Diagnostics.
type Snapshot struct {
	LastEvent time.Time `json:"last_event"`
}

// Snapshot returns the current state.
func (d *Diagnostics) Snapshot() Snapshot {
	return Snapshot{LastEvent: d.LastEvent()}
}
