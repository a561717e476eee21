// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package monitoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"sigs.k8s.io/yaml"
)

func TestDiagnostics_Touch(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.LastEvent().IsZero())

	t1 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	t0 := t1.Add(-time.Minute)

	d.Touch(t1)
	d.Touch(t0)
	assert.Equal(t, t1, d.LastEvent(), "older timestamps must not move last event backwards")
}

func TestDiagnostics_ConcurrentTouch(t *testing.T) {
	d := &Diagnostics{}
	base := time.Now()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.Touch(base.Add(time.Duration(i) * time.Second))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, base.Add(49*time.Second), d.LastEvent())
}

func TestDiagnostics_Snapshot(t *testing.T) {
	d := &Diagnostics{}
	d.Touch(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	out, err := yaml.Marshal(d.Snapshot())
	assert.NoError(t, err)
	assert.Contains(t, string(out), "last_event:")
	assert.Contains(t, string(out), "2026-01-02T03:04:05Z")
}
