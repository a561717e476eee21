// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package monitoring

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLastReconcile(t *testing.T) {
	t.Cleanup(func() { lastReconcileTimestamp.Reset() })

	before := time.Now()
	RecordLastReconcile("zone")

	assert.InDelta(t, float64(before.Unix()), gaugeValue(t, lastReconcileTimestamp, "zone"), 2)
	assert.False(t, DefaultDiagnostics.LastEvent().Before(before.Truncate(time.Second)))
}

func TestRecordReconcileResult(t *testing.T) {
	t.Cleanup(func() {
		reconcileTotal.Reset()
		reconcileFailuresTotal.Reset()
		reconcileDuration.Reset()
	})

	RecordReconcileResult("dnsrecord", ErrorKindNone, 10*time.Millisecond)
	RecordReconcileResult("dnsrecord", "InvalidAddressLiteral", 5*time.Millisecond)
	RecordReconcileResult("dnsrecord", "InvalidAddressLiteral", 5*time.Millisecond)
	RecordReconcileResult("zone", "", time.Millisecond)

	assert.Equal(t, 3.0, counterValue(t, reconcileTotal, "dnsrecord"))
	assert.Equal(t, 1.0, counterValue(t, reconcileTotal, "zone"))
	assert.Equal(t, 2.0, counterValue(t, reconcileFailuresTotal, "dnsrecord", "InvalidAddressLiteral"))
	assert.Equal(t, 0.0, counterValue(t, reconcileFailuresTotal, "dnsrecord", ErrorKindNone))
	assert.Equal(t, uint64(3), histogramCount(t, reconcileDuration, "dnsrecord"))
}

func TestSetClientCacheSize(t *testing.T) {
	t.Cleanup(func() { SetClientCacheSize(0) })

	SetClientCacheSize(3)

	m := &dto.Metric{}
	require.NoError(t, clientCacheSize.Write(m))
	assert.Equal(t, 3.0, m.GetGauge().GetValue())
}
