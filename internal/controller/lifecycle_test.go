// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
)

func newLifecycle(c client.Client) *Lifecycle {
	return &Lifecycle{
		Client:    c,
		Kind:      KindZone,
		Finalizer: FinalizerZone,
		Notifier:  NewDeletionNotifier(c, "test"),
	}
}

func deleted(zone *v1alpha1.Zone) *v1alpha1.Zone {
	now := metav1.Now()
	zone.DeletionTimestamp = &now
	return zone
}

func TestPhaseOf(t *testing.T) {
	tests := []struct {
		name      string
		obj       *v1alpha1.Zone
		wantPhase Phase
		wantOK    bool
	}{
		{"live without finalizer", testZone("a"), PhaseApply, true},
		{"live with finalizer", testZone("a", FinalizerZone), PhaseApply, true},
		{"deleted with finalizer", deleted(testZone("a", FinalizerZone)), PhaseCleanup, true},
		{"deleted with foreign finalizer only", deleted(testZone("a", "other")), PhaseCleanup, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, ok := PhaseOf(tt.obj, FinalizerZone)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantPhase, phase)
			}
		})
	}
	assert.Equal(t, "Apply", PhaseApply.String())
	assert.Equal(t, "Cleanup", PhaseCleanup.String())
}

func TestLifecycle_ApplyAddsFinalizerFirst(t *testing.T) {
	zone := testZone("example")
	c := newFakeClient(t, nil, zone)

	var finalizersDuringApply []string
	result, err := newLifecycle(c).Run(context.Background(), zone, func(ctx context.Context) (Outcome, error) {
		current := &v1alpha1.Zone{}
		require.NoError(t, c.Get(ctx, client.ObjectKeyFromObject(zone), current))
		finalizersDuringApply = current.Finalizers
		return Outcome{RequeueAfter: 5 * time.Minute}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, result.RequeueAfter)
	assert.Equal(t, []string{FinalizerZone}, finalizersDuringApply)
}

func TestLifecycle_ApplyFailureRecordedNotReturned(t *testing.T) {
	zone := testZone("example", FinalizerZone)
	c := newFakeClient(t, nil, zone)

	result, err := newLifecycle(c).Run(context.Background(), zone, func(context.Context) (Outcome, error) {
		return Outcome{RequeueAfter: time.Minute, Err: Errorf(DependencyNotReady, "not ready")}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, time.Minute, result.RequeueAfter)
}

func TestLifecycle_PlatformErrorReturned(t *testing.T) {
	zone := testZone("example", FinalizerZone)
	c := newFakeClient(t, nil, zone)
	boom := Platform(errors.New("status patch failed"))

	result, err := newLifecycle(c).Run(context.Background(), zone, func(context.Context) (Outcome, error) {
		return Outcome{}, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, result.RequeueAfter)
}

func TestLifecycle_FinalizerFailureSkipsApply(t *testing.T) {
	zone := testZone("example")
	c := newFakeClient(t, &interceptor.Funcs{
		Update: func(context.Context, client.WithWatch, client.Object, ...client.UpdateOption) error {
			return errors.New("apiserver down")
		},
	}, zone)

	called := false
	_, err := newLifecycle(c).Run(context.Background(), zone, func(context.Context) (Outcome, error) {
		called = true
		return Outcome{}, nil
	})

	require.Error(t, err)
	assert.True(t, IsPlatform(err))
	assert.False(t, called)
}

func TestLifecycle_CleanupPublishesEventAndRemovesFinalizer(t *testing.T) {
	zone := deleted(testZone("example", FinalizerZone))
	c := newFakeClient(t, nil, zone)

	called := false
	result, err := newLifecycle(c).Run(context.Background(), zone, func(context.Context) (Outcome, error) {
		called = true
		return Outcome{}, nil
	})

	require.NoError(t, err)
	assert.Zero(t, result.RequeueAfter)
	assert.False(t, called, "apply must not run during cleanup")

	events := &corev1.EventList{}
	require.NoError(t, c.List(context.Background(), events))
	require.Len(t, events.Items, 1)
	assert.Equal(t, EventReasonDeleteRequested, events.Items[0].Reason)

	err = c.Get(context.Background(), client.ObjectKeyFromObject(zone), &v1alpha1.Zone{})
	assert.True(t, apierrors.IsNotFound(err), "object should be gone once the finalizer is removed")
}

func TestLifecycle_CleanupKeepsFinalizerWhenEventFails(t *testing.T) {
	zone := deleted(testZone("example", FinalizerZone))
	c := newFakeClient(t, &interceptor.Funcs{
		Create: func(context.Context, client.WithWatch, client.Object, ...client.CreateOption) error {
			return errors.New("events are forbidden")
		},
	}, zone)

	_, err := newLifecycle(c).Run(context.Background(), zone, nil)
	require.Error(t, err)

	got := &v1alpha1.Zone{}
	require.NoError(t, c.Get(context.Background(), client.ObjectKeyFromObject(zone), got))
	assert.Equal(t, []string{FinalizerZone}, got.Finalizers)
}

func TestLifecycle_DeletedWithoutFinalizerIsNoop(t *testing.T) {
	zone := deleted(testZone("example", "other"))
	c := newFakeClient(t, nil)

	result, err := newLifecycle(c).Run(context.Background(), zone, func(context.Context) (Outcome, error) {
		t.Fatal("apply must not run")
		return Outcome{}, nil
	})

	require.NoError(t, err)
	assert.Zero(t, result.RequeueAfter)
}
