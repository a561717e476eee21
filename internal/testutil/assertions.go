// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// AssertReady asserts the Ready condition is True with reason Reconciled.
func AssertReady(t *testing.T, conditions []metav1.Condition) {
	t.Helper()
	cond := meta.FindStatusCondition(conditions, "Ready")
	require.NotNil(t, cond, "Ready condition should exist")
	assert.Equal(t, metav1.ConditionTrue, cond.Status)
	assert.Equal(t, "Reconciled", cond.Reason)
}

// AssertNotReady asserts the Ready condition is False and carries the error kind as reason.
func AssertNotReady(t *testing.T, conditions []metav1.Condition, kind string) {
	t.Helper()
	cond := meta.FindStatusCondition(conditions, "Ready")
	require.NotNil(t, cond, "Ready condition should exist")
	assert.Equal(t, metav1.ConditionFalse, cond.Status)
	assert.Equal(t, kind, cond.Reason)
}

// AssertRequeue asserts a reconcile returned no error and the given interval.
func AssertRequeue(t *testing.T, result ctrl.Result, err error, after time.Duration) {
	t.Helper()
	require.NoError(t, err)
	assert.Equal(t, after, result.RequeueAfter)
}

// AssertHasFinalizer asserts that the object carries the finalizer.
func AssertHasFinalizer(t *testing.T, obj client.Object, finalizer string) {
	t.Helper()
	assert.True(t, controllerutil.ContainsFinalizer(obj, finalizer),
		"expected finalizer %s in %v", finalizer, obj.GetFinalizers())
}

// AssertNoFinalizer asserts that the object does not carry the finalizer.
func AssertNoFinalizer(t *testing.T, obj client.Object, finalizer string) {
	t.Helper()
	assert.False(t, controllerutil.ContainsFinalizer(obj, finalizer),
		"unexpected finalizer %s in %v", finalizer, obj.GetFinalizers())
}

// Events returns the core/v1 events published in namespace with the given reason.
func Events(t *testing.T, c client.Reader, namespace, reason string) []corev1.Event {
	t.Helper()
	list := &corev1.EventList{}
	require.NoError(t, c.List(context.Background(), list, client.InNamespace(namespace)))

	var out []corev1.Event
	for _, ev := range list.Items {
		if ev.Reason == reason {
			out = append(out, ev)
		}
	}
	return out
}

// DrainEvents returns the events buffered in a fake recorder channel.
func DrainEvents(events chan string) []string {
	var out []string
	for {
		select {
		case ev := <-events:
			out = append(out, ev)
		default:
			return out
		}
	}
}
