// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
)

func TestEnsureFinalizer(t *testing.T) {
	zone := testZone("example")
	c := newFakeClient(t, nil, zone)

	added, err := EnsureFinalizer(context.Background(), c, zone, FinalizerZone)
	require.NoError(t, err)
	assert.True(t, added)

	got := &v1alpha1.Zone{}
	require.NoError(t, c.Get(context.Background(), client.ObjectKeyFromObject(zone), got))
	assert.Equal(t, []string{FinalizerZone}, got.Finalizers)

	added, err = EnsureFinalizer(context.Background(), c, got, FinalizerZone)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestEnsureFinalizer_RetriesConflict(t *testing.T) {
	zone := testZone("example")
	conflicts := 1
	c := newFakeClient(t, &interceptor.Funcs{
		Update: func(ctx context.Context, cl client.WithWatch, obj client.Object, opts ...client.UpdateOption) error {
			if conflicts > 0 {
				conflicts--
				return apierrors.NewConflict(schema.GroupResource{Resource: "zones"}, obj.GetName(), errors.New("stale"))
			}
			return cl.Update(ctx, obj, opts...)
		},
	}, zone)

	added, err := EnsureFinalizer(context.Background(), c, zone, FinalizerZone)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Zero(t, conflicts)
}

func TestRemoveFinalizer(t *testing.T) {
	zone := testZone("example", FinalizerZone, "other.example.com")
	c := newFakeClient(t, nil, zone)

	removed, err := RemoveFinalizer(context.Background(), c, zone, FinalizerZone)
	require.NoError(t, err)
	assert.True(t, removed)

	got := &v1alpha1.Zone{}
	require.NoError(t, c.Get(context.Background(), client.ObjectKeyFromObject(zone), got))
	assert.Equal(t, []string{"other.example.com"}, got.Finalizers)

	removed, err = RemoveFinalizer(context.Background(), c, got, FinalizerZone)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestIsBeingDeleted(t *testing.T) {
	zone := testZone("example")
	assert.False(t, IsBeingDeleted(zone))

	now := metav1.Now()
	zone.DeletionTimestamp = &now
	assert.True(t, IsBeingDeleted(zone))
}
