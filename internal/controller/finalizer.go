// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

import (
	"context"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/util/retry"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// EnsureFinalizer adds finalizer to obj, re-reading it on update conflicts.
// It returns true when the object was updated.
func EnsureFinalizer(ctx context.Context, c client.Client, obj client.Object, finalizer string) (bool, error) {
	if controllerutil.ContainsFinalizer(obj, finalizer) {
		return false, nil
	}
	return mutateFinalizers(ctx, c, obj, func() bool {
		return controllerutil.AddFinalizer(obj, finalizer)
	})
}

// RemoveFinalizer removes finalizer from obj, re-reading it on update conflicts.
// An object that disappeared meanwhile is not an error.
func RemoveFinalizer(ctx context.Context, c client.Client, obj client.Object, finalizer string) (bool, error) {
	if !controllerutil.ContainsFinalizer(obj, finalizer) {
		return false, nil
	}
	updated, err := mutateFinalizers(ctx, c, obj, func() bool {
		return controllerutil.RemoveFinalizer(obj, finalizer)
	})
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	return updated, err
}

func mutateFinalizers(ctx context.Context, c client.Client, obj client.Object, mutate func() bool) (bool, error) {
	updated := false
	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		if !mutate() {
			return nil
		}
		err := c.Update(ctx, obj)
		if apierrors.IsConflict(err) {
			if getErr := c.Get(ctx, client.ObjectKeyFromObject(obj), obj); getErr != nil {
				return getErr
			}
		}
		if err == nil {
			updated = true
		}
		return err
	})
	return updated, err
}

// IsBeingDeleted reports whether obj carries a deletion timestamp.
func IsBeingDeleted(obj client.Object) bool {
	return !obj.GetDeletionTimestamp().IsZero()
}
