// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
)

// PatchMeta returns the identity of obj for an apply patch.
func PatchMeta(obj client.Object) metav1.ObjectMeta {
	return metav1.ObjectMeta{Name: obj.GetName(), Namespace: obj.GetNamespace()}
}

// ApplyStatus server-side applies the status of patch, which must carry the
// full status of the object. Fields owned by other managers are taken over.
func ApplyStatus(ctx context.Context, c client.Client, patch client.Object) error {
	gvk, err := apiutil.GVKForObject(patch, c.Scheme())
	if err != nil {
		return Platform(fmt.Errorf("failed to resolve kind for status patch: %w", err))
	}
	patch.GetObjectKind().SetGroupVersionKind(gvk)

	if err := c.Status().Patch(ctx, patch, client.Apply, client.FieldOwner(FieldManager), client.ForceOwnership); err != nil {
		return Platform(fmt.Errorf("failed to apply status: %w", err))
	}
	return nil
}

// SetReadyCondition records the outcome of a reconcile pass on conditions.
// A nil err marks the object ready.
func SetReadyCondition(conditions *[]metav1.Condition, generation int64, err error) {
	cond := metav1.Condition{
		Type:               ConditionReady,
		Status:             metav1.ConditionTrue,
		ObservedGeneration: generation,
		Reason:             ReasonReconciled,
		Message:            "Reconciled with Cloudflare",
	}
	if err != nil {
		cond.Status = metav1.ConditionFalse
		cond.Reason = string(KindOf(err))
		cond.Message = StatusMessage(err)
	}
	meta.SetStatusCondition(conditions, cond)
}

// CopyConditions returns a copy of conditions that can be modified freely.
func CopyConditions(conditions []metav1.Condition) []metav1.Condition {
	if conditions == nil {
		return nil
	}
	out := make([]metav1.Condition, len(conditions))
	for i := range conditions {
		conditions[i].DeepCopyInto(&out[i])
	}
	return out
}
