// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
)

// DeletionNotifier publishes the DeleteRequested event of an object that is
// being deleted. The event is created synchronously so that a failure can hold
// back the finalizer.
type DeletionNotifier struct {
	client   client.Client
	instance string
}

// NewDeletionNotifier creates a notifier reporting as instance, usually the pod name.
func NewDeletionNotifier(c client.Client, instance string) *DeletionNotifier {
	return &DeletionNotifier{client: c, instance: instance}
}

// DeleteRequested creates the event for obj.
func (n *DeletionNotifier) DeleteRequested(ctx context.Context, obj client.Object) error {
	gvk, err := apiutil.GVKForObject(obj, n.client.Scheme())
	if err != nil {
		return fmt.Errorf("failed to resolve kind of %s: %w", obj.GetName(), err)
	}

	now := time.Now()
	event := &corev1.Event{
		ObjectMeta: metav1.ObjectMeta{
			Name:      fmt.Sprintf("%v.%x", obj.GetName(), now.UnixNano()),
			Namespace: obj.GetNamespace(),
		},
		InvolvedObject: corev1.ObjectReference{
			APIVersion:      gvk.GroupVersion().String(),
			Kind:            gvk.Kind,
			Name:            obj.GetName(),
			Namespace:       obj.GetNamespace(),
			UID:             obj.GetUID(),
			ResourceVersion: obj.GetResourceVersion(),
		},
		Reason:              EventReasonDeleteRequested,
		Message:             fmt.Sprintf("Delete `%s`", obj.GetName()),
		Type:                corev1.EventTypeNormal,
		Action:              EventActionDeleting,
		Source:              corev1.EventSource{Component: ReportingController},
		FirstTimestamp:      metav1.NewTime(now),
		LastTimestamp:       metav1.NewTime(now),
		Count:               1,
		ReportingController: ReportingController,
		ReportingInstance:   n.instance,
	}

	if err := n.client.Create(ctx, event); err != nil {
		return Platform(fmt.Errorf("failed to publish %s event: %w", EventReasonDeleteRequested, err))
	}
	return nil
}

// RecordSynced emits a Normal event for a successful reconcile.
func RecordSynced(recorder record.EventRecorder, obj runtime.Object, message string) {
	recorder.Event(obj, corev1.EventTypeNormal, EventReasonSynced, message)
}

// RecordAdopted emits a Normal event when an existing Cloudflare object was taken over.
func RecordAdopted(recorder record.EventRecorder, obj runtime.Object, message string) {
	recorder.Event(obj, corev1.EventTypeNormal, EventReasonAdopted, message)
}

// RecordFailure emits a Warning event carrying the status message of err.
func RecordFailure(recorder record.EventRecorder, obj runtime.Object, err error) {
	recorder.Eventf(obj, corev1.EventTypeWarning, EventReasonReconcileFailed, "%s: %s", KindOf(err), StatusMessage(err))
}

// RecordOutcome emits an event when an apply changes what status reports:
// Synced when a not-ready object becomes ready, ReconcileFailed when the
// error message differs from the previous one.
func RecordOutcome(recorder record.EventRecorder, obj runtime.Object, wasReady bool, prevError string, err error, message string) {
	if err == nil {
		if !wasReady {
			RecordSynced(recorder, obj, message)
		}
		return
	}
	if StatusMessage(err) != prevError {
		RecordFailure(recorder, obj, err)
	}
}
