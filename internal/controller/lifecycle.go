// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

import (
	"context"
	"fmt"
	"time"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/StringKe/cloudflare-zone-operator/internal/monitoring"
)

// Phase is the lifecycle transition a reconcile performs.
type Phase int

const (
	// PhaseApply drives a live object toward its spec.
	PhaseApply Phase = iota
	// PhaseCleanup runs for a deleted object that still carries the finalizer.
	PhaseCleanup
)

func (p Phase) String() string {
	if p == PhaseCleanup {
		return "Cleanup"
	}
	return "Apply"
}

// PhaseOf decides the phase of obj. ok is false for a deleted object without
// the finalizer, which needs no work.
func PhaseOf(obj client.Object, finalizer string) (phase Phase, ok bool) {
	if !IsBeingDeleted(obj) {
		return PhaseApply, true
	}
	if controllerutil.ContainsFinalizer(obj, finalizer) {
		return PhaseCleanup, true
	}
	return PhaseCleanup, false
}

// Outcome is the result of an apply pass that reached the status write.
type Outcome struct {
	RequeueAfter time.Duration
	// Err is the failure written to status, nil on success.
	Err error
}

// ApplyFunc performs the apply phase of one kind. A returned error is a
// platform failure that could not be written to status.
type ApplyFunc func(ctx context.Context) (Outcome, error)

// Lifecycle runs the finalizer protocol shared by all kinds.
type Lifecycle struct {
	Client    client.Client
	Kind      string
	Finalizer string
	Notifier  *DeletionNotifier
}

// Run reconciles obj once. It reports the reconcile to monitoring and returns
// platform failures to controller-runtime for its rate-limited backoff.
func (l *Lifecycle) Run(ctx context.Context, obj client.Object, apply ApplyFunc) (ctrl.Result, error) {
	start := time.Now()
	ctx, span := monitoring.StartReconcileSpan(ctx, l.Kind, obj.GetNamespace(), obj.GetName())
	defer span.End()
	monitoring.RecordLastReconcile(l.Kind)

	result, failure, err := l.dispatch(ctx, obj, apply)
	if err != nil {
		failure = err
	}
	monitoring.RecordSpanError(span, failure)
	monitoring.RecordReconcileResult(l.Kind, string(KindOf(failure)), time.Since(start))
	return result, err
}

// dispatch returns the failure recorded in status separately from a platform error.
func (l *Lifecycle) dispatch(ctx context.Context, obj client.Object, apply ApplyFunc) (_ ctrl.Result, failure, err error) {
	phase, ok := PhaseOf(obj, l.Finalizer)
	if !ok {
		return ctrl.Result{}, nil, nil
	}
	logger := log.FromContext(ctx).WithValues("phase", phase.String())

	if phase == PhaseCleanup {
		if err := l.cleanup(ctx, obj); err != nil {
			logger.Error(err, "Cleanup failed, finalizer kept")
			return ctrl.Result{}, nil, err
		}
		logger.Info("Finalizer removed")
		return ctrl.Result{}, nil, nil
	}

	if added, err := EnsureFinalizer(ctx, l.Client, obj, l.Finalizer); err != nil {
		return ctrl.Result{}, nil, Platform(fmt.Errorf("failed to add finalizer: %w", err))
	} else if added {
		logger.V(1).Info("Finalizer added", "finalizer", l.Finalizer)
	}

	out, err := apply(ctx)
	if err != nil {
		logger.Error(err, "Apply failed on the Kubernetes API")
		return ctrl.Result{}, nil, err
	}
	return ctrl.Result{RequeueAfter: out.RequeueAfter}, out.Err, nil
}

func (l *Lifecycle) cleanup(ctx context.Context, obj client.Object) error {
	if err := l.Notifier.DeleteRequested(ctx, obj); err != nil {
		return err
	}
	if _, err := RemoveFinalizer(ctx, l.Client, obj, l.Finalizer); err != nil {
		return Platform(fmt.Errorf("failed to remove finalizer: %w", err))
	}
	return nil
}
