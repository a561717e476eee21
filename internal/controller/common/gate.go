// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"context"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
)

// Dependency is a parent object whose readiness gates its children.
type Dependency interface {
	client.Object
	IsReady() bool
}

// DependencyGate holds a child back until its parent exists and is ready.
type DependencyGate struct {
	Client          client.Reader
	NotFoundRequeue time.Duration
	NotReadyRequeue time.Duration
}

// NewDependencyGate creates a gate with the default intervals.
func NewDependencyGate(c client.Reader) *DependencyGate {
	return &DependencyGate{
		Client:          c,
		NotFoundRequeue: RequeueNotFound,
		NotReadyRequeue: RequeueNotReady,
	}
}

// Check loads key into parent. kind names the parent in messages, for example
// "account". On success parent holds the loaded object.
func (g *DependencyGate) Check(ctx context.Context, kind string, key types.NamespacedName, parent Dependency) error {
	if err := g.Client.Get(ctx, key, parent); err != nil {
		if apierrors.IsNotFound(err) {
			e := controller.Errorf(controller.ReferenceNotFound, "dependency %s/%s not found", kind, key.Name)
			e.RequeueAfter = g.NotFoundRequeue
			return e
		}
		return controller.Platform(err)
	}

	if !parent.IsReady() {
		e := controller.Errorf(controller.DependencyNotReady, "dependency %s/%s is not ready", kind, key.Name)
		e.RequeueAfter = g.NotReadyRequeue
		return e
	}
	return nil
}

// ZoneID gates on a Zone reference and returns the Cloudflare id of the
// referenced Zone. Without a reference it returns zoneID.
func (g *DependencyGate) ZoneID(ctx context.Context, namespace string, ref *v1alpha1.ObjectReference, zoneID string) (string, error) {
	if ref == nil || ref.Name == "" {
		if zoneID == "" {
			return "", controller.Errorf(controller.ConfigurationInvalid, "one of spec.zoneRef or spec.zoneId is required")
		}
		return zoneID, nil
	}

	zone := &v1alpha1.Zone{}
	if err := g.Check(ctx, controller.KindZone, types.NamespacedName{Namespace: namespace, Name: ref.Name}, zone); err != nil {
		return "", err
	}
	if zone.Status.ID == "" {
		e := controller.Errorf(controller.DependencyNotReady, "dependency zone/%s has no zone id", ref.Name)
		e.RequeueAfter = g.NotReadyRequeue
		return "", e
	}
	return zone.Status.ID, nil
}
