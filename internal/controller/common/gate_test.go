// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
)

func testScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	s := runtime.NewScheme()
	require.NoError(t, clientgoscheme.AddToScheme(s))
	require.NoError(t, v1alpha1.AddToScheme(s))
	return s
}

func account(name string, ready bool) *v1alpha1.Account {
	return &v1alpha1.Account{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
		Spec:       v1alpha1.AccountSpec{ID: "acc-" + name},
		Status:     v1alpha1.AccountStatus{Ready: ready, AccountID: "acc-" + name},
	}
}

func TestDependencyGate_Check(t *testing.T) {
	tests := []struct {
		name        string
		objects     []client.Object
		wantKind    controller.ErrorKind
		wantMessage string
		wantRequeue time.Duration
	}{
		{
			name:     "ready parent passes",
			objects:  []client.Object{account("main", true)},
			wantKind: controller.None,
		},
		{
			name:        "missing parent",
			wantKind:    controller.ReferenceNotFound,
			wantMessage: "dependency account/main not found",
			wantRequeue: 30 * time.Second,
		},
		{
			name:        "parent not ready",
			objects:     []client.Object{account("main", false)},
			wantKind:    controller.DependencyNotReady,
			wantMessage: "dependency account/main is not ready",
			wantRequeue: 60 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fake.NewClientBuilder().WithScheme(testScheme(t)).WithObjects(tt.objects...).Build()
			gate := NewDependencyGate(c)

			parent := &v1alpha1.Account{}
			err := gate.Check(context.Background(), "account", types.NamespacedName{Namespace: "default", Name: "main"}, parent)

			assert.Equal(t, tt.wantKind, controller.KindOf(err))
			if tt.wantKind == controller.None {
				require.NoError(t, err)
				assert.Equal(t, "acc-main", parent.ExternalID())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.Equal(t, tt.wantRequeue, RequeueFor(err))
		})
	}
}

func TestDependencyGate_PlatformFailure(t *testing.T) {
	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithInterceptorFuncs(interceptor.Funcs{
			Get: func(context.Context, client.WithWatch, client.ObjectKey, client.Object, ...client.GetOption) error {
				return errors.New("connection refused")
			},
		}).
		Build()

	err := NewDependencyGate(c).Check(context.Background(), "zone", types.NamespacedName{Namespace: "default", Name: "z"}, &v1alpha1.Zone{})
	assert.True(t, controller.IsPlatform(err))
}

func TestDependencyGate_CustomIntervals(t *testing.T) {
	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()
	gate := &DependencyGate{Client: c, NotFoundRequeue: time.Second, NotReadyRequeue: 2 * time.Second}

	err := gate.Check(context.Background(), "zone", types.NamespacedName{Namespace: "default", Name: "z"}, &v1alpha1.Zone{})
	assert.Equal(t, time.Second, RequeueFor(err))
}

func TestDependencyGate_ZoneID(t *testing.T) {
	readyZone := &v1alpha1.Zone{
		ObjectMeta: metav1.ObjectMeta{Name: "example", Namespace: "default"},
		Status:     v1alpha1.ZoneStatus{Ready: true, ID: "zone-1"},
	}
	pendingZone := &v1alpha1.Zone{
		ObjectMeta: metav1.ObjectMeta{Name: "pending", Namespace: "default"},
	}
	c := fake.NewClientBuilder().WithScheme(testScheme(t)).WithObjects(readyZone, pendingZone).Build()
	gate := NewDependencyGate(c)

	tests := []struct {
		name      string
		ref       *v1alpha1.ObjectReference
		zoneID    string
		want      string
		wantKind  controller.ErrorKind
		wantAfter time.Duration
	}{
		{name: "reference", ref: &v1alpha1.ObjectReference{Name: "example"}, want: "zone-1"},
		{name: "reference wins over id", ref: &v1alpha1.ObjectReference{Name: "example"}, zoneID: "other", want: "zone-1"},
		{name: "literal id", zoneID: "zone-2", want: "zone-2"},
		{name: "empty reference name", ref: &v1alpha1.ObjectReference{}, zoneID: "zone-2", want: "zone-2"},
		{name: "neither", wantKind: controller.ConfigurationInvalid, wantAfter: RequeuePermanent},
		{name: "missing zone", ref: &v1alpha1.ObjectReference{Name: "absent"}, wantKind: controller.ReferenceNotFound, wantAfter: 30 * time.Second},
		{name: "zone not ready", ref: &v1alpha1.ObjectReference{Name: "pending"}, wantKind: controller.DependencyNotReady, wantAfter: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gate.ZoneID(context.Background(), "default", tt.ref, tt.zoneID)
			assert.Equal(t, tt.want, got)
			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantKind, controller.KindOf(err))
				assert.Equal(t, tt.wantAfter, RequeueFor(err))
			}
		})
	}
}

var (
	_ Dependency = (*v1alpha1.Zone)(nil)
	_ Dependency = (*v1alpha1.Account)(nil)
)
