// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
	"github.com/StringKe/cloudflare-zone-operator/internal/credentials"
)

func TestAPIClientFactory_GetClient(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "cf", Namespace: "default"},
		Data:       map[string][]byte{"token": []byte("account-token")},
	}
	acc := &v1alpha1.Account{
		ObjectMeta: metav1.ObjectMeta{Name: "main", Namespace: "default"},
		Spec: v1alpha1.AccountSpec{
			ID:        "acc-1",
			SecretRef: &v1alpha1.SecretKeyReference{Name: "cf", Key: "token"},
		},
	}
	zoneA := &v1alpha1.Zone{
		ObjectMeta: metav1.ObjectMeta{Name: "a", Namespace: "default"},
		Spec:       v1alpha1.ZoneSpec{AccountRef: &v1alpha1.ObjectReference{Name: "main"}},
	}
	zoneB := &v1alpha1.Zone{
		ObjectMeta: metav1.ObjectMeta{Name: "b", Namespace: "default"},
		Spec:       v1alpha1.ZoneSpec{AccountRef: &v1alpha1.ObjectReference{Name: "main"}},
	}
	c := fake.NewClientBuilder().WithScheme(testScheme(t)).WithObjects(secret, acc, zoneA, zoneB).Build()

	cache := NewClientCache(cf.NewDefaultClientFactory(), logr.Discard(), "")
	factory := NewAPIClientFactory(credentials.NewResolver(c, "default-token"), cache)

	ra, err := factory.GetClient(context.Background(), zoneA, "default")
	require.NoError(t, err)
	rb, err := factory.GetClient(context.Background(), zoneB, "default")
	require.NoError(t, err)
	racc, err := factory.GetClient(context.Background(), acc, "default")
	require.NoError(t, err)

	assert.Equal(t, "secret/default/cf#token", ra.TokenSource)
	assert.Same(t, ra.API, rb.API)
	assert.Same(t, ra.API, racc.API)
	assert.Equal(t, 1, cache.Len())

	lonely := &v1alpha1.Zone{ObjectMeta: metav1.ObjectMeta{Name: "c", Namespace: "default"}}
	rd, err := factory.GetClient(context.Background(), lonely, "default")
	require.NoError(t, err)
	assert.Equal(t, credentials.SourceDefault, rd.TokenSource)
	assert.NotSame(t, ra.API, rd.API)
	assert.Equal(t, 2, cache.Len())
}

func TestAPIClientFactory_Errors(t *testing.T) {
	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()
	cache := NewClientCache(cf.NewDefaultClientFactory(), logr.Discard(), "")
	factory := NewAPIClientFactory(credentials.NewResolver(c, ""), cache)

	record := &v1alpha1.DNSRecord{
		ObjectMeta: metav1.ObjectMeta{Name: "www", Namespace: "default"},
		Spec:       v1alpha1.DNSRecordSpec{ZoneRef: &v1alpha1.ObjectReference{Name: "missing"}},
	}
	_, err := factory.GetClient(context.Background(), record, "default")
	assert.Equal(t, controller.ReferenceNotFound, controller.KindOf(err))

	_, err = factory.GetClient(context.Background(), &v1alpha1.Account{}, "default")
	assert.Equal(t, controller.ClientConstructionFailure, controller.KindOf(err))
	assert.Zero(t, cache.Len())
}
