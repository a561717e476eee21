// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

func TestCredentialReferencePrecedence(t *testing.T) {
	secret := &SecretKeyReference{Name: "cf", Key: "token"}

	tests := []struct {
		name     string
		obj      CredentialReferrer
		wantKind ReferenceKind
		wantName string
	}{
		{
			name:     "account with secret",
			obj:      &Account{Spec: AccountSpec{SecretRef: secret}},
			wantKind: SecretRef,
		},
		{
			name:     "account without secret",
			obj:      &Account{},
			wantKind: NoRef,
		},
		{
			name:     "zone secret wins over account",
			obj:      &Zone{Spec: ZoneSpec{SecretRef: secret, AccountRef: &ObjectReference{Name: "main"}}},
			wantKind: SecretRef,
		},
		{
			name:     "zone inherits account",
			obj:      &Zone{Spec: ZoneSpec{AccountRef: &ObjectReference{Name: "main"}}},
			wantKind: AccountRef,
			wantName: "main",
		},
		{
			name:     "zone with account id only",
			obj:      &Zone{Spec: ZoneSpec{AccountID: "abc"}},
			wantKind: NoRef,
		},
		{
			name:     "record inherits zone",
			obj:      &DNSRecord{Spec: DNSRecordSpec{ZoneRef: &ObjectReference{Name: "example-com"}}},
			wantKind: ZoneRef,
			wantName: "example-com",
		},
		{
			name:     "record with empty zone ref name",
			obj:      &DNSRecord{Spec: DNSRecordSpec{ZoneRef: &ObjectReference{}}},
			wantKind: NoRef,
		},
		{
			name:     "page rule secret wins over zone",
			obj:      &PageRule{Spec: PageRuleSpec{SecretRef: secret, ZoneRef: &ObjectReference{Name: "z"}}},
			wantKind: SecretRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := tt.obj.CredentialReference()
			assert.Equal(t, tt.wantKind, ref.Kind)
			assert.Equal(t, tt.wantName, ref.Name)
			if tt.wantKind == SecretRef {
				assert.Equal(t, secret, ref.Secret)
			} else {
				assert.Nil(t, ref.Secret)
			}
		})
	}
}

func TestReferenceKindString(t *testing.T) {
	assert.Equal(t, "none", NoRef.String())
	assert.Equal(t, "secret", SecretRef.String())
	assert.Equal(t, "zone", ZoneRef.String())
	assert.Equal(t, "account", AccountRef.String())
	assert.Equal(t, "cf-token#api", SecretKeyReference{Name: "cf-token", Key: "api"}.String())
}

func TestZoneDomainName(t *testing.T) {
	z := &Zone{ObjectMeta: metav1.ObjectMeta{Name: "example-com"}}
	assert.Equal(t, "example-com", z.DomainName())

	z.Spec.Name = "example.com"
	assert.Equal(t, "example.com", z.DomainName())
}

func TestAccountExternalID(t *testing.T) {
	a := &Account{Spec: AccountSpec{ID: "spec-id"}}
	assert.Equal(t, "spec-id", a.ExternalID())

	a.Status.AccountID = "resolved-id"
	assert.Equal(t, "resolved-id", a.ExternalID())
}

func TestDeepCopyIsIndependent(t *testing.T) {
	rec := &DNSRecord{
		ObjectMeta: metav1.ObjectMeta{Name: "www"},
		Spec: DNSRecordSpec{
			ZoneRef:  &ObjectReference{Name: "zone"},
			Name:     "www",
			Type:     RecordTypeA,
			Content:  "10.0.0.1",
			TTL:      ptr.To[int32](300),
			Proxied:  ptr.To(true),
			Priority: ptr.To[int32](5),
		},
		Status: DNSRecordStatus{Conditions: []metav1.Condition{{Type: "Ready"}}},
	}

	cp := rec.DeepCopy()
	*cp.Spec.TTL = 60
	cp.Spec.ZoneRef.Name = "other"
	cp.Status.Conditions[0].Type = "Changed"

	assert.Equal(t, int32(300), *rec.Spec.TTL)
	assert.Equal(t, "zone", rec.Spec.ZoneRef.Name)
	assert.Equal(t, "Ready", rec.Status.Conditions[0].Type)

	zone := &Zone{Status: ZoneStatus{NameServers: []string{"a.ns"}}}
	zcp := zone.DeepCopy()
	zcp.Status.NameServers[0] = "b.ns"
	assert.Equal(t, "a.ns", zone.Status.NameServers[0])
}
