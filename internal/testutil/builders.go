// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package testutil

import (
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
)

func objectMeta(kind, name, namespace string) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:       name,
		Namespace:  namespace,
		UID:        types.UID(fmt.Sprintf("%s-%s-%d", kind, name, time.Now().UnixNano())),
		Generation: 1,
	}
}

func deletionNow() *metav1.Time {
	now := metav1.Now()
	return &now
}

// AccountBuilder builds Account resources for testing.
type AccountBuilder struct {
	account *v1alpha1.Account
}

// NewAccountBuilder creates a new AccountBuilder.
func NewAccountBuilder(name, namespace string) *AccountBuilder {
	return &AccountBuilder{
		account: &v1alpha1.Account{
			ObjectMeta: objectMeta("account", name, namespace),
		},
	}
}

// WithID sets the Cloudflare account id.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.account.Spec.ID = id
	return b
}

// WithName sets the Cloudflare account name used for lookup.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.account.Spec.Name = name
	return b
}

// WithSecretRef sets the token secret reference.
func (b *AccountBuilder) WithSecretRef(name, key string) *AccountBuilder {
	b.account.Spec.SecretRef = &v1alpha1.SecretKeyReference{Name: name, Key: key}
	return b
}

// Ready marks the account as resolved to id.
func (b *AccountBuilder) Ready(id string) *AccountBuilder {
	b.account.Status.Ready = true
	b.account.Status.AccountID = id
	return b
}

// WithFinalizer adds a finalizer.
func (b *AccountBuilder) WithFinalizer(name string) *AccountBuilder {
	b.account.Finalizers = append(b.account.Finalizers, name)
	return b
}

// WithDeletionTimestamp marks the resource for deletion.
func (b *AccountBuilder) WithDeletionTimestamp() *AccountBuilder {
	b.account.DeletionTimestamp = deletionNow()
	return b
}

// Build returns the constructed Account.
func (b *AccountBuilder) Build() *v1alpha1.Account {
	return b.account.DeepCopy()
}

// ZoneBuilder builds Zone resources for testing.
type ZoneBuilder struct {
	zone *v1alpha1.Zone
}

// NewZoneBuilder creates a new ZoneBuilder.
func NewZoneBuilder(name, namespace string) *ZoneBuilder {
	return &ZoneBuilder{
		zone: &v1alpha1.Zone{
			ObjectMeta: objectMeta("zone", name, namespace),
		},
	}
}

// WithDomain sets spec.name.
func (b *ZoneBuilder) WithDomain(domain string) *ZoneBuilder {
	b.zone.Spec.Name = domain
	return b
}

// WithAccountRef references an Account in the same namespace.
func (b *ZoneBuilder) WithAccountRef(name string) *ZoneBuilder {
	b.zone.Spec.AccountRef = &v1alpha1.ObjectReference{Name: name}
	return b
}

// WithAccountID sets spec.accountId.
func (b *ZoneBuilder) WithAccountID(id string) *ZoneBuilder {
	b.zone.Spec.AccountID = id
	return b
}

// WithSecretRef sets the token secret reference.
func (b *ZoneBuilder) WithSecretRef(name, key string) *ZoneBuilder {
	b.zone.Spec.SecretRef = &v1alpha1.SecretKeyReference{Name: name, Key: key}
	return b
}

// WithType sets the zone type.
func (b *ZoneBuilder) WithType(zoneType v1alpha1.ZoneType) *ZoneBuilder {
	b.zone.Spec.Type = zoneType
	return b
}

// Ready marks the zone as existing on Cloudflare under id.
func (b *ZoneBuilder) Ready(id string) *ZoneBuilder {
	b.zone.Status.Ready = true
	b.zone.Status.ID = id
	b.zone.Status.State = "active"
	return b
}

// WithStatusID sets status.id without marking the zone ready.
func (b *ZoneBuilder) WithStatusID(id string) *ZoneBuilder {
	b.zone.Status.ID = id
	return b
}

// WithFinalizer adds a finalizer.
func (b *ZoneBuilder) WithFinalizer(name string) *ZoneBuilder {
	b.zone.Finalizers = append(b.zone.Finalizers, name)
	return b
}

// WithDeletionTimestamp marks the resource for deletion.
func (b *ZoneBuilder) WithDeletionTimestamp() *ZoneBuilder {
	b.zone.DeletionTimestamp = deletionNow()
	return b
}

// Build returns the constructed Zone.
func (b *ZoneBuilder) Build() *v1alpha1.Zone {
	return b.zone.DeepCopy()
}

// DNSRecordBuilder builds DNSRecord resources for testing.
type DNSRecordBuilder struct {
	record *v1alpha1.DNSRecord
}

// NewDNSRecordBuilder creates a new DNSRecordBuilder for an A record.
func NewDNSRecordBuilder(name, namespace string) *DNSRecordBuilder {
	return &DNSRecordBuilder{
		record: &v1alpha1.DNSRecord{
			ObjectMeta: objectMeta("dnsrecord", name, namespace),
			Spec: v1alpha1.DNSRecordSpec{
				Name:    "www.example.com",
				Type:    v1alpha1.RecordTypeA,
				Content: "10.0.0.1",
			},
		},
	}
}

// WithZoneRef references a Zone in the same namespace.
func (b *DNSRecordBuilder) WithZoneRef(name string) *DNSRecordBuilder {
	b.record.Spec.ZoneRef = &v1alpha1.ObjectReference{Name: name}
	return b
}

// WithZoneID sets spec.zoneId.
func (b *DNSRecordBuilder) WithZoneID(id string) *DNSRecordBuilder {
	b.record.Spec.ZoneID = id
	return b
}

// WithSecretRef sets the token secret reference.
func (b *DNSRecordBuilder) WithSecretRef(name, key string) *DNSRecordBuilder {
	b.record.Spec.SecretRef = &v1alpha1.SecretKeyReference{Name: name, Key: key}
	return b
}

// WithType sets the record type.
func (b *DNSRecordBuilder) WithType(recordType string) *DNSRecordBuilder {
	b.record.Spec.Type = recordType
	return b
}

// WithName sets the record name.
func (b *DNSRecordBuilder) WithName(name string) *DNSRecordBuilder {
	b.record.Spec.Name = name
	return b
}

// WithContent sets the record content.
func (b *DNSRecordBuilder) WithContent(content string) *DNSRecordBuilder {
	b.record.Spec.Content = content
	return b
}

// WithTTL sets the record TTL.
func (b *DNSRecordBuilder) WithTTL(ttl int32) *DNSRecordBuilder {
	b.record.Spec.TTL = ptr.To(ttl)
	return b
}

// WithPriority sets the MX priority.
func (b *DNSRecordBuilder) WithPriority(priority int32) *DNSRecordBuilder {
	b.record.Spec.Priority = ptr.To(priority)
	return b
}

// WithProxied sets whether the record is proxied.
func (b *DNSRecordBuilder) WithProxied(proxied bool) *DNSRecordBuilder {
	b.record.Spec.Proxied = ptr.To(proxied)
	return b
}

// WithRecordID sets status.recordId and status.zoneId.
func (b *DNSRecordBuilder) WithRecordID(zoneID, recordID string) *DNSRecordBuilder {
	b.record.Status.ZoneID = zoneID
	b.record.Status.RecordID = recordID
	return b
}

// WithFinalizer adds a finalizer.
func (b *DNSRecordBuilder) WithFinalizer(name string) *DNSRecordBuilder {
	b.record.Finalizers = append(b.record.Finalizers, name)
	return b
}

// WithDeletionTimestamp marks the resource for deletion.
func (b *DNSRecordBuilder) WithDeletionTimestamp() *DNSRecordBuilder {
	b.record.DeletionTimestamp = deletionNow()
	return b
}

// Build returns the constructed DNSRecord.
func (b *DNSRecordBuilder) Build() *v1alpha1.DNSRecord {
	return b.record.DeepCopy()
}

// PageRuleBuilder builds PageRule resources for testing.
type PageRuleBuilder struct {
	rule *v1alpha1.PageRule
}

// NewPageRuleBuilder creates a PageRule forwarding one URL pattern.
func NewPageRuleBuilder(name, namespace string) *PageRuleBuilder {
	return &PageRuleBuilder{
		rule: &v1alpha1.PageRule{
			ObjectMeta: objectMeta("pagerule", name, namespace),
			Spec: v1alpha1.PageRuleSpec{
				Targets: []v1alpha1.PageRuleTarget{{
					Target: "url",
					Constraint: v1alpha1.PageRuleConstraint{
						Operator: v1alpha1.PageRuleOperatorMatches,
						Value:    "example.com/old/*",
					},
				}},
				Priority: 1,
				Status:   v1alpha1.PageRuleActive,
			},
		},
	}
}

// WithZoneRef references a Zone in the same namespace.
func (b *PageRuleBuilder) WithZoneRef(name string) *PageRuleBuilder {
	b.rule.Spec.ZoneRef = &v1alpha1.ObjectReference{Name: name}
	return b
}

// WithZoneID sets spec.zoneId.
func (b *PageRuleBuilder) WithZoneID(id string) *PageRuleBuilder {
	b.rule.Spec.ZoneID = id
	return b
}

// WithAction appends an action whose value is the given raw JSON.
func (b *PageRuleBuilder) WithAction(id, rawJSON string) *PageRuleBuilder {
	action := v1alpha1.PageRuleAction{ID: id}
	if rawJSON != "" {
		action.Value = &runtime.RawExtension{Raw: []byte(rawJSON)}
	}
	b.rule.Spec.Actions = append(b.rule.Spec.Actions, action)
	return b
}

// WithTarget replaces the targets with a single url constraint.
func (b *PageRuleBuilder) WithTarget(operator v1alpha1.PageRuleOperator, value string) *PageRuleBuilder {
	b.rule.Spec.Targets = []v1alpha1.PageRuleTarget{{
		Target:     "url",
		Constraint: v1alpha1.PageRuleConstraint{Operator: operator, Value: value},
	}}
	return b
}

// WithRuleID sets status.ruleId and status.zoneId.
func (b *PageRuleBuilder) WithRuleID(zoneID, ruleID string) *PageRuleBuilder {
	b.rule.Status.ZoneID = zoneID
	b.rule.Status.RuleID = ruleID
	return b
}

// WithFinalizer adds a finalizer.
func (b *PageRuleBuilder) WithFinalizer(name string) *PageRuleBuilder {
	b.rule.Finalizers = append(b.rule.Finalizers, name)
	return b
}

// WithDeletionTimestamp marks the resource for deletion.
func (b *PageRuleBuilder) WithDeletionTimestamp() *PageRuleBuilder {
	b.rule.DeletionTimestamp = deletionNow()
	return b
}

// Build returns the constructed PageRule.
func (b *PageRuleBuilder) Build() *v1alpha1.PageRule {
	return b.rule.DeepCopy()
}

// SecretBuilder builds Secret resources for testing.
type SecretBuilder struct {
	secret *corev1.Secret
}

// NewSecretBuilder creates a new SecretBuilder.
func NewSecretBuilder(name, namespace string) *SecretBuilder {
	return &SecretBuilder{
		secret: &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{
				Name:      name,
				Namespace: namespace,
			},
			Type: corev1.SecretTypeOpaque,
			Data: make(map[string][]byte),
		},
	}
}

// WithData adds raw data to the secret.
func (b *SecretBuilder) WithData(key string, value []byte) *SecretBuilder {
	b.secret.Data[key] = value
	return b
}

// WithToken stores an API token under key.
func (b *SecretBuilder) WithToken(key, token string) *SecretBuilder {
	b.secret.Data[key] = []byte(token)
	return b
}

// Build returns the constructed Secret.
func (b *SecretBuilder) Build() *corev1.Secret {
	return b.secret.DeepCopy()
}
