// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Supported DNS record types.
const (
	RecordTypeA     = "A"
	RecordTypeAAAA  = "AAAA"
	RecordTypeCNAME = "CNAME"
	RecordTypeMX    = "MX"
	RecordTypeTXT   = "TXT"
)

// DefaultMXPriority is used for MX records without an explicit priority.
const DefaultMXPriority = 10

// DNSRecordSpec defines the desired state of DNSRecord
type DNSRecordSpec struct {
	// ZoneRef names the Zone the record belongs to. The Zone must be ready.
	// +kubebuilder:validation:Optional
	ZoneRef *ObjectReference `json:"zoneRef,omitempty"`

	// ZoneID targets an existing Cloudflare zone directly.
	// +kubebuilder:validation:Optional
	ZoneID string `json:"zoneId,omitempty"`

	// SecretRef overrides the token inherited from the Zone.
	// +kubebuilder:validation:Optional
	SecretRef *SecretKeyReference `json:"secretRef,omitempty"`

	// Name is the DNS record name (e.g., "www" or "api.example.com").
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MaxLength=255
	Name string `json:"name"`

	// Type is one of A, AAAA, CNAME, MX or TXT.
	// +kubebuilder:validation:Required
	Type string `json:"type"`

	// +kubebuilder:validation:Required
	Content string `json:"content"`

	// TTL in seconds, 1 means automatic.
	// +kubebuilder:validation:Optional
	// +kubebuilder:validation:Minimum=1
	TTL *int32 `json:"ttl,omitempty"`

	// Priority for MX records. Defaults to 10.
	// +kubebuilder:validation:Optional
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:validation:Maximum=65535
	Priority *int32 `json:"priority,omitempty"`

	// +kubebuilder:validation:Optional
	Proxied *bool `json:"proxied,omitempty"`

	// +kubebuilder:validation:Optional
	// +kubebuilder:validation:MaxLength=100
	Comment string `json:"comment,omitempty"`
}

// DNSRecordStatus defines the observed state of DNSRecord
type DNSRecordStatus struct {
	Ready bool `json:"ready"`

	// +optional
	RecordID string `json:"recordId,omitempty"`

	// +optional
	ZoneID string `json:"zoneId,omitempty"`

	// +optional
	Error string `json:"error,omitempty"`

	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// +optional
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=dns
// +kubebuilder:printcolumn:name="Type",type=string,JSONPath=`.spec.type`
// +kubebuilder:printcolumn:name="Name",type=string,JSONPath=`.spec.name`
// +kubebuilder:printcolumn:name="Content",type=string,JSONPath=`.spec.content`
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="RecordID",type=string,JSONPath=`.status.recordId`,priority=1
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// DNSRecord is the Schema for the dnsrecords API.
type DNSRecord struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DNSRecordSpec   `json:"spec,omitempty"`
	Status DNSRecordStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DNSRecordList contains a list of DNSRecord
type DNSRecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DNSRecord `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DNSRecord{}, &DNSRecordList{})
}

// CredentialReference implements CredentialReferrer.
func (r *DNSRecord) CredentialReference() CredentialReference {
	return referenceOf(r.Spec.SecretRef, r.Spec.ZoneRef, nil)
}

// IsReady reports whether the record exists on Cloudflare.
func (r *DNSRecord) IsReady() bool {
	return r.Status.Ready
}
