// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ZoneType is the Cloudflare zone setup type.
// +kubebuilder:validation:Enum=full;partial
type ZoneType string

const (
	// ZoneTypeFull delegates the whole domain to Cloudflare nameservers.
	ZoneTypeFull ZoneType = "full"
	// ZoneTypePartial is a CNAME setup.
	ZoneTypePartial ZoneType = "partial"
)

// ZoneSpec defines the desired state of Zone
type ZoneSpec struct {
	// Name is the domain name of the zone. Defaults to metadata.name.
	// +kubebuilder:validation:Optional
	// +kubebuilder:validation:MaxLength=253
	Name string `json:"name,omitempty"`

	// AccountRef names the Account that owns this zone. The Account must be
	// ready before the zone is created.
	// +kubebuilder:validation:Optional
	AccountRef *ObjectReference `json:"accountRef,omitempty"`

	// AccountID is used when no AccountRef is given.
	// +kubebuilder:validation:Optional
	AccountID string `json:"accountId,omitempty"`

	// SecretRef overrides the token inherited from the Account.
	// +kubebuilder:validation:Optional
	SecretRef *SecretKeyReference `json:"secretRef,omitempty"`

	// JumpStart asks Cloudflare to scan for existing DNS records on creation.
	// +kubebuilder:validation:Optional
	// +kubebuilder:default=false
	JumpStart bool `json:"jumpStart,omitempty"`

	// +kubebuilder:validation:Optional
	// +kubebuilder:default=full
	Type ZoneType `json:"type,omitempty"`
}

// ZoneStatus defines the observed state of Zone
type ZoneStatus struct {
	Ready bool `json:"ready"`

	// ID is the Cloudflare zone identifier.
	// +optional
	ID string `json:"id,omitempty"`

	// State is the zone status reported by Cloudflare (pending, active, ...).
	// +optional
	State string `json:"state,omitempty"`

	// +optional
	NameServers []string `json:"nameServers,omitempty"`

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
// +kubebuilder:resource:shortName=zone
// +kubebuilder:printcolumn:name="Domain",type=string,JSONPath=`.spec.name`
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="ZoneID",type=string,JSONPath=`.status.id`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`,priority=1
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Zone is the Schema for the zones API.
type Zone struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ZoneSpec   `json:"spec,omitempty"`
	Status ZoneStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ZoneList contains a list of Zone
type ZoneList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Zone `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Zone{}, &ZoneList{})
}

// CredentialReference implements CredentialReferrer.
func (z *Zone) CredentialReference() CredentialReference {
	return referenceOf(z.Spec.SecretRef, nil, z.Spec.AccountRef)
}

// IsReady reports whether the zone exists on Cloudflare.
func (z *Zone) IsReady() bool {
	return z.Status.Ready
}

// DomainName returns spec.name, falling back to the object name.
func (z *Zone) DomainName() string {
	if z.Spec.Name != "" {
		return z.Spec.Name
	}
	return z.Name
}
