// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AccountSpec defines the desired state of Account
type AccountSpec struct {
	// ID is the Cloudflare account identifier.
	// +kubebuilder:validation:Optional
	ID string `json:"id,omitempty"`

	// Name is used to look the account up when ID is empty.
	// +kubebuilder:validation:Optional
	Name string `json:"name,omitempty"`

	// SecretRef holds the API token for this account. When omitted the
	// operator default token is used.
	// +kubebuilder:validation:Optional
	SecretRef *SecretKeyReference `json:"secretRef,omitempty"`
}

// AccountStatus defines the observed state of Account
type AccountStatus struct {
	Ready bool `json:"ready"`

	// AccountID is the resolved Cloudflare account identifier.
	// +optional
	AccountID string `json:"accountId,omitempty"`

	// AccountName as reported by Cloudflare.
	// +optional
	AccountName string `json:"accountName,omitempty"`

	// TokenRef describes where the API token was taken from. Never the token itself.
	// +optional
	TokenRef string `json:"tokenRef,omitempty"`

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
// +kubebuilder:resource:shortName=acc
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="AccountID",type=string,JSONPath=`.status.accountId`
// +kubebuilder:printcolumn:name="Name",type=string,JSONPath=`.status.accountName`,priority=1
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Account is the Schema for the accounts API.
type Account struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AccountSpec   `json:"spec,omitempty"`
	Status AccountStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// AccountList contains a list of Account
type AccountList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Account `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Account{}, &AccountList{})
}

// CredentialReference implements CredentialReferrer.
func (a *Account) CredentialReference() CredentialReference {
	return referenceOf(a.Spec.SecretRef, nil, nil)
}

// IsReady reports whether the account was validated against Cloudflare.
func (a *Account) IsReady() bool {
	return a.Status.Ready
}

// ExternalID returns the Cloudflare account ID, preferring the resolved one.
func (a *Account) ExternalID() string {
	if a.Status.AccountID != "" {
		return a.Status.AccountID
	}
	return a.Spec.ID
}
