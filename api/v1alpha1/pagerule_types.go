// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// PageRuleOperator is the comparison applied to a target URL pattern.
// +kubebuilder:validation:Enum=matches;contains;equals;not_equals
type PageRuleOperator string

const (
	PageRuleOperatorMatches   PageRuleOperator = "matches"
	PageRuleOperatorContains  PageRuleOperator = "contains"
	PageRuleOperatorEquals    PageRuleOperator = "equals"
	PageRuleOperatorNotEquals PageRuleOperator = "not_equals"
)

// PageRuleState enables or disables a page rule.
// +kubebuilder:validation:Enum=active;disabled
type PageRuleState string

const (
	PageRuleActive   PageRuleState = "active"
	PageRuleDisabled PageRuleState = "disabled"
)

// PageRuleConstraint is a URL pattern match.
type PageRuleConstraint struct {
	// +kubebuilder:default=matches
	Operator PageRuleOperator `json:"operator,omitempty"`

	// Value is the URL pattern, e.g. "*example.com/images/*".
	// +kubebuilder:validation:Required
	Value string `json:"value"`
}

// PageRuleTarget selects the requests a page rule applies to.
type PageRuleTarget struct {
	// Target is always "url".
	// +kubebuilder:validation:Enum=url
	// +kubebuilder:default=url
	Target string `json:"target,omitempty"`

	// +kubebuilder:validation:Required
	Constraint PageRuleConstraint `json:"constraint"`
}

// PageRuleAction is a single Cloudflare page rule setting.
type PageRuleAction struct {
	// ID is the setting name, e.g. "always_use_https" or "forwarding_url".
	// +kubebuilder:validation:Required
	ID string `json:"id"`

	// Value is passed to Cloudflare unchanged.
	// +kubebuilder:validation:Optional
	// +kubebuilder:validation:Schemaless
	// +kubebuilder:pruning:PreserveUnknownFields
	Value *runtime.RawExtension `json:"value,omitempty"`
}

// PageRuleSpec defines the desired state of PageRule
type PageRuleSpec struct {
	// +kubebuilder:validation:Optional
	ZoneRef *ObjectReference `json:"zoneRef,omitempty"`

	// +kubebuilder:validation:Optional
	ZoneID string `json:"zoneId,omitempty"`

	// +kubebuilder:validation:Optional
	SecretRef *SecretKeyReference `json:"secretRef,omitempty"`

	// +kubebuilder:validation:MinItems=1
	Targets []PageRuleTarget `json:"targets"`

	// +kubebuilder:validation:MinItems=1
	Actions []PageRuleAction `json:"actions"`

	// Priority orders rules within a zone, higher wins.
	// +kubebuilder:validation:Optional
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:default=1
	Priority int `json:"priority,omitempty"`

	// +kubebuilder:validation:Optional
	// +kubebuilder:default=active
	Status PageRuleState `json:"status,omitempty"`
}

// PageRuleStatus defines the observed state of PageRule
type PageRuleStatus struct {
	Ready bool `json:"ready"`

	// +optional
	RuleID string `json:"ruleId,omitempty"`

	// +optional
	ZoneID string `json:"zoneId,omitempty"`

	// +optional
	CreatedOn *metav1.Time `json:"createdOn,omitempty"`

	// +optional
	ModifiedOn *metav1.Time `json:"modifiedOn,omitempty"`

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
// +kubebuilder:resource:shortName=pr
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="RuleID",type=string,JSONPath=`.status.ruleId`
// +kubebuilder:printcolumn:name="Status",type=string,JSONPath=`.spec.status`,priority=1
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// PageRule is the Schema for the pagerules API.
type PageRule struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PageRuleSpec   `json:"spec,omitempty"`
	Status PageRuleStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PageRuleList contains a list of PageRule
type PageRuleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PageRule `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PageRule{}, &PageRuleList{})
}

// CredentialReference implements CredentialReferrer.
func (p *PageRule) CredentialReference() CredentialReference {
	return referenceOf(p.Spec.SecretRef, p.Spec.ZoneRef, nil)
}

// IsReady reports whether the rule exists on Cloudflare.
func (p *PageRule) IsReady() bool {
	return p.Status.Ready
}
