// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package v1alpha1

import "fmt"

// SecretKeyReference selects a key of a Secret in the namespace of the referring object.
type SecretKeyReference struct {
	// Name of the Secret.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// Key within the Secret data holding the API token.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	Key string `json:"key"`
}

// String renders the reference without exposing any secret data.
func (r SecretKeyReference) String() string {
	return fmt.Sprintf("%s#%s", r.Name, r.Key)
}

// ObjectReference points to another custom resource in the same namespace.
type ObjectReference struct {
	// Name of the referenced object.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`
}

// ReferenceKind tells which link a resource uses to obtain its API token.
// +kubebuilder:object:generate=false
type ReferenceKind int

const (
	// NoRef means the process-wide default token is used.
	NoRef ReferenceKind = iota
	// SecretRef reads the token from a Secret key.
	SecretRef
	// ZoneRef inherits the token of a Zone.
	ZoneRef
	// AccountRef inherits the token of an Account.
	AccountRef
)

// String implements fmt.Stringer.
func (k ReferenceKind) String() string {
	switch k {
	case SecretRef:
		return "secret"
	case ZoneRef:
		return "zone"
	case AccountRef:
		return "account"
	default:
		return "none"
	}
}

// CredentialReference is the single credential link of a resource. Exactly one
// of Secret or Name is meaningful, depending on Kind.
// +kubebuilder:object:generate=false
type CredentialReference struct {
	Kind   ReferenceKind
	Secret *SecretKeyReference
	Name   string
}

// CredentialReferrer is implemented by every kind that can resolve an API token.
// +kubebuilder:object:generate=false
type CredentialReferrer interface {
	CredentialReference() CredentialReference
}

// referenceOf applies the lookup precedence secret, zone, account.
func referenceOf(secret *SecretKeyReference, zone, account *ObjectReference) CredentialReference {
	switch {
	case secret != nil:
		return CredentialReference{Kind: SecretRef, Secret: secret}
	case zone != nil && zone.Name != "":
		return CredentialReference{Kind: ZoneRef, Name: zone.Name}
	case account != nil && account.Name != "":
		return CredentialReference{Kind: AccountRef, Name: account.Name}
	default:
		return CredentialReference{Kind: NoRef}
	}
}
