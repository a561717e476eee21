// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package credentials turns the credential reference of a resource into an
// API token by following secret, zone and account links.
package credentials

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
)

// MaxReferenceDepth bounds the parent lookups of one resolution. The longest
// legitimate chain (DNSRecord, Zone, Account, Secret) needs two.
const MaxReferenceDepth = 4

// SourceDefault is the Token.Source of the process-wide default token.
const SourceDefault = "default"

// Token is a resolved API token.
type Token struct {
	Value string
	// Source says where Value came from without revealing it.
	Source string
}

type parentLookup func(ctx context.Context, kind v1alpha1.ReferenceKind, key types.NamespacedName) (v1alpha1.CredentialReferrer, error)

// Resolver resolves API tokens for Account, Zone, DNSRecord and PageRule objects.
type Resolver struct {
	client       client.Reader
	secrets      *SecretResolver
	defaultToken string
	lookup       parentLookup
}

// NewResolver creates a Resolver. defaultToken is used for resources whose
// chain ends without a secret and may be empty.
func NewResolver(c client.Reader, defaultToken string) *Resolver {
	r := &Resolver{
		client:       c,
		secrets:      NewSecretResolver(c),
		defaultToken: defaultToken,
	}
	r.lookup = r.loadParent
	return r
}

// Resolve walks obj's reference chain within namespace: secret first, then
// zone, then account, then the default token.
func (r *Resolver) Resolve(ctx context.Context, obj v1alpha1.CredentialReferrer, namespace string) (Token, error) {
	current := obj
	for lookups := 0; ; lookups++ {
		ref := current.CredentialReference()
		switch ref.Kind {
		case v1alpha1.SecretRef:
			value, err := r.secrets.Fetch(ctx, *ref.Secret, namespace)
			if err != nil {
				return Token{}, err
			}
			return Token{Value: value, Source: fmt.Sprintf("secret/%s/%s", namespace, ref.Secret)}, nil
		case v1alpha1.NoRef:
			return Token{Value: r.defaultToken, Source: SourceDefault}, nil
		}

		if lookups >= MaxReferenceDepth {
			return Token{}, fmt.Errorf("%w: gave up at %s %q after %d lookups", ErrReferenceChainTooDeep, ref.Kind, ref.Name, lookups)
		}

		parent, err := r.lookup(ctx, ref.Kind, types.NamespacedName{Namespace: namespace, Name: ref.Name})
		if err != nil {
			return Token{}, err
		}
		current = parent
	}
}

func (r *Resolver) loadParent(ctx context.Context, kind v1alpha1.ReferenceKind, key types.NamespacedName) (v1alpha1.CredentialReferrer, error) {
	var (
		obj  client.Object
		name string
	)
	switch kind {
	case v1alpha1.ZoneRef:
		obj, name = &v1alpha1.Zone{}, kindZone
	case v1alpha1.AccountRef:
		obj, name = &v1alpha1.Account{}, kindAccount
	default:
		return nil, fmt.Errorf("unexpected reference kind %s", kind)
	}

	if err := r.client.Get(ctx, key, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, &NotFoundError{Kind: name, Name: key.Name}
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", name, key, err)
	}
	return obj.(v1alpha1.CredentialReferrer), nil
}
