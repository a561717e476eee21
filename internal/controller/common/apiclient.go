// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/credentials"
)

// APIClientFactory resolves the credential of a resource and hands out the
// cached Cloudflare client for it.
type APIClientFactory struct {
	resolver *credentials.Resolver
	cache    *ClientCache
}

// NewAPIClientFactory creates a factory over resolver and cache.
func NewAPIClientFactory(resolver *credentials.Resolver, cache *ClientCache) *APIClientFactory {
	return &APIClientFactory{resolver: resolver, cache: cache}
}

// APIClientResult is a client together with where its token came from.
type APIClientResult struct {
	API cf.CloudflareClient

	// TokenSource names the credential without revealing it.
	TokenSource string
}

// GetClient returns the client for obj, whose references live in namespace.
func (f *APIClientFactory) GetClient(ctx context.Context, obj v1alpha1.CredentialReferrer, namespace string) (*APIClientResult, error) {
	token, err := f.resolver.Resolve(ctx, obj, namespace)
	if err != nil {
		return nil, err
	}

	api, err := f.cache.GetOrCreate(token.Value)
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).V(1).Info("Using Cloudflare client", "tokenSource", token.Source)
	return &APIClientResult{API: api, TokenSource: token.Source}, nil
}
