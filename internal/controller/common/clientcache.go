// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"sync"

	"github.com/cloudflare/cloudflare-go"
	"github.com/go-logr/logr"

	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/monitoring"
)

// ClientCache holds one Cloudflare client per distinct API token. Clients are
// built lazily and never evicted. Failed constructions are not cached.
type ClientCache struct {
	factory cf.ClientFactory
	log     logr.Logger
	baseURL string
	options []cloudflare.Option

	mu      sync.Mutex
	clients map[string]cf.CloudflareClient
}

// NewClientCache creates an empty cache building clients with factory against
// baseURL; an empty baseURL means the Cloudflare default. opts are passed to
// every client.
func NewClientCache(factory cf.ClientFactory, log logr.Logger, baseURL string, opts ...cloudflare.Option) *ClientCache {
	return &ClientCache{
		factory: factory,
		log:     log.WithName("client-cache"),
		baseURL: baseURL,
		options: opts,
		clients: make(map[string]cf.CloudflareClient),
	}
}

// GetOrCreate returns the client bound to token, building it on first use.
// Every caller with the same token receives the same instance.
func (c *ClientCache) GetOrCreate(token string) (cf.CloudflareClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[token]; ok {
		return client, nil
	}

	client, err := c.factory.NewClient(cf.ClientConfig{
		Log:      c.log,
		APIToken: token,
		BaseURL:  c.baseURL,
		Options:  c.options,
	})
	if err != nil {
		return nil, err
	}

	c.clients[token] = client
	monitoring.SetClientCacheSize(len(c.clients))
	c.log.V(1).Info("Created Cloudflare client", "clients", len(c.clients))
	return client, nil
}

// Len returns the number of cached clients.
func (c *ClientCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}
