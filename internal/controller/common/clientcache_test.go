// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
)

// countingFactory delegates to the real factory and counts constructions.
type countingFactory struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (f *countingFactory) NewClient(config cf.ClientConfig) (cf.CloudflareClient, error) {
	f.calls.Add(1)
	if f.fail.Load() {
		return nil, cf.ErrClientCreation
	}
	return cf.NewDefaultClientFactory().NewClient(config)
}

func TestClientCache_SameTokenSameInstance(t *testing.T) {
	factory := &countingFactory{}
	cache := NewClientCache(factory, logr.Discard(), "")

	a, err := cache.GetOrCreate("token-a")
	require.NoError(t, err)
	b, err := cache.GetOrCreate("token-a")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, int32(1), factory.calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestClientCache_DistinctTokensDistinctInstances(t *testing.T) {
	cache := NewClientCache(&countingFactory{}, logr.Discard(), "")

	a, err := cache.GetOrCreate("token-a")
	require.NoError(t, err)
	b, err := cache.GetOrCreate("token-b")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, cache.Len())
}

func TestClientCache_FailuresAreNotCached(t *testing.T) {
	factory := &countingFactory{}
	factory.fail.Store(true)
	cache := NewClientCache(factory, logr.Discard(), "")

	_, err := cache.GetOrCreate("token-a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cf.ErrClientCreation))
	assert.Zero(t, cache.Len())

	factory.fail.Store(false)
	client, err := cache.GetOrCreate("token-a")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, int32(2), factory.calls.Load())
}

func TestClientCache_EmptyToken(t *testing.T) {
	cache := NewClientCache(cf.NewDefaultClientFactory(), logr.Discard(), "")

	_, err := cache.GetOrCreate("")
	assert.ErrorIs(t, err, cf.ErrNoCredentials)
	assert.Zero(t, cache.Len())
}

func TestClientCache_ConcurrentGetOrCreate(t *testing.T) {
	factory := &countingFactory{}
	cache := NewClientCache(factory, logr.Discard(), "")

	const workers = 32
	results := make([]cf.CloudflareClient, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := "token-a"
			if i%2 == 1 {
				token = "token-b"
			}
			c, err := cache.GetOrCreate(token)
			assert.NoError(t, err)
			results[i] = c
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(2), factory.calls.Load())
	for i := 2; i < workers; i++ {
		assert.Same(t, results[i%2], results[i])
	}
}
