// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"fmt"
	"os"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"github.com/go-logr/logr"
)

// EnvAPIBaseURL overrides the Cloudflare API endpoint, e.g. to point at a mock server.
const EnvAPIBaseURL = "CLOUDFLARE_API_BASE_URL"

// GetAPIBaseURL returns the endpoint override from the environment, or "" for the default.
func GetAPIBaseURL() string {
	return strings.TrimRight(strings.TrimSpace(os.Getenv(EnvAPIBaseURL)), "/")
}

// ClientFactory creates CloudflareClient instances.
// This interface enables dependency injection for testing.
type ClientFactory interface {
	// NewClient creates a new CloudflareClient with the given configuration.
	NewClient(config ClientConfig) (CloudflareClient, error)
}

// ClientConfig contains configuration for creating a CloudflareClient.
type ClientConfig struct {
	Log      logr.Logger
	APIToken string
	// BaseURL replaces https://api.cloudflare.com/client/v4 when set.
	BaseURL string
	// Options are passed to cloudflare.NewWithAPIToken after BaseURL.
	Options []cloudflare.Option
}

// DefaultClientFactory creates real CloudflareClient instances.
type DefaultClientFactory struct{}

// NewClient creates a new CloudflareClient using the real Cloudflare API.
func (*DefaultClientFactory) NewClient(config ClientConfig) (CloudflareClient, error) {
	if strings.TrimSpace(config.APIToken) == "" {
		return nil, fmt.Errorf("%w: %w", ErrClientCreation, ErrNoCredentials)
	}

	opts := make([]cloudflare.Option, 0, len(config.Options)+1)
	if config.BaseURL != "" {
		opts = append(opts, cloudflare.BaseURL(config.BaseURL))
	}
	opts = append(opts, config.Options...)

	cfClient, err := cloudflare.NewWithAPIToken(config.APIToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientCreation, err)
	}

	return NewAPI(config.Log, cfClient), nil
}

// NewDefaultClientFactory creates a new DefaultClientFactory.
func NewDefaultClientFactory() ClientFactory {
	return &DefaultClientFactory{}
}
