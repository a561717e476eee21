// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"github.com/cloudflare/cloudflare-go"
	"github.com/go-logr/logr"
)

// API wraps a cloudflare-go client bound to a single API token.
// It is safe for concurrent use; it carries no per-resource state.
type API struct {
	Log              logr.Logger
	CloudflareClient *cloudflare.API
}

// NewAPI wraps an existing cloudflare-go client.
func NewAPI(log logr.Logger, client *cloudflare.API) *API {
	return &API{
		Log:              log,
		CloudflareClient: client,
	}
}
