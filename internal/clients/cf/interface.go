// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

//go:generate mockgen -destination=mock/mock_client.go -package=mock github.com/StringKe/cloudflare-zone-operator/internal/clients/cf CloudflareClient

package cf

import "context"

// CloudflareClient defines the interface for interacting with the Cloudflare API.
// This interface enables dependency injection and mocking for unit tests.
type CloudflareClient interface {
	// Account operations
	GetAccount(ctx context.Context, accountID string) (*AccountResult, error)
	ListAccounts(ctx context.Context, name string) ([]AccountResult, error)

	// Zone operations
	CreateZone(ctx context.Context, params ZoneParams) (*ZoneResult, error)
	GetZone(ctx context.Context, zoneID string) (*ZoneResult, error)
	GetZoneIDByName(ctx context.Context, name string) (string, error)

	// DNS operations
	CreateDNSRecord(ctx context.Context, params DNSRecordParams) (*DNSRecordResult, error)
	GetDNSRecord(ctx context.Context, zoneID, recordID string) (*DNSRecordResult, error)
	GetDNSRecordIDByName(ctx context.Context, zoneID, name, recordType, content string) (string, error)
	UpdateDNSRecord(ctx context.Context, zoneID, recordID string, params DNSRecordParams) (*DNSRecordResult, error)

	// Page Rule operations
	CreatePageRule(ctx context.Context, params PageRuleParams) (*PageRuleResult, error)
	GetPageRule(ctx context.Context, zoneID, ruleID string) (*PageRuleResult, error)
	UpdatePageRule(ctx context.Context, zoneID, ruleID string, params PageRuleParams) (*PageRuleResult, error)
}

// Ensure API implements CloudflareClient
var _ CloudflareClient = (*API)(nil)
