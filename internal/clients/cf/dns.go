// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"k8s.io/utils/ptr"
)

// DNSRecordParams contains parameters for creating/updating a DNS record.
type DNSRecordParams struct {
	ZoneID   string
	Name     string
	Type     string
	Content  string
	TTL      int
	Proxied  *bool
	Priority *uint16
	Comment  string
}

// DNSRecordResult contains the result of a DNS record operation.
type DNSRecordResult struct {
	ID       string
	ZoneID   string
	Name     string
	Type     string
	Content  string
	TTL      int
	Proxied  bool
	Priority *uint16
	Comment  string
}

// proxiable reports whether Cloudflare accepts the proxied flag for the type.
func proxiable(recordType string) bool {
	return recordType == "A" || recordType == "AAAA" || recordType == "CNAME"
}

func dnsRecordResultFrom(zoneID string, record cloudflare.DNSRecord) *DNSRecordResult {
	return &DNSRecordResult{
		ID:       record.ID,
		ZoneID:   zoneID,
		Name:     record.Name,
		Type:     record.Type,
		Content:  record.Content,
		TTL:      record.TTL,
		Proxied:  ptr.Deref(record.Proxied, false),
		Priority: record.Priority,
		Comment:  record.Comment,
	}
}

// CreateDNSRecord creates a new DNS record.
func (c *API) CreateDNSRecord(ctx context.Context, params DNSRecordParams) (*DNSRecordResult, error) {
	if params.ZoneID == "" {
		return nil, fmt.Errorf("create DNS record: %w", ErrInvalidZoneID)
	}
	rc := cloudflare.ZoneIdentifier(params.ZoneID)

	createParams := cloudflare.CreateDNSRecordParams{
		Name:     params.Name,
		Type:     params.Type,
		Content:  params.Content,
		TTL:      params.TTL,
		Priority: params.Priority,
		Comment:  params.Comment,
	}
	if proxiable(params.Type) {
		createParams.Proxied = params.Proxied
	}

	record, err := c.CloudflareClient.CreateDNSRecord(ctx, rc, createParams)
	if err != nil {
		c.Log.Error(err, "error creating DNS record", "name", params.Name)
		return nil, NewAPIError("create DNS record", params.Name, err)
	}

	c.Log.Info("DNS Record created", "id", record.ID, "name", record.Name)
	return dnsRecordResultFrom(params.ZoneID, record), nil
}

// GetDNSRecord retrieves a DNS record by ID.
func (c *API) GetDNSRecord(ctx context.Context, zoneID, recordID string) (*DNSRecordResult, error) {
	rc := cloudflare.ZoneIdentifier(zoneID)

	record, err := c.CloudflareClient.GetDNSRecord(ctx, rc, recordID)
	if err != nil {
		c.Log.Error(err, "error getting DNS record", "id", recordID)
		return nil, NewAPIError("get DNS record", recordID, err)
	}
	return dnsRecordResultFrom(zoneID, record), nil
}

// GetDNSRecordIDByName returns the ID of a record with the given name and
// type. A non-empty content must match exactly. Returns an empty ID and nil
// error when there is no such record.
func (c *API) GetDNSRecordIDByName(ctx context.Context, zoneID, name, recordType, content string) (string, error) {
	if zoneID == "" {
		return "", fmt.Errorf("list DNS records: %w", ErrInvalidZoneID)
	}
	rc := cloudflare.ZoneIdentifier(zoneID)

	records, _, err := c.CloudflareClient.ListDNSRecords(ctx, rc, cloudflare.ListDNSRecordsParams{
		Type: recordType,
		Name: name,
	})
	if err != nil {
		c.Log.Error(err, "error listing DNS records", "name", name, "type", recordType)
		return "", NewAPIError("list DNS records", name, err)
	}

	for _, record := range records {
		if record.Type != recordType || !strings.EqualFold(record.Name, name) {
			continue
		}
		if content != "" && record.Content != content {
			continue
		}
		return record.ID, nil
	}
	c.Log.V(1).Info("no DNS record found", "name", name, "type", recordType)
	return "", nil
}

// UpdateDNSRecord updates an existing DNS record.
func (c *API) UpdateDNSRecord(ctx context.Context, zoneID, recordID string, params DNSRecordParams) (*DNSRecordResult, error) {
	rc := cloudflare.ZoneIdentifier(zoneID)

	updateParams := cloudflare.UpdateDNSRecordParams{
		ID:       recordID,
		Name:     params.Name,
		Type:     params.Type,
		Content:  params.Content,
		TTL:      params.TTL,
		Priority: params.Priority,
		Comment:  ptr.To(params.Comment),
	}
	if proxiable(params.Type) {
		updateParams.Proxied = params.Proxied
	}

	record, err := c.CloudflareClient.UpdateDNSRecord(ctx, rc, updateParams)
	if err != nil {
		c.Log.Error(err, "error updating DNS record", "id", recordID)
		return nil, NewAPIError("update DNS record", recordID, err)
	}

	c.Log.Info("DNS Record updated", "id", record.ID, "name", record.Name)
	return dnsRecordResultFrom(zoneID, record), nil
}

// Differs reports whether the observed record no longer matches params.
func (r *DNSRecordResult) Differs(params DNSRecordParams) bool {
	if r.Type != params.Type || r.Content != params.Content || r.Comment != params.Comment {
		return true
	}
	if params.TTL != 0 && r.TTL != params.TTL {
		return true
	}
	if proxiable(params.Type) && params.Proxied != nil && r.Proxied != *params.Proxied {
		return true
	}
	if params.Priority != nil && (r.Priority == nil || *r.Priority != *params.Priority) {
		return true
	}
	return false
}
