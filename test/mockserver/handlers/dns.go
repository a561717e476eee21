// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package handlers

import (
	"net/http"
	"time"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/models"
)

// DNSRecordRequest represents a DNS record create or update request.
type DNSRecordRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Content  string  `json:"content"`
	TTL      int     `json:"ttl"`
	Proxied  *bool   `json:"proxied"`
	Priority *int    `json:"priority"`
	Comment  *string `json:"comment"`
}

// CreateDNSRecord handles POST /zones/{zoneId}/dns_records.
func (h *Handlers) CreateDNSRecord(w http.ResponseWriter, r *http.Request) {
	zoneID := GetPathParam(r, "zoneId")

	zone, ok := h.store.GetZone(zoneID)
	if !ok {
		NotFound(w, "zone")
		return
	}

	req, err := ReadJSON[DNSRecordRequest](r)
	if err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	ttl := req.TTL
	if ttl == 0 {
		ttl = 1
	}
	now := time.Now().UTC()
	record := &models.DNSRecord{
		ID:         h.store.GenerateID(),
		ZoneID:     zoneID,
		ZoneName:   zone.Name,
		Name:       req.Name,
		Type:       req.Type,
		Content:    req.Content,
		TTL:        ttl,
		Proxied:    req.Proxied,
		Priority:   req.Priority,
		CreatedOn:  now,
		ModifiedOn: now,
	}
	if req.Comment != nil {
		record.Comment = *req.Comment
	}

	h.store.CreateDNSRecord(record)
	Success(w, record)
}

// ListDNSRecords handles GET /zones/{zoneId}/dns_records.
func (h *Handlers) ListDNSRecords(w http.ResponseWriter, r *http.Request) {
	zoneID := GetPathParam(r, "zoneId")
	records := h.store.ListDNSRecords(zoneID, GetQueryParam(r, "type"), GetQueryParam(r, "name"))
	ResponseWithResultInfo(w, records)
}

// GetDNSRecord handles GET /zones/{zoneId}/dns_records/{recordId}.
func (h *Handlers) GetDNSRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := h.store.GetDNSRecord(GetPathParam(r, "recordId"))
	if !ok || record.ZoneID != GetPathParam(r, "zoneId") {
		NotFound(w, "dns record")
		return
	}
	Success(w, record)
}

// UpdateDNSRecord handles PUT and PATCH /zones/{zoneId}/dns_records/{recordId}.
func (h *Handlers) UpdateDNSRecord(w http.ResponseWriter, r *http.Request) {
	recordID := GetPathParam(r, "recordId")

	req, err := ReadJSON[DNSRecordRequest](r)
	if err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	record, ok := h.store.UpdateDNSRecord(recordID, func(rec *models.DNSRecord) {
		if req.Name != "" {
			rec.Name = req.Name
		}
		if req.Type != "" {
			rec.Type = req.Type
		}
		if req.Content != "" {
			rec.Content = req.Content
		}
		if req.TTL != 0 {
			rec.TTL = req.TTL
		}
		if req.Proxied != nil {
			rec.Proxied = req.Proxied
		}
		if req.Priority != nil {
			rec.Priority = req.Priority
		}
		if req.Comment != nil {
			rec.Comment = *req.Comment
		}
		rec.ModifiedOn = time.Now().UTC()
	})
	if !ok {
		NotFound(w, "dns record")
		return
	}
	Success(w, record)
}

// DeleteDNSRecord handles DELETE /zones/{zoneId}/dns_records/{recordId}.
func (h *Handlers) DeleteDNSRecord(w http.ResponseWriter, r *http.Request) {
	recordID := GetPathParam(r, "recordId")
	if !h.store.DeleteDNSRecord(recordID) {
		NotFound(w, "dns record")
		return
	}
	Success(w, map[string]string{"id": recordID})
}
