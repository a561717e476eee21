// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package handlers

import (
	"net/http"
	"time"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/internal/store"
	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/models"
)

// Handlers provides HTTP handlers for the mock API.
type Handlers struct {
	store *store.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(s *store.Store) *Handlers {
	return &Handlers{store: s}
}

// ---- Account Handlers ----

// ListAccounts handles GET /accounts.
func (h *Handlers) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ResponseWithResultInfo(w, h.store.ListAccounts(GetQueryParam(r, "name")))
}

// GetAccount handles GET /accounts/{accountId}.
func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := GetPathParam(r, "accountId")
	acc, ok := h.store.GetAccount(accountID)
	if !ok {
		NotFound(w, "account")
		return
	}
	Success(w, acc)
}

// ---- Zone Handlers ----

// ZoneCreateRequest represents a zone creation request. cloudflare-go sends
// the account as "organization"; the v4 API documents "account".
type ZoneCreateRequest struct {
	Name         string             `json:"name"`
	JumpStart    bool               `json:"jump_start"`
	Type         string             `json:"type"`
	Organization *models.AccountRef `json:"organization"`
	Account      *models.AccountRef `json:"account"`
}

// AccountID returns the requested account, preferring organization.
func (req *ZoneCreateRequest) AccountID() string {
	if req.Organization != nil && req.Organization.ID != "" {
		return req.Organization.ID
	}
	if req.Account != nil {
		return req.Account.ID
	}
	return ""
}

// CreateZone handles POST /zones.
func (h *Handlers) CreateZone(w http.ResponseWriter, r *http.Request) {
	req, err := ReadJSON[ZoneCreateRequest](r)
	if err != nil || req.Name == "" {
		BadRequest(w, "invalid request body")
		return
	}

	if _, exists := h.store.GetZoneByName(req.Name); exists {
		Error(w, http.StatusBadRequest, CodeZoneExists, req.Name+" already exists")
		return
	}
	acc, ok := h.store.GetAccount(req.AccountID())
	if !ok {
		NotFound(w, "account")
		return
	}

	zoneType := req.Type
	if zoneType == "" {
		zoneType = "full"
	}
	now := time.Now().UTC()
	zone := &models.Zone{
		ID:          h.store.GenerateID(),
		Name:        req.Name,
		Status:      "pending",
		Type:        zoneType,
		NameServers: []string{"ada.ns.cloudflare.com", "bob.ns.cloudflare.com"},
		Account:     models.AccountRef{ID: acc.ID, Name: acc.Name},
		CreatedOn:   now,
		ModifiedOn:  now,
	}
	h.store.AddZone(zone)
	Success(w, zone)
}

// ListZones handles GET /zones.
func (h *Handlers) ListZones(w http.ResponseWriter, r *http.Request) {
	name := GetQueryParam(r, "name")
	if name != "" {
		zone, ok := h.store.GetZoneByName(name)
		if !ok {
			ResponseWithResultInfo(w, []*models.Zone{})
			return
		}
		ResponseWithResultInfo(w, []*models.Zone{zone})
		return
	}
	ResponseWithResultInfo(w, h.store.ListZones())
}

// GetZone handles GET /zones/{zoneId}.
func (h *Handlers) GetZone(w http.ResponseWriter, r *http.Request) {
	zoneID := GetPathParam(r, "zoneId")
	zone, ok := h.store.GetZone(zoneID)
	if !ok {
		NotFound(w, "zone")
		return
	}
	Success(w, zone)
}
