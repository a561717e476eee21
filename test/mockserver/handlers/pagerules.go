// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package handlers

import (
	"net/http"
	"time"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/models"
)

// PageRuleRequest represents a page rule create or update request.
type PageRuleRequest struct {
	Targets  []models.PageRuleTarget `json:"targets"`
	Actions  []models.PageRuleAction `json:"actions"`
	Priority int                     `json:"priority"`
	Status   string                  `json:"status"`
}

func (req *PageRuleRequest) valid() bool {
	return len(req.Targets) > 0 && len(req.Actions) > 0
}

// CreatePageRule handles POST /zones/{zoneId}/pagerules.
func (h *Handlers) CreatePageRule(w http.ResponseWriter, r *http.Request) {
	zoneID := GetPathParam(r, "zoneId")
	if _, ok := h.store.GetZone(zoneID); !ok {
		NotFound(w, "zone")
		return
	}

	req, err := ReadJSON[PageRuleRequest](r)
	if err != nil || !req.valid() {
		BadRequest(w, "page rule requires targets and actions")
		return
	}

	status := req.Status
	if status == "" {
		status = "disabled"
	}
	priority := req.Priority
	if priority == 0 {
		priority = 1
	}
	now := time.Now().UTC()
	rule := &models.PageRule{
		ID:         h.store.GenerateID(),
		ZoneID:     zoneID,
		Targets:    req.Targets,
		Actions:    req.Actions,
		Priority:   priority,
		Status:     status,
		CreatedOn:  now,
		ModifiedOn: now,
	}
	h.store.CreatePageRule(rule)
	Success(w, rule)
}

// GetPageRule handles GET /zones/{zoneId}/pagerules/{ruleId}.
func (h *Handlers) GetPageRule(w http.ResponseWriter, r *http.Request) {
	rule, ok := h.store.GetPageRule(GetPathParam(r, "zoneId"), GetPathParam(r, "ruleId"))
	if !ok {
		NotFound(w, "page rule")
		return
	}
	Success(w, rule)
}

// UpdatePageRule handles PUT /zones/{zoneId}/pagerules/{ruleId}.
func (h *Handlers) UpdatePageRule(w http.ResponseWriter, r *http.Request) {
	req, err := ReadJSON[PageRuleRequest](r)
	if err != nil || !req.valid() {
		BadRequest(w, "page rule requires targets and actions")
		return
	}

	rule, ok := h.store.UpdatePageRule(GetPathParam(r, "zoneId"), GetPathParam(r, "ruleId"), func(pr *models.PageRule) {
		pr.Targets = req.Targets
		pr.Actions = req.Actions
		pr.Priority = req.Priority
		pr.Status = req.Status
		pr.ModifiedOn = time.Now().UTC()
	})
	if !ok {
		NotFound(w, "page rule")
		return
	}
	Success(w, rule)
}
