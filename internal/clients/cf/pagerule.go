// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/cloudflare/cloudflare-go"
)

// PageRuleTarget is a URL match of a page rule.
type PageRuleTarget struct {
	Operator string
	Value    string
}

// PageRuleAction is a single page rule setting. Value is any JSON-compatible value.
type PageRuleAction struct {
	ID    string
	Value interface{}
}

// PageRuleParams contains parameters for creating/updating a page rule.
type PageRuleParams struct {
	ZoneID   string
	Targets  []PageRuleTarget
	Actions  []PageRuleAction
	Priority int
	Status   string
}

// PageRuleResult contains the result of a page rule operation.
type PageRuleResult struct {
	ID         string
	ZoneID     string
	Targets    []PageRuleTarget
	Actions    []PageRuleAction
	Priority   int
	Status     string
	CreatedOn  time.Time
	ModifiedOn time.Time
}

func (p PageRuleParams) toCloudflare() cloudflare.PageRule {
	rule := cloudflare.PageRule{
		Targets:  make([]cloudflare.PageRuleTarget, 0, len(p.Targets)),
		Actions:  make([]cloudflare.PageRuleAction, 0, len(p.Actions)),
		Priority: p.Priority,
		Status:   p.Status,
	}
	for _, t := range p.Targets {
		var target cloudflare.PageRuleTarget
		target.Target = "url"
		target.Constraint.Operator = t.Operator
		target.Constraint.Value = t.Value
		rule.Targets = append(rule.Targets, target)
	}
	for _, a := range p.Actions {
		rule.Actions = append(rule.Actions, cloudflare.PageRuleAction{ID: a.ID, Value: a.Value})
	}
	return rule
}

func pageRuleResultFrom(zoneID string, rule cloudflare.PageRule) *PageRuleResult {
	result := &PageRuleResult{
		ID:         rule.ID,
		ZoneID:     zoneID,
		Targets:    make([]PageRuleTarget, 0, len(rule.Targets)),
		Actions:    make([]PageRuleAction, 0, len(rule.Actions)),
		Priority:   rule.Priority,
		Status:     rule.Status,
		CreatedOn:  rule.CreatedOn,
		ModifiedOn: rule.ModifiedOn,
	}
	for _, t := range rule.Targets {
		result.Targets = append(result.Targets, PageRuleTarget{Operator: t.Constraint.Operator, Value: t.Constraint.Value})
	}
	for _, a := range rule.Actions {
		result.Actions = append(result.Actions, PageRuleAction{ID: a.ID, Value: a.Value})
	}
	return result
}

// CreatePageRule creates a new page rule.
func (c *API) CreatePageRule(ctx context.Context, params PageRuleParams) (*PageRuleResult, error) {
	if params.ZoneID == "" {
		return nil, fmt.Errorf("create page rule: %w", ErrInvalidZoneID)
	}

	rule, err := c.CloudflareClient.CreatePageRule(ctx, params.ZoneID, params.toCloudflare())
	if err != nil {
		c.Log.Error(err, "error creating page rule", "zoneId", params.ZoneID)
		return nil, NewAPIError("create page rule", params.ZoneID, err)
	}

	c.Log.Info("Page Rule created", "id", rule.ID)
	return pageRuleResultFrom(params.ZoneID, *rule), nil
}

// GetPageRule retrieves a page rule by ID.
func (c *API) GetPageRule(ctx context.Context, zoneID, ruleID string) (*PageRuleResult, error) {
	rule, err := c.CloudflareClient.PageRule(ctx, zoneID, ruleID)
	if err != nil {
		c.Log.Error(err, "error getting page rule", "id", ruleID)
		return nil, NewAPIError("get page rule", ruleID, err)
	}
	return pageRuleResultFrom(zoneID, rule), nil
}

// UpdatePageRule replaces an existing page rule and returns its new state.
func (c *API) UpdatePageRule(ctx context.Context, zoneID, ruleID string, params PageRuleParams) (*PageRuleResult, error) {
	if err := c.CloudflareClient.UpdatePageRule(ctx, zoneID, ruleID, params.toCloudflare()); err != nil {
		c.Log.Error(err, "error updating page rule", "id", ruleID)
		return nil, NewAPIError("update page rule", ruleID, err)
	}

	c.Log.Info("Page Rule updated", "id", ruleID)
	return c.GetPageRule(ctx, zoneID, ruleID)
}

// Differs reports whether the observed rule no longer matches params.
// Action values are compared by their JSON encoding.
func (r *PageRuleResult) Differs(params PageRuleParams) bool {
	if r.Priority != params.Priority || r.Status != params.Status {
		return true
	}
	if !reflect.DeepEqual(r.Targets, params.Targets) {
		return true
	}
	if len(r.Actions) != len(params.Actions) {
		return true
	}
	for i := range r.Actions {
		if r.Actions[i].ID != params.Actions[i].ID || !sameJSON(r.Actions[i].Value, params.Actions[i].Value) {
			return true
		}
	}
	return false
}

func sameJSON(a, b interface{}) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}
