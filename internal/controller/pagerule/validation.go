// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package pagerule

import (
	"k8s.io/apimachinery/pkg/util/json"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
)

// DefaultPriority is used when spec.priority is unset.
const DefaultPriority = 1

var operators = map[v1alpha1.PageRuleOperator]bool{
	v1alpha1.PageRuleOperatorMatches:   true,
	v1alpha1.PageRuleOperatorContains:  true,
	v1alpha1.PageRuleOperatorEquals:    true,
	v1alpha1.PageRuleOperatorNotEquals: true,
}

// desiredRule validates spec and returns the rule Cloudflare should hold.
// ZoneID is left for the caller.
func desiredRule(spec v1alpha1.PageRuleSpec) (cf.PageRuleParams, error) {
	params := cf.PageRuleParams{
		Priority: spec.Priority,
		Status:   string(spec.Status),
	}
	if params.Priority == 0 {
		params.Priority = DefaultPriority
	}
	if params.Status == "" {
		params.Status = string(v1alpha1.PageRuleActive)
	}
	if params.Priority < 0 {
		return params, controller.Errorf(controller.ConfigurationInvalid, "priority %d must be positive", spec.Priority)
	}
	if params.Status != string(v1alpha1.PageRuleActive) && params.Status != string(v1alpha1.PageRuleDisabled) {
		return params, controller.Errorf(controller.ConfigurationInvalid, "unsupported page rule status %q", spec.Status)
	}

	if len(spec.Targets) == 0 {
		return params, controller.Errorf(controller.ConfigurationInvalid, "at least one target is required")
	}
	for i, t := range spec.Targets {
		if t.Target != "" && t.Target != "url" {
			return params, controller.Errorf(controller.ConfigurationInvalid, "targets[%d]: unsupported target %q", i, t.Target)
		}
		operator := t.Constraint.Operator
		if operator == "" {
			operator = v1alpha1.PageRuleOperatorMatches
		}
		if !operators[operator] {
			return params, controller.Errorf(controller.ConfigurationInvalid, "targets[%d]: unsupported operator %q", i, operator)
		}
		if t.Constraint.Value == "" {
			return params, controller.Errorf(controller.ConfigurationInvalid, "targets[%d]: constraint value is required", i)
		}
		params.Targets = append(params.Targets, cf.PageRuleTarget{Operator: string(operator), Value: t.Constraint.Value})
	}

	if len(spec.Actions) == 0 {
		return params, controller.Errorf(controller.ConfigurationInvalid, "at least one action is required")
	}
	for i, a := range spec.Actions {
		if a.ID == "" {
			return params, controller.Errorf(controller.ConfigurationInvalid, "actions[%d]: id is required", i)
		}
		action := cf.PageRuleAction{ID: a.ID}
		if a.Value != nil && len(a.Value.Raw) > 0 {
			if err := json.Unmarshal(a.Value.Raw, &action.Value); err != nil {
				return params, controller.Errorf(controller.ConfigurationInvalid, "actions[%d]: value of %s is not valid JSON: %v", i, a.ID, err)
			}
		}
		params.Actions = append(params.Actions, action)
	}
	return params, nil
}
