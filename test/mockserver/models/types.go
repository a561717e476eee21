// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package models defines the payloads served by the mock Cloudflare API.
package models

import "time"

// Response is the standard Cloudflare API response envelope.
type Response[T any] struct {
	Success    bool        `json:"success"`
	Errors     []APIError  `json:"errors"`
	Messages   []string    `json:"messages"`
	Result     T           `json:"result"`
	ResultInfo *ResultInfo `json:"result_info,omitempty"`
}

// APIError represents a Cloudflare API error.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ResultInfo contains pagination information.
type ResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

// Account represents a Cloudflare account.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// AccountRef is the account summary embedded in a zone.
type AccountRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Zone represents a Cloudflare zone.
type Zone struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Type        string     `json:"type,omitempty"`
	Paused      bool       `json:"paused"`
	NameServers []string   `json:"name_servers,omitempty"`
	Account     AccountRef `json:"account"`
	CreatedOn   time.Time  `json:"created_on"`
	ModifiedOn  time.Time  `json:"modified_on"`
}

// DNSRecord represents a Cloudflare DNS record.
type DNSRecord struct {
	ID         string    `json:"id"`
	ZoneID     string    `json:"zone_id"`
	ZoneName   string    `json:"zone_name"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	TTL        int       `json:"ttl"`
	Proxied    *bool     `json:"proxied,omitempty"`
	Priority   *int      `json:"priority,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	CreatedOn  time.Time `json:"created_on"`
	ModifiedOn time.Time `json:"modified_on"`
}

// PageRuleConstraint is the URL match of a page rule target.
type PageRuleConstraint struct {
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// PageRuleTarget represents a page rule target.
type PageRuleTarget struct {
	Target     string             `json:"target"`
	Constraint PageRuleConstraint `json:"constraint"`
}

// PageRuleAction represents a page rule action.
type PageRuleAction struct {
	ID    string      `json:"id"`
	Value interface{} `json:"value"`
}

// PageRule represents a Cloudflare page rule.
type PageRule struct {
	ID         string           `json:"id"`
	ZoneID     string           `json:"-"`
	Targets    []PageRuleTarget `json:"targets"`
	Actions    []PageRuleAction `json:"actions"`
	Priority   int              `json:"priority"`
	Status     string           `json:"status"`
	CreatedOn  time.Time        `json:"created_on"`
	ModifiedOn time.Time        `json:"modified_on"`
}
