// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package injection lets tests make the mock Cloudflare API fail on purpose.
package injection

import (
	"regexp"
	"sync"
)

// ErrorType defines the type of error to inject.
type ErrorType string

const (
	// ErrorTypeRateLimit simulates a 429 rate limit error.
	// cloudflare-go retries these, so expect the request to be repeated.
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServerError simulates a 500 server error. Also retried by cloudflare-go.
	ErrorTypeServerError ErrorType = "server_error"
	// ErrorTypeForbidden simulates a 403 authorization error.
	ErrorTypeForbidden ErrorType = "forbidden"
	// ErrorTypeConflict simulates a 409 conflict error.
	ErrorTypeConflict ErrorType = "conflict"
	// ErrorTypeNotFound simulates a 404 not found error.
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeBadRequest simulates a 400 validation error.
	ErrorTypeBadRequest ErrorType = "bad_request"
)

// Rule matches requests and selects the error returned for them.
type Rule struct {
	// PathPattern is a regex matched against the request path.
	PathPattern string
	// Method restricts the rule to one HTTP method; empty matches all.
	Method string
	// ErrorType is the type of error to inject.
	ErrorType ErrorType
	// Times limits how often the rule fires; 0 means always.
	Times int

	fired     int
	pathRegex *regexp.Regexp
}

// InjectedError represents an injected error.
type InjectedError struct {
	Type    ErrorType
	Message string
}

// ErrorInjector manages error injection rules.
type ErrorInjector struct {
	mu    sync.Mutex
	rules []*Rule
}

// NewErrorInjector creates a new error injector.
func NewErrorInjector() *ErrorInjector {
	return &ErrorInjector{}
}

// Add registers a rule. Rules are evaluated in insertion order.
func (e *ErrorInjector) Add(rule Rule) error {
	pathRegex, err := regexp.Compile(rule.PathPattern)
	if err != nil {
		return err
	}
	rule.pathRegex = pathRegex

	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, &rule)
	return nil
}

// AddSimple injects errorType on every request whose path matches pathPattern.
func (e *ErrorInjector) AddSimple(pathPattern string, errorType ErrorType) error {
	return e.Add(Rule{PathPattern: pathPattern, ErrorType: errorType})
}

// AddWithCount injects errorType on the next count matching requests only.
func (e *ErrorInjector) AddWithCount(pathPattern string, errorType ErrorType, count int) error {
	return e.Add(Rule{PathPattern: pathPattern, ErrorType: errorType, Times: count})
}

// Check returns the error to inject for the request, or nil.
func (e *ErrorInjector) Check(path, method string) *InjectedError {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, rule := range e.rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if !rule.pathRegex.MatchString(path) {
			continue
		}
		if rule.Times > 0 {
			if rule.fired >= rule.Times {
				continue
			}
			rule.fired++
		}
		return &InjectedError{Type: rule.ErrorType, Message: "injected " + string(rule.ErrorType)}
	}
	return nil
}

// Clear removes all rules.
func (e *ErrorInjector) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = nil
}

// Count returns the number of registered rules.
func (e *ErrorInjector) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rules)
}
