// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudflare/cloudflare-go"
)

// Error types for Cloudflare API operations
var (
	// ErrResourceNotFound indicates the requested resource was not found
	ErrResourceNotFound = errors.New("resource not found")

	// ErrResourceConflict indicates the resource already exists
	ErrResourceConflict = errors.New("resource already exists")

	// ErrAPIRateLimited indicates the API rate limit was exceeded
	ErrAPIRateLimited = errors.New("API rate limit exceeded")

	// ErrTemporaryFailure indicates a temporary failure that should be retried
	ErrTemporaryFailure = errors.New("temporary failure")

	// ErrInvalidConfiguration indicates invalid configuration
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAuthenticationFailed indicates authentication failed
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrPermissionDenied indicates permission was denied
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidZoneID indicates zone ID is missing or invalid
	ErrInvalidZoneID = errors.New("invalid or missing zone ID")

	// ErrNoCredentials is returned when no API token is provided.
	ErrNoCredentials = errors.New("no API credentials provided: an API token is required")

	// ErrClientCreation wraps any failure to construct an API client.
	ErrClientCreation = errors.New("cloudflare client creation failed")
)

// APIError wraps a Cloudflare API error with additional context
type APIError struct {
	Operation string
	Resource  string
	Err       error
}

func (e *APIError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s %s: %v", e.Operation, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError
func NewAPIError(operation, resource string, err error) *APIError {
	return &APIError{
		Operation: operation,
		Resource:  resource,
		Err:       err,
	}
}

// Cloudflare error codes that identify a missing or duplicate object even
// when the HTTP status does not.
const (
	codeRecordNotFound       = 81044
	codeZoneAlreadyExists    = 1061
	codeRecordAlreadyExists  = 81057
	codeIdenticalRecordFound = 81058
)

// cloudflareError returns the structured API error carried by err. Every
// typed cloudflare-go error (NotFoundError, RequestError, ServiceError, ...)
// unwraps to *cloudflare.Error.
func cloudflareError(err error) (*cloudflare.Error, bool) {
	var cfErr *cloudflare.Error
	if errors.As(err, &cfErr) && cfErr != nil {
		return cfErr, true
	}
	return nil, false
}

// causeText is the lowercased text classifiers may match on. An APIError
// contributes only its cause so resource names and IDs are never matched.
func causeText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Err != nil {
		err = apiErr.Err
	}
	return strings.ToLower(err.Error())
}

func containsAny(s string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// IsNotFoundError checks if the error indicates a resource was not found
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrResourceNotFound) {
		return true
	}
	var notFound *cloudflare.NotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	if cfErr, ok := cloudflareError(err); ok {
		return cfErr.StatusCode == http.StatusNotFound || cfErr.InternalErrorCodeIs(codeRecordNotFound)
	}
	// Untyped errors, e.g. ZoneIDByName's "zone could not be found".
	return containsAny(causeText(err),
		"not found", "could not be found", "does not exist", "resource_not_found",
		"could not find", "http status 404", "http 404")
}

// IsConflictError checks if the error indicates a resource conflict
func IsConflictError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrResourceConflict) {
		return true
	}
	if cfErr, ok := cloudflareError(err); ok {
		return cfErr.StatusCode == http.StatusConflict ||
			cfErr.InternalErrorCodeIs(codeZoneAlreadyExists) ||
			cfErr.InternalErrorCodeIs(codeRecordAlreadyExists) ||
			cfErr.InternalErrorCodeIs(codeIdenticalRecordFound) ||
			cfErr.ErrorMessageContains("already exists")
	}
	return containsAny(causeText(err), "already exists", "conflict", "duplicate")
}

// IsRateLimitError checks if the error indicates rate limiting
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAPIRateLimited) {
		return true
	}
	if cfErr, ok := cloudflareError(err); ok {
		return cfErr.StatusCode == http.StatusTooManyRequests || cfErr.ClientRateLimited()
	}
	// cloudflare-go reports exhausted 429 retries as "exceeded available rate limit retries".
	return containsAny(causeText(err), "rate limit", "too many requests", "http status 429", "http 429")
}

// IsTemporaryError checks if the error is temporary and should be retried
func IsTemporaryError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTemporaryFailure) || IsRateLimitError(err) {
		return true
	}
	if cfErr, ok := cloudflareError(err); ok {
		return cfErr.StatusCode >= http.StatusInternalServerError
	}
	// cloudflare-go reports exhausted 5xx retries as
	// "received <status> response (HTTP 5xx), please try again later".
	return containsAny(causeText(err),
		"timeout", "connection refused", "temporary", "try again later",
		"http 5", "http status 5")
}

// IsAuthError checks if the error indicates an authentication/authorization failure
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAuthenticationFailed) || errors.Is(err, ErrPermissionDenied) {
		return true
	}
	var authn *cloudflare.AuthenticationError
	var authz *cloudflare.AuthorizationError
	if errors.As(err, &authn) || errors.As(err, &authz) {
		return true
	}
	if cfErr, ok := cloudflareError(err); ok {
		return cfErr.StatusCode == http.StatusUnauthorized || cfErr.StatusCode == http.StatusForbidden
	}
	return containsAny(causeText(err),
		"unauthorized", "authentication", "permission denied", "forbidden",
		"http status 401", "http status 403", "http 401", "http 403")
}

// WrapNotFound wraps an error as a not found error
func WrapNotFound(resource string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", resource, ErrResourceNotFound)
	}
	return fmt.Errorf("%s: %w: %v", resource, ErrResourceNotFound, err)
}

// containsSensitivePattern checks if the message contains any sensitive patterns
func containsSensitivePattern(msg string) bool {
	sensitivePatterns := []string{
		"token", "secret", "password", "credential", "api_key", "apikey",
		"bearer", "authorization",
	}
	lowerMsg := strings.ToLower(msg)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerMsg, pattern) {
			return true
		}
	}
	return false
}

// getGenericErrorMessage returns a generic error message based on error type
func getGenericErrorMessage(err error) string {
	switch {
	case IsAuthError(err):
		return "authentication failed - check credentials"
	case IsRateLimitError(err):
		return "API rate limit exceeded"
	case IsNotFoundError(err):
		return "resource not found"
	default:
		return "operation failed - check operator logs for details"
	}
}

// SanitizeErrorMessage removes potentially sensitive information from error messages
// before storing them in Status conditions
func SanitizeErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()

	// Truncate long error messages
	const maxLen = 512
	if len(msg) > maxLen {
		msg = msg[:maxLen-3] + "..."
	}

	// Check for sensitive patterns and return generic message if found
	if containsSensitivePattern(msg) {
		return getGenericErrorMessage(err)
	}

	return msg
}
