// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/cloudflare/cloudflare-go"
	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		resource  string
		err       error
		wantMsg   string
	}{
		{
			name:      "with resource",
			operation: "create zone",
			resource:  "example.com",
			err:       errors.New("connection refused"),
			wantMsg:   "create zone example.com: connection refused",
		},
		{
			name:      "without resource",
			operation: "list accounts",
			err:       errors.New("bad gateway"),
			wantMsg:   "list accounts: bad gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewAPIError(tt.operation, tt.resource, tt.err)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
			assert.ErrorIs(t, apiErr, tt.err)
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrResourceNotFound, true},
		{"wrapped sentinel", fmt.Errorf("zone: %w", ErrResourceNotFound), true},
		{"api message", errors.New("zone not found (1001)"), true},
		{"zone lookup by name", errors.New("zone could not be found"), true},
		{"does not exist", errors.New("record does not exist"), true},
		{"status code", errors.New("HTTP 404"), true},
		{"typed not found", &cloudflare.NotFoundError{}, true},
		{"typed 404", cloudflare.NewNotFoundError(&cloudflare.Error{StatusCode: http.StatusNotFound}), true},
		{"record code on a 400", NewAPIError("get DNS record", "abc", cloudflare.NewRequestError(&cloudflare.Error{
			StatusCode: http.StatusBadRequest, ErrorCodes: []int{81044},
		})), true},
		{"typed 500", cloudflare.NewServiceError(&cloudflare.Error{StatusCode: http.StatusInternalServerError}), false},
		{"typed 400 mentioning not found", cloudflare.NewRequestError(&cloudflare.Error{
			StatusCode: http.StatusBadRequest, ErrorMessages: []string{"zone not found in filter"},
			Errors: []cloudflare.ResponseInfo{{Code: 1004, Message: "zone not found in filter"}},
		}), false},
		{"id containing 404", NewAPIError("get DNS record", "9a3f404c1e",
			errors.New("received internal server error response (HTTP 500), please try again later")), false},
		{"id containing not found", NewAPIError("get zone", "not-found-zone", errors.New("bad gateway")), false},
		{"case insensitive", errors.New("DNS Record NOT FOUND"), true},
		{"wrapped in APIError", NewAPIError("get zone", "abc", errors.New("zone not found")), true},
		{"unrelated", errors.New("connection timeout"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFoundError(tt.err))
		})
	}
}

func TestIsConflictError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrResourceConflict, true},
		{"zone exists", errors.New("example.com already exists (1061)"), true},
		{"conflict", errors.New("Resource conflict"), true},
		{"duplicate", errors.New("duplicate record"), true},
		{"typed zone exists", NewAPIError("create zone", "example.com", cloudflare.NewRequestError(&cloudflare.Error{
			StatusCode: http.StatusBadRequest, ErrorCodes: []int{1061}, ErrorMessages: []string{"example.com already exists"},
		})), true},
		{"typed 409", cloudflare.NewRequestError(&cloudflare.Error{StatusCode: http.StatusConflict}), true},
		{"typed identical record", cloudflare.NewRequestError(&cloudflare.Error{
			StatusCode: http.StatusBadRequest, ErrorCodes: []int{81058},
		}), true},
		{"typed validation failure", cloudflare.NewRequestError(&cloudflare.Error{
			StatusCode: http.StatusBadRequest, ErrorCodes: []int{1004}, ErrorMessages: []string{"Validation failed"},
		}), false},
		{"name containing conflict", NewAPIError("create zone", "conflict.example", errors.New("bad gateway")), false},
		{"unrelated", errors.New("bad request"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConflictError(tt.err))
		})
	}
}

func TestIsRateLimitAndTemporaryError(t *testing.T) {
	assert.True(t, IsRateLimitError(ErrAPIRateLimited))
	assert.True(t, IsRateLimitError(errors.New("HTTP status 429: Too Many Requests")))
	assert.False(t, IsRateLimitError(nil))
	assert.False(t, IsRateLimitError(errors.New("zone not found")))

	assert.True(t, IsTemporaryError(ErrAPIRateLimited))
	assert.True(t, IsTemporaryError(fmt.Errorf("op: %w", ErrTemporaryFailure)))
	assert.True(t, IsTemporaryError(errors.New("dial tcp: connection refused")))
	assert.True(t, IsTemporaryError(errors.New("HTTP status 503")))
	assert.False(t, IsTemporaryError(nil))
	assert.False(t, IsTemporaryError(errors.New("invalid record content")))

	// cloudflare-go's text once 5xx and 429 retries are exhausted.
	assert.True(t, IsTemporaryError(NewAPIError("get DNS record", "rec-1",
		errors.New("received internal server error response (HTTP 500), please try again later"))))
	assert.True(t, IsRateLimitError(errors.New("exceeded available rate limit retries")))

	assert.True(t, IsRateLimitError(cloudflare.NewRatelimitError(&cloudflare.Error{StatusCode: http.StatusTooManyRequests})))
	assert.True(t, IsTemporaryError(cloudflare.NewServiceError(&cloudflare.Error{StatusCode: http.StatusBadGateway})))
	assert.False(t, IsTemporaryError(cloudflare.NewRequestError(&cloudflare.Error{StatusCode: http.StatusBadRequest})))
	assert.False(t, IsRateLimitError(NewAPIError("get zone", "zone-429", errors.New("bad request"))))
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"authentication sentinel", ErrAuthenticationFailed, true},
		{"permission sentinel", ErrPermissionDenied, true},
		{"forbidden", errors.New("HTTP status 403: Forbidden"), true},
		{"unauthorized", errors.New("Unauthorized to access requested resource (9109)"), true},
		{"unrelated", errors.New("zone not found"), false},
		{"typed 403", cloudflare.NewAuthenticationError(&cloudflare.Error{StatusCode: http.StatusForbidden}), true},
		{"typed 401", cloudflare.NewAuthorizationError(&cloudflare.Error{StatusCode: http.StatusUnauthorized}), true},
		{"typed 404", cloudflare.NewNotFoundError(&cloudflare.Error{StatusCode: http.StatusNotFound}), false},
		{"id containing 403", NewAPIError("get DNS record", "rec403", errors.New("bad gateway")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthError(tt.err))
		})
	}
}

func TestWrapNotFound(t *testing.T) {
	err := WrapNotFound("zone/example.com", nil)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Equal(t, "zone/example.com: resource not found", err.Error())

	err = WrapNotFound("zone/example.com", errors.New("gone"))
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Contains(t, err.Error(), "gone")
}

func TestSanitizeErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		wantNot []string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "safe error message",
			err:  errors.New("create zone example.com: example.com already exists (1061)"),
			want: "create zone example.com: example.com already exists (1061)",
		},
		{
			name:    "message with token",
			err:     errors.New("invalid token: abc123xyz"),
			want:    "operation failed - check operator logs for details",
			wantNot: []string{"abc123xyz"},
		},
		{
			name:    "auth failure mentioning bearer",
			err:     errors.New("403 forbidden: bearer rejected"),
			want:    "authentication failed - check credentials",
			wantNot: []string{"bearer"},
		},
		{
			name: "not found mentioning secret",
			err:  errors.New("secret cf-token not found"),
			want: "resource not found",
		},
		{
			name: "long message is truncated",
			err:  errors.New(strings.Repeat("a", 1000)),
			want: strings.Repeat("a", 509) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeErrorMessage(tt.err)
			assert.Equal(t, tt.want, got)
			for _, notWant := range tt.wantNot {
				assert.NotContains(t, strings.ToLower(got), strings.ToLower(notWant))
			}
		})
	}
}

func TestContainsSensitivePattern(t *testing.T) {
	assert.False(t, containsSensitivePattern(""))
	assert.False(t, containsSensitivePattern("zone created"))
	assert.True(t, containsSensitivePattern("Invalid API Token"))
	assert.True(t, containsSensitivePattern("Authorization header missing"))
	assert.True(t, containsSensitivePattern("apikey required"))
}
