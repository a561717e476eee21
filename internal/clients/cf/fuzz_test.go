// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"errors"
	"strings"
	"testing"
)

// FuzzSanitizeErrorMessage checks that credentials never survive sanitizing.
func FuzzSanitizeErrorMessage(f *testing.F) {
	f.Add("simple error")
	f.Add("error with token: abc123")
	f.Add("secret value: hunter2")
	f.Add("password: mypassword123")
	f.Add("API key: sk-1234567890")
	f.Add("bearer: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9")
	f.Add("HTTP status 403: Unauthorized to access requested resource (9109)")
	f.Add("")

	f.Fuzz(func(t *testing.T, errMsg string) {
		if errMsg == "" {
			return
		}

		sanitized := SanitizeErrorMessage(errors.New(errMsg))

		lower := strings.ToLower(errMsg)
		for _, pattern := range []string{"token", "secret", "password", "api_key", "apikey", "bearer", "authorization"} {
			if strings.Contains(lower, pattern) && strings.Contains(strings.ToLower(sanitized), pattern) {
				t.Errorf("sanitized message still contains %q: %q", pattern, sanitized)
			}
		}
		if len(sanitized) > 512 {
			t.Errorf("sanitized message too long: %d bytes", len(sanitized))
		}
	})
}

// FuzzErrorClassification checks the classifiers never panic and agree on
// wrapped sentinels.
func FuzzErrorClassification(f *testing.F) {
	f.Add("not found")
	f.Add("Record does not exist. (81044)")
	f.Add("HTTP status 409: zone already exists (1061)")
	f.Add("HTTP status 429: rate limited")
	f.Add("HTTP status 503: service unavailable")
	f.Add("random error message")

	f.Fuzz(func(t *testing.T, errMsg string) {
		err := errors.New(errMsg)
		_ = IsNotFoundError(err)
		_ = IsConflictError(err)
		_ = IsRateLimitError(err)
		_ = IsTemporaryError(err)
		_ = IsAuthError(err)

		if !IsNotFoundError(WrapNotFound("zone", err)) {
			t.Errorf("WrapNotFound(%q) is not classified as not found", errMsg)
		}
	})
}
