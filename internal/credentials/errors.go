// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package credentials

import (
	"errors"
	"fmt"
)

var (
	// ErrReferenceNotFound matches any *NotFoundError.
	ErrReferenceNotFound = errors.New("referenced object not found")

	// ErrSecretNotFound matches a *NotFoundError for a Secret.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretKeyMissing indicates the Secret exists but lacks the referenced key.
	ErrSecretKeyMissing = errors.New("secret key missing")

	// ErrTokenEncoding indicates the Secret value is not usable text.
	ErrTokenEncoding = errors.New("token is not valid UTF-8 text")

	// ErrReferenceChainTooDeep indicates a cycle or an overly long reference chain.
	ErrReferenceChainTooDeep = errors.New("credential reference chain too deep")
)

// NotFoundError reports a referenced object that does not exist.
type NotFoundError struct {
	// Kind is "secret", "zone" or "account".
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Is lets errors.Is match the package sentinels.
func (e *NotFoundError) Is(target error) bool {
	switch target {
	case ErrReferenceNotFound:
		return true
	case ErrSecretNotFound:
		return e.Kind == kindSecret
	default:
		return false
	}
}

const (
	kindSecret  = "secret"
	kindZone    = "zone"
	kindAccount = "account"
)
