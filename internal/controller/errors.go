// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

import (
	"errors"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/credentials"
)

// ErrorKind classifies reconcile failures. It is used as the Ready condition
// reason and as the error label of the failure metric.
type ErrorKind string

const (
	None                      ErrorKind = "None"
	ReferenceNotFound         ErrorKind = "ReferenceNotFound"
	SecretKeyMissing          ErrorKind = "SecretKeyMissing"
	TokenDecodeFailure        ErrorKind = "TokenDecodeFailure"
	ClientConstructionFailure ErrorKind = "ClientConstructionFailure"
	UnsupportedRecordType     ErrorKind = "UnsupportedRecordType"
	InvalidAddressLiteral     ErrorKind = "InvalidAddressLiteral"
	DependencyNotReady        ErrorKind = "DependencyNotReady"
	UpstreamAPIFailure        ErrorKind = "UpstreamAPIFailure"
	PlatformAPIFailure        ErrorKind = "PlatformAPIFailure"
	ConfigurationInvalid      ErrorKind = "ConfigurationInvalid"
)

// Permanent reports whether the failure needs a spec edit to go away.
func (k ErrorKind) Permanent() bool {
	switch k {
	case UnsupportedRecordType, InvalidAddressLiteral, ConfigurationInvalid:
		return true
	default:
		return false
	}
}

// Error is a classified reconcile failure.
type Error struct {
	Kind ErrorKind
	Err  error
	// RequeueAfter overrides the interval derived from Kind when non-zero.
	RequeueAfter time.Duration
}

// NewError wraps err with kind.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Errorf formats a new error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Platform marks err as a failed Kubernetes API call.
func Platform(err error) *Error {
	return &Error{Kind: PlatformAPIFailure, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies err. A nil error is None.
func KindOf(err error) ErrorKind {
	if err == nil {
		return None
	}

	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}

	switch {
	case errors.Is(err, credentials.ErrReferenceNotFound):
		return ReferenceNotFound
	case errors.Is(err, credentials.ErrSecretKeyMissing):
		return SecretKeyMissing
	case errors.Is(err, credentials.ErrTokenEncoding):
		return TokenDecodeFailure
	case errors.Is(err, credentials.ErrReferenceChainTooDeep):
		return ConfigurationInvalid
	case errors.Is(err, cf.ErrClientCreation), errors.Is(err, cf.ErrNoCredentials):
		return ClientConstructionFailure
	case errors.Is(err, cf.ErrInvalidConfiguration), errors.Is(err, cf.ErrInvalidZoneID):
		return ConfigurationInvalid
	}

	var status apierrors.APIStatus
	if errors.As(err, &status) {
		return PlatformAPIFailure
	}
	return UpstreamAPIFailure
}

// IsPlatform reports whether err is a failed Kubernetes API call. Such errors
// are returned to controller-runtime instead of being written to status.
func IsPlatform(err error) bool {
	return err != nil && KindOf(err) == PlatformAPIFailure
}

// StatusMessage renders err for status and events. Messages that came from
// Cloudflare or from client construction are sanitized; the operator's own
// messages never carry credentials and are kept as is.
func StatusMessage(err error) string {
	if err == nil {
		return ""
	}
	switch KindOf(err) {
	case UpstreamAPIFailure:
		return cf.SanitizeErrorMessage(err)
	case ClientConstructionFailure:
		if errors.Is(err, cf.ErrNoCredentials) {
			return err.Error()
		}
		return cf.SanitizeErrorMessage(err)
	default:
		return err.Error()
	}
}
