// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"errors"
	"time"

	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
)

// Requeue intervals.
const (
	// RequeueSuccess re-checks a reconciled object for drift on the Cloudflare side.
	RequeueSuccess = 5 * time.Minute

	// RequeueNotFound is used while a referenced object does not exist.
	RequeueNotFound = 30 * time.Second

	// RequeueNotReady is used while a referenced object exists but is not ready.
	RequeueNotReady = 60 * time.Second

	// RequeueUpstream is used after a failed Cloudflare call.
	RequeueUpstream = 60 * time.Second

	// RequeueCredentials is used when a token could not be obtained or used.
	RequeueCredentials = 60 * time.Second

	// RequeuePermanent is used for failures that need a spec edit.
	RequeuePermanent = 5 * time.Minute
)

// RequeueFor returns the requeue interval for the outcome err. An interval
// carried by a *controller.Error takes precedence.
func RequeueFor(err error) time.Duration {
	var typed *controller.Error
	if errors.As(err, &typed) && typed.RequeueAfter > 0 {
		return typed.RequeueAfter
	}

	switch controller.KindOf(err) {
	case controller.None:
		return RequeueSuccess
	case controller.ReferenceNotFound:
		return RequeueNotFound
	case controller.DependencyNotReady:
		return RequeueNotReady
	case controller.SecretKeyMissing, controller.TokenDecodeFailure, controller.ClientConstructionFailure:
		return RequeueCredentials
	case controller.UnsupportedRecordType, controller.InvalidAddressLiteral, controller.ConfigurationInvalid:
		return RequeuePermanent
	case controller.PlatformAPIFailure:
		return 0
	default:
		return RequeueUpstream
	}
}

// Settle turns the outcome err of an apply pass into a status write and a
// requeue interval. Platform failures skip the status write and are returned.
func Settle(err error, writeStatus func(error) error) (controller.Outcome, error) {
	if controller.IsPlatform(err) {
		return controller.Outcome{}, err
	}
	if werr := writeStatus(err); werr != nil {
		return controller.Outcome{}, werr
	}
	return controller.Outcome{RequeueAfter: RequeueFor(err), Err: err}, nil
}
