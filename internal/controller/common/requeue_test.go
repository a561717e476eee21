// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package common

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
	"github.com/StringKe/cloudflare-zone-operator/internal/credentials"
)

func TestRequeueFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want time.Duration
	}{
		{"success", nil, 5 * time.Minute},
		{"reference not found", &credentials.NotFoundError{Kind: "secret", Name: "s"}, 30 * time.Second},
		{"dependency not ready", controller.Errorf(controller.DependencyNotReady, "x"), 60 * time.Second},
		{"secret key missing", credentials.ErrSecretKeyMissing, 60 * time.Second},
		{"token encoding", credentials.ErrTokenEncoding, 60 * time.Second},
		{"client construction", fmt.Errorf("%w: %w", cf.ErrClientCreation, cf.ErrNoCredentials), 60 * time.Second},
		{"unsupported type", controller.Errorf(controller.UnsupportedRecordType, "SRV"), 5 * time.Minute},
		{"invalid address", controller.Errorf(controller.InvalidAddressLiteral, "bad"), 5 * time.Minute},
		{"configuration invalid", controller.Errorf(controller.ConfigurationInvalid, "illegal"), 5 * time.Minute},
		{"upstream failure", errors.New("bad gateway"), 60 * time.Second},
		{"platform failure", controller.Platform(errors.New("x")), 0},
		{"carried interval", &controller.Error{Kind: controller.UpstreamAPIFailure, RequeueAfter: 7 * time.Second}, 7 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequeueFor(tt.err))
		})
	}
}

func TestSettle(t *testing.T) {
	var written []error
	write := func(err error) error {
		written = append(written, err)
		return nil
	}

	out, err := Settle(nil, write)
	assert.NoError(t, err)
	assert.Equal(t, 5*time.Minute, out.RequeueAfter)
	assert.NoError(t, out.Err)

	notReady := controller.Errorf(controller.DependencyNotReady, "dependency zone/z is not ready")
	notReady.RequeueAfter = time.Minute
	out, err = Settle(notReady, write)
	assert.NoError(t, err)
	assert.Equal(t, time.Minute, out.RequeueAfter)
	assert.Equal(t, notReady, out.Err)

	platform := controller.Platform(errors.New("etcd down"))
	_, err = Settle(platform, write)
	assert.Equal(t, platform, err)

	assert.Len(t, written, 2, "platform failures are not written to status")

	writeFails := errors.New("patch failed")
	_, err = Settle(nil, func(error) error { return controller.Platform(writeFails) })
	assert.ErrorIs(t, err, writeFails)
}
