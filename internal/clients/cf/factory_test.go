// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf_test

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf/mock"
)

func TestDefaultClientFactory_NewClient(t *testing.T) {
	client, err := cf.NewDefaultClientFactory().NewClient(cf.ClientConfig{
		Log:      logr.Discard(),
		APIToken: "test-api-token",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestDefaultClientFactory_NewClient_NoCredentials(t *testing.T) {
	for _, token := range []string{"", "   "} {
		client, err := cf.NewDefaultClientFactory().NewClient(cf.ClientConfig{
			Log:      logr.Discard(),
			APIToken: token,
		})
		assert.Nil(t, client)
		assert.ErrorIs(t, err, cf.ErrNoCredentials)
		assert.ErrorIs(t, err, cf.ErrClientCreation)
	}
}

func TestGetAPIBaseURL(t *testing.T) {
	t.Setenv(cf.EnvAPIBaseURL, " http://localhost:8787/ ")
	assert.Equal(t, "http://localhost:8787", cf.GetAPIBaseURL())

	t.Setenv(cf.EnvAPIBaseURL, "")
	assert.Empty(t, cf.GetAPIBaseURL())
}

func TestMockClientFactory(t *testing.T) {
	ctrl := gomock.NewController(t)

	factory := mock.NewMockClientFactory(ctrl)
	factory.GetMockClient().EXPECT().
		GetZoneIDByName(gomock.Any(), "example.com").
		Return("zone-123", nil)

	client, err := factory.NewClient(cf.ClientConfig{Log: logr.Discard(), APIToken: "t"})
	require.NoError(t, err)

	id, err := client.GetZoneIDByName(t.Context(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "zone-123", id)
}

func TestMockClientFactoryWithError(t *testing.T) {
	expected := errors.New("factory error")
	factory := &mock.MockClientFactoryWithError{Err: expected}

	client, err := factory.NewClient(cf.ClientConfig{Log: logr.Discard()})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, expected)
}
