// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

//go:build e2e

package scenarios

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StringKe/cloudflare-zone-operator/test/e2e/framework"
	"github.com/StringKe/cloudflare-zone-operator/test/mockserver"
)

// Common test constants used across E2E scenarios
const (
	testSecretName = "cloudflare-api-token"
	testSecretKey  = "token"
	testAPIToken   = "test-api-token"
	testAccountID  = mockserver.DefaultAccountID
	testZoneID     = mockserver.DefaultZoneID
	testDomain     = mockserver.DefaultZoneName
)

// setup connects to the cluster, waits for the operator and prepares namespace.
func setup(t *testing.T, namespace string) *framework.Framework {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	opts := framework.DefaultOptions()
	opts.UseExistingCluster = true
	f, err := framework.New(opts)
	require.NoError(t, err)
	t.Cleanup(f.Cleanup)

	require.NoError(t, f.WaitForOperatorReady(framework.DefaultTimeout))
	require.NoError(t, f.ResetMockServer())
	require.NoError(t, f.SetupTestNamespace(namespace))
	t.Cleanup(func() { _ = f.CleanupTestNamespace(namespace) })
	require.NoError(t, f.CreateTokenSecret(namespace, testSecretName, testSecretKey, testAPIToken))
	return f
}
