// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
)

const (
	// TokenSecretName is the secret holding the API token in fixtures.
	TokenSecretName = "cloudflare-api-token"
	// TokenSecretKey is the data key of the API token.
	TokenSecretKey = "token"
	// SecretToken is the token stored in the fixture secret.
	SecretToken = "secret-token"

	DefaultAccountID = "test-account-id"
	DefaultZoneID    = "test-zone-id"
	DefaultZoneName  = "example.com"
)

// Fixtures provides pre-built test resources in one namespace.
type Fixtures struct {
	Namespace string
}

// NewFixtures creates a new Fixtures instance.
func NewFixtures() *Fixtures {
	return &Fixtures{Namespace: TestNamespace}
}

// TokenSecret returns the secret holding SecretToken.
func (f *Fixtures) TokenSecret() *corev1.Secret {
	return NewSecretBuilder(TokenSecretName, f.Namespace).
		WithToken(TokenSecretKey, SecretToken).
		Build()
}

// ReadyAccount returns an Account reading its token from TokenSecret, already resolved.
func (f *Fixtures) ReadyAccount(name string) *v1alpha1.Account {
	return NewAccountBuilder(name, f.Namespace).
		WithID(DefaultAccountID).
		WithSecretRef(TokenSecretName, TokenSecretKey).
		Ready(DefaultAccountID).
		Build()
}

// ReadyZone returns a Zone of the given Account, already created on Cloudflare.
func (f *Fixtures) ReadyZone(name, account string) *v1alpha1.Zone {
	return NewZoneBuilder(name, f.Namespace).
		WithDomain(DefaultZoneName).
		WithAccountRef(account).
		Ready(DefaultZoneID).
		Build()
}

// ARecord returns an A record of the given Zone.
func (f *Fixtures) ARecord(name, zone, content string) *v1alpha1.DNSRecord {
	return NewDNSRecordBuilder(name, f.Namespace).
		WithZoneRef(zone).
		WithName("www." + DefaultZoneName).
		WithContent(content).
		Build()
}

// SamplesDir returns the absolute path of config/samples.
func SamplesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "config", "samples")
}

// LoadSample decodes config/samples/<name> into obj.
func LoadSample(name string, obj client.Object) error {
	data, err := os.ReadFile(filepath.Join(SamplesDir(), name))
	if err != nil {
		return fmt.Errorf("failed to read sample %s: %w", name, err)
	}
	if err := yaml.UnmarshalStrict(data, obj); err != nil {
		return fmt.Errorf("failed to decode sample %s: %w", name, err)
	}
	return nil
}
