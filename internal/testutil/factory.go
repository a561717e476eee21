// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package testutil provides builders, assertions and reconciler wiring for tests.
package testutil

import (
	"github.com/cloudflare/cloudflare-go"
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/common"
	"github.com/StringKe/cloudflare-zone-operator/internal/credentials"
	"github.com/StringKe/cloudflare-zone-operator/test/mockserver"
)

const (
	// TestNamespace is the namespace test objects are created in.
	TestNamespace = "default"

	// DefaultToken is the process-wide token configured for tests.
	DefaultToken = "default-token"

	// TestInstance is the reporting instance of published events.
	TestInstance = "test-operator-0"
)

// NewScheme returns a scheme with the core types and the v1alpha1 kinds.
func NewScheme() *runtime.Scheme {
	s := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(s))
	utilruntime.Must(v1alpha1.AddToScheme(s))
	return s
}

// NewFakeClient returns a fake client serving objs with a status subresource for every kind.
func NewFakeClient(funcs *interceptor.Funcs, objs ...client.Object) client.WithWatch {
	b := fake.NewClientBuilder().
		WithScheme(NewScheme()).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.Account{}, &v1alpha1.Zone{}, &v1alpha1.DNSRecord{}, &v1alpha1.PageRule{})
	if funcs != nil {
		b = b.WithInterceptorFuncs(*funcs)
	}
	return b.Build()
}

// Env holds the collaborators a reconciler needs, wired over a fake client.
type Env struct {
	Client     client.WithWatch
	Recorder   *record.FakeRecorder
	Cache      *common.ClientCache
	APIFactory *common.APIClientFactory
	Notifier   *controller.DeletionNotifier
	Gate       *common.DependencyGate
}

// EnvOption customizes NewEnv.
type EnvOption func(*envConfig)

type envConfig struct {
	funcs   *interceptor.Funcs
	baseURL string
	options []cloudflare.Option
}

// WithInterceptor routes fake client calls through funcs.
func WithInterceptor(funcs interceptor.Funcs) EnvOption {
	return func(c *envConfig) {
		c.funcs = &funcs
	}
}

// WithBaseURL points created Cloudflare clients at url.
func WithBaseURL(url string, opts ...cloudflare.Option) EnvOption {
	return func(c *envConfig) {
		c.baseURL = url
		c.options = opts
	}
}

// NewEnv wires a fake client, a credential resolver using DefaultToken and a
// fresh client cache over factory.
func NewEnv(factory cf.ClientFactory, objs []client.Object, opts ...EnvOption) *Env {
	cfg := &envConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := NewFakeClient(cfg.funcs, objs...)
	cache := common.NewClientCache(factory, logr.Discard(), cfg.baseURL, cfg.options...)
	return &Env{
		Client:     c,
		Recorder:   record.NewFakeRecorder(32),
		Cache:      cache,
		APIFactory: common.NewAPIClientFactory(credentials.NewResolver(c, DefaultToken), cache),
		Notifier:   controller.NewDeletionNotifier(c, TestInstance),
		Gate:       common.NewDependencyGate(c),
	}
}

// NewMockServerEnv wires an Env whose clients talk to server through cloudflare-go.
func NewMockServerEnv(server *mockserver.Server, objs ...client.Object) *Env {
	return NewEnv(cf.NewDefaultClientFactory(), objs,
		WithBaseURL(server.URL(), cloudflare.UsingRateLimit(1000)))
}
