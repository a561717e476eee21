// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Import all Kubernetes client auth plugins (e.g. Azure, GCP, OIDC, etc.)
	// to ensure that exec-entrypoint and run can make use of them.
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"go.uber.org/zap/zapcore"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/certwatcher"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/metrics/filters"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	cloudflarev1alpha1 "github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/account"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/common"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/dnsrecord"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/pagerule"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/zone"
	"github.com/StringKe/cloudflare-zone-operator/internal/credentials"
	"github.com/StringKe/cloudflare-zone-operator/internal/monitoring"
	// +kubebuilder:scaffold:imports
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))

	utilruntime.Must(cloudflarev1alpha1.AddToScheme(scheme))
	// +kubebuilder:scaffold:scheme
}

// instanceName identifies this replica in published events.
func instanceName() string {
	if name := os.Getenv("POD_NAME"); name != "" {
		return name
	}
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return "cloudflare-zone-operator"
}

func main() {
	if err := run(); err != nil {
		setupLog.Error(err, "manager exited with error")
		os.Exit(1)
	}
}

// run parses flags and starts the manager. Traces are flushed after the
// manager stops, including when it fails to start.
func run() error {
	var metricsAddr string
	var metricsCertPath, metricsCertName, metricsCertKey string
	var enableLeaderElection bool
	var probeAddr string
	var secureMetrics bool
	var enableHTTP2 bool
	var apiToken, apiBaseURL string
	var otlpEndpoint string
	var otlpInsecure bool
	var maxConcurrentReconciles int
	flag.StringVar(&metricsAddr, "metrics-bind-address", "0", "The address the metrics endpoint binds to. "+
		"Use :8443 for HTTPS or :8080 for HTTP, or leave as 0 to disable the metrics service.")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", true,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	flag.BoolVar(&secureMetrics, "metrics-secure", true,
		"If set, the metrics endpoint is served securely via HTTPS. Use --metrics-secure=false to use HTTP instead.")
	flag.StringVar(&metricsCertPath, "metrics-cert-path", "",
		"The directory that contains the metrics server certificate.")
	flag.StringVar(&metricsCertName, "metrics-cert-name", "tls.crt", "The name of the metrics server certificate file.")
	flag.StringVar(&metricsCertKey, "metrics-cert-key", "tls.key", "The name of the metrics server key file.")
	flag.BoolVar(&enableHTTP2, "enable-http2", false,
		"If set, HTTP/2 will be enabled for the metrics server")
	flag.StringVar(&apiToken, "cloudflare-api-token", os.Getenv("CLOUDFLARE_API_TOKEN"),
		"API token used by resources that do not reference a secret.")
	flag.StringVar(&apiBaseURL, "cloudflare-api-base-url", os.Getenv("CLOUDFLARE_API_BASE_URL"),
		"Override the Cloudflare API endpoint, e.g. for a mock server.")
	flag.StringVar(&otlpEndpoint, "otlp-endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		"OTLP gRPC collector address. Tracing is disabled when empty.")
	flag.BoolVar(&otlpInsecure, "otlp-insecure", false, "Connect to the OTLP collector without TLS.")
	flag.IntVar(&maxConcurrentReconciles, "max-concurrent-reconciles", 1,
		"Maximum number of concurrent reconciles per resource kind.")
	opts := zap.Options{
		Development: true,
		TimeEncoder: zapcore.TimeEncoderOfLayout(time.RFC3339),
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	if apiToken == "" {
		setupLog.Info("WARNING: no default Cloudflare API token configured; " +
			"resources without a secretRef chain will fail with ClientConstructionFailure")
	}

	shutdownTracing, err := monitoring.SetupTracing(context.Background(), monitoring.TracingConfig{
		Endpoint: otlpEndpoint,
		Insecure: otlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("unable to set up tracing: %w", err)
	}
	return monitoring.RunAndFlush(shutdownTracing, 5*time.Second, func() error {
		return startManager(managerOptions{
			metricsAddr:             metricsAddr,
			metricsCertPath:         metricsCertPath,
			metricsCertName:         metricsCertName,
			metricsCertKey:          metricsCertKey,
			enableLeaderElection:    enableLeaderElection,
			probeAddr:               probeAddr,
			secureMetrics:           secureMetrics,
			enableHTTP2:             enableHTTP2,
			apiToken:                apiToken,
			apiBaseURL:              apiBaseURL,
			maxConcurrentReconciles: maxConcurrentReconciles,
		})
	})
}

type managerOptions struct {
	metricsAddr                                      string
	metricsCertPath, metricsCertName, metricsCertKey string
	enableLeaderElection                             bool
	probeAddr                                        string
	secureMetrics                                    bool
	enableHTTP2                                      bool
	apiToken, apiBaseURL                             string
	maxConcurrentReconciles                          int
}

// nolint:gocyclo
func startManager(o managerOptions) error {
	var tlsOpts []func(*tls.Config)

	// if the enable-http2 flag is false (the default), http/2 should be disabled
	// due to its vulnerabilities. More specifically, disabling http/2 will
	// prevent from being vulnerable to the HTTP/2 Stream Cancellation and
	// Rapid Reset CVEs. For more information see:
	// - https://github.com/advisories/GHSA-qppj-fm5r-hxr3
	// - https://github.com/advisories/GHSA-4374-p667-p6c8
	disableHTTP2 := func(c *tls.Config) {
		setupLog.Info("disabling http/2")
		c.NextProtos = []string{"http/1.1"}
	}

	if !o.enableHTTP2 {
		tlsOpts = append(tlsOpts, disableHTTP2)
	}

	metricsServerOptions := metricsserver.Options{
		BindAddress:   o.metricsAddr,
		SecureServing: o.secureMetrics,
		TLSOpts:       tlsOpts,
	}

	if o.secureMetrics {
		metricsServerOptions.FilterProvider = filters.WithAuthenticationAndAuthorization
	}

	if len(o.metricsCertPath) > 0 {
		setupLog.Info("Initializing metrics certificate watcher using provided certificates",
			"metrics-cert-path", o.metricsCertPath, "metrics-cert-name", o.metricsCertName, "metrics-cert-key", o.metricsCertKey)

		metricsCertWatcher, err := certwatcher.New(
			filepath.Join(o.metricsCertPath, o.metricsCertName),
			filepath.Join(o.metricsCertPath, o.metricsCertKey),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics certificate watcher: %w", err)
		}

		metricsServerOptions.TLSOpts = append(metricsServerOptions.TLSOpts, func(config *tls.Config) {
			config.GetCertificate = metricsCertWatcher.GetCertificate
		})
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsServerOptions,
		HealthProbeBindAddress: o.probeAddr,
		LeaderElection:         o.enableLeaderElection,
		LeaderElectionID:       "5d1c7e2a.cloudflare.com",
	})
	if err != nil {
		return fmt.Errorf("unable to start manager: %w", err)
	}

	// One client cache for every loop, keyed by token.
	clientCache := common.NewClientCache(cf.NewDefaultClientFactory(), ctrl.Log.WithName("cloudflare"), o.apiBaseURL)
	apiFactory := common.NewAPIClientFactory(credentials.NewResolver(mgr.GetClient(), o.apiToken), clientCache)
	notifier := controller.NewDeletionNotifier(mgr.GetClient(), instanceName())

	if err = (&account.Reconciler{
		Client:                  mgr.GetClient(),
		Scheme:                  mgr.GetScheme(),
		APIFactory:              apiFactory,
		Notifier:                notifier,
		MaxConcurrentReconciles: o.maxConcurrentReconciles,
	}).SetupWithManager(mgr); err != nil {
		return fmt.Errorf("unable to create controller Account: %w", err)
	}
	if err = (&zone.Reconciler{
		Client:                  mgr.GetClient(),
		Scheme:                  mgr.GetScheme(),
		APIFactory:              apiFactory,
		Notifier:                notifier,
		MaxConcurrentReconciles: o.maxConcurrentReconciles,
	}).SetupWithManager(mgr); err != nil {
		return fmt.Errorf("unable to create controller Zone: %w", err)
	}
	if err = (&dnsrecord.Reconciler{
		Client:                  mgr.GetClient(),
		Scheme:                  mgr.GetScheme(),
		APIFactory:              apiFactory,
		Notifier:                notifier,
		MaxConcurrentReconciles: o.maxConcurrentReconciles,
	}).SetupWithManager(mgr); err != nil {
		return fmt.Errorf("unable to create controller DNSRecord: %w", err)
	}
	if err = (&pagerule.Reconciler{
		Client:                  mgr.GetClient(),
		Scheme:                  mgr.GetScheme(),
		APIFactory:              apiFactory,
		Notifier:                notifier,
		MaxConcurrentReconciles: o.maxConcurrentReconciles,
	}).SetupWithManager(mgr); err != nil {
		return fmt.Errorf("unable to create controller PageRule: %w", err)
	}
	// +kubebuilder:scaffold:builder

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		return fmt.Errorf("unable to set up health check: %w", err)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		return fmt.Errorf("unable to set up ready check: %w", err)
	}

	setupLog.Info("starting manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		return fmt.Errorf("problem running manager: %w", err)
	}
	return nil
}
