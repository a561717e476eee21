// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package framework provides the E2E test framework for cloudflare-zone-operator.
// It manages the Kind cluster lifecycle, talks to a mock Cloudflare API
// deployed next to the operator and offers polling helpers.
package framework

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
)

const (
	// DefaultTimeout is the default timeout for operations
	DefaultTimeout = 3 * time.Minute
	// DefaultInterval is the default polling interval
	DefaultInterval = 2 * time.Second
	// KindClusterName is the name of the Kind cluster
	KindClusterName = "cloudflare-zone-operator-e2e"
	// OperatorNamespace is the namespace where the operator is deployed
	OperatorNamespace = "cloudflare-zone-operator-system"
	// OperatorDeployment is the name of the operator deployment
	OperatorDeployment = "cloudflare-zone-operator-controller-manager"
)

// Framework provides utilities for E2E testing
type Framework struct {
	Client         client.Client
	KubeconfigPath string
	ClusterCreated bool
	// MockServerURL is the mock Cloudflare API as reachable from the test
	// process. Empty when the operator talks to the real API.
	MockServerURL string

	ctx    context.Context
	cancel context.CancelFunc
}

// Options configures the test framework
type Options struct {
	// UseExistingCluster uses an existing cluster instead of creating a Kind cluster
	UseExistingCluster bool
	// KubeconfigPath is the path to the kubeconfig file
	KubeconfigPath string
	// MockServerURL is where the test process reaches the mock server,
	// e.g. through a port-forward.
	MockServerURL string
}

// DefaultOptions returns options read from the environment.
func DefaultOptions() *Options {
	return &Options{
		UseExistingCluster: os.Getenv("USE_EXISTING_CLUSTER") == "true",
		KubeconfigPath:     os.Getenv("KUBECONFIG"),
		MockServerURL:      os.Getenv("E2E_MOCKSERVER_URL"),
	}
}

// New creates a new test framework
func New(opts *Options) (*Framework, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Framework{
		MockServerURL: strings.TrimSuffix(opts.MockServerURL, "/"),
		ctx:           ctx,
		cancel:        cancel,
	}

	if !opts.UseExistingCluster {
		if err := f.createKindCluster(); err != nil {
			f.Cleanup()
			return nil, fmt.Errorf("create kind cluster: %w", err)
		}
		f.ClusterCreated = true
		f.KubeconfigPath = kindKubeconfigPath()
	} else {
		f.KubeconfigPath = opts.KubeconfigPath
		if f.KubeconfigPath == "" {
			f.KubeconfigPath = filepath.Join(os.Getenv("HOME"), ".kube", "config")
		}
	}

	if err := f.createClient(); err != nil {
		f.Cleanup()
		return nil, fmt.Errorf("create client: %w", err)
	}

	return f, nil
}

func kindKubeconfigPath() string {
	return filepath.Join(os.TempDir(), KindClusterName+"-kubeconfig")
}

// createKindCluster creates a Kind cluster for E2E testing
func (f *Framework) createKindCluster() error {
	output, err := exec.Command("kind", "get", "clusters").Output()
	if err == nil && strings.Contains(string(output), KindClusterName) {
		fmt.Printf("Kind cluster %s already exists\n", KindClusterName)
	} else {
		fmt.Printf("Creating Kind cluster %s...\n", KindClusterName)
		createCmd := exec.Command("kind", "create", "cluster", "--name", KindClusterName)
		createCmd.Stdout = os.Stdout
		createCmd.Stderr = os.Stderr
		if err := createCmd.Run(); err != nil {
			return fmt.Errorf("kind create cluster: %w", err)
		}
	}

	kubeconfig, err := exec.Command("kind", "get", "kubeconfig", "--name", KindClusterName).Output()
	if err != nil {
		return fmt.Errorf("get kubeconfig: %w", err)
	}
	if err := os.WriteFile(kindKubeconfigPath(), kubeconfig, 0600); err != nil {
		return fmt.Errorf("write kubeconfig: %w", err)
	}
	return nil
}

func (f *Framework) createClient() error {
	config, err := clientcmd.BuildConfigFromFlags("", f.KubeconfigPath)
	if err != nil {
		return fmt.Errorf("build config: %w", err)
	}

	s := runtime.NewScheme()
	if err := scheme.AddToScheme(s); err != nil {
		return fmt.Errorf("add core scheme: %w", err)
	}
	if err := v1alpha1.AddToScheme(s); err != nil {
		return fmt.Errorf("add v1alpha1 scheme: %w", err)
	}

	f.Client, err = client.New(config, client.Options{Scheme: s})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// Cleanup cleans up the test framework resources
func (f *Framework) Cleanup() {
	if f.cancel != nil {
		f.cancel()
	}

	if f.ClusterCreated {
		fmt.Printf("Deleting Kind cluster %s...\n", KindClusterName)
		_ = exec.Command("kind", "delete", "cluster", "--name", KindClusterName).Run()
	}
}

// Context returns the framework context
func (f *Framework) Context() context.Context {
	return f.ctx
}

// SetupTestNamespace creates a test namespace
func (f *Framework) SetupTestNamespace(name string) error {
	ns := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}}
	if err := f.Client.Create(f.ctx, ns); err != nil && !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("create namespace %s: %w", name, err)
	}
	return nil
}

// CleanupTestNamespace deletes a test namespace
func (f *Framework) CleanupTestNamespace(name string) error {
	ns := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}}
	if err := f.Client.Delete(f.ctx, ns); err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("delete namespace %s: %w", name, err)
	}
	return nil
}

// CreateTokenSecret creates a secret holding an API token under key.
func (f *Framework) CreateTokenSecret(namespace, name, key, token string) error {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		StringData: map[string]string{key: token},
	}
	if err := f.Client.Create(f.ctx, secret); err != nil && !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("create secret %s/%s: %w", namespace, name, err)
	}
	return nil
}

// WaitForOperatorReady waits for the operator deployment to be available
func (f *Framework) WaitForOperatorReady(timeout time.Duration) error {
	key := types.NamespacedName{Name: OperatorDeployment, Namespace: OperatorNamespace}
	return wait.PollUntilContextTimeout(f.ctx, DefaultInterval, timeout, true, func(ctx context.Context) (bool, error) {
		var deploy appsv1.Deployment
		if err := f.Client.Get(ctx, key, &deploy); err != nil {
			if apierrors.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		return deploy.Status.AvailableReplicas > 0, nil
	})
}

// WaitForReady waits until the Ready condition of obj has the expected status.
func (f *Framework) WaitForReady(obj client.Object, expected metav1.ConditionStatus, timeout time.Duration) error {
	return f.WaitForStatusField(obj, func(o client.Object) bool {
		cond := meta.FindStatusCondition(conditionsOf(o), controller.ConditionReady)
		return cond != nil && cond.Status == expected
	}, timeout)
}

// WaitForStatusField polls obj until fieldChecker accepts it.
func (f *Framework) WaitForStatusField(obj client.Object, fieldChecker func(client.Object) bool, timeout time.Duration) error {
	key := client.ObjectKeyFromObject(obj)
	return wait.PollUntilContextTimeout(f.ctx, DefaultInterval, timeout, true, func(ctx context.Context) (bool, error) {
		if err := f.Client.Get(ctx, key, obj); err != nil {
			if apierrors.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		return fieldChecker(obj), nil
	})
}

// WaitForDeletion waits for a resource to be deleted
func (f *Framework) WaitForDeletion(obj client.Object, timeout time.Duration) error {
	key := client.ObjectKeyFromObject(obj)
	return wait.PollUntilContextTimeout(f.ctx, DefaultInterval, timeout, true, func(ctx context.Context) (bool, error) {
		err := f.Client.Get(ctx, key, obj)
		if apierrors.IsNotFound(err) {
			return true, nil
		}
		return false, err
	})
}

// DeleteResourceAndWait deletes a resource and waits for its finalizer to be released.
func (f *Framework) DeleteResourceAndWait(obj client.Object, timeout time.Duration) error {
	if err := f.Client.Delete(f.ctx, obj); err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("delete resource: %w", err)
	}
	return f.WaitForDeletion(obj, timeout)
}

// EventsFor lists the events of the given reason in namespace.
func (f *Framework) EventsFor(namespace, reason string) ([]corev1.Event, error) {
	events := &corev1.EventList{}
	if err := f.Client.List(f.ctx, events, client.InNamespace(namespace)); err != nil {
		return nil, err
	}
	var matched []corev1.Event
	for _, e := range events.Items {
		if e.Reason == reason {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// ResetMockServer restores the mock server's default account and zone.
func (f *Framework) ResetMockServer() error {
	if f.MockServerURL == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(f.ctx, http.MethodPost, f.MockServerURL+"/admin/reset", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("reset mock server: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reset mock server: HTTP %d", resp.StatusCode)
	}
	return nil
}

func conditionsOf(obj client.Object) []metav1.Condition {
	switch typed := obj.(type) {
	case *v1alpha1.Account:
		return typed.Status.Conditions
	case *v1alpha1.Zone:
		return typed.Status.Conditions
	case *v1alpha1.DNSRecord:
		return typed.Status.Conditions
	case *v1alpha1.PageRule:
		return typed.Status.Conditions
	default:
		return nil
	}
}
