// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package credentials

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
)

// SecretResolver reads API tokens out of Secrets.
type SecretResolver struct {
	client client.Reader
}

// NewSecretResolver creates a SecretResolver backed by the given reader.
func NewSecretResolver(c client.Reader) *SecretResolver {
	return &SecretResolver{client: c}
}

// Fetch returns the token stored under ref.Key of the Secret ref.Name in namespace.
// Surrounding whitespace is removed. Kubernetes errors other than NotFound are
// returned as is; there are no retries at this layer.
func (r *SecretResolver) Fetch(ctx context.Context, ref v1alpha1.SecretKeyReference, namespace string) (string, error) {
	secret := &corev1.Secret{}
	if err := r.client.Get(ctx, types.NamespacedName{Name: ref.Name, Namespace: namespace}, secret); err != nil {
		if apierrors.IsNotFound(err) {
			return "", &NotFoundError{Kind: kindSecret, Name: ref.Name}
		}
		return "", fmt.Errorf("failed to get secret %s/%s: %w", namespace, ref.Name, err)
	}

	raw, ok := secret.Data[ref.Key]
	if !ok {
		return "", fmt.Errorf("%w: key %q not present in secret %q", ErrSecretKeyMissing, ref.Key, ref.Name)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: secret %q key %q", ErrTokenEncoding, ref.Name, ref.Key)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("%w: secret %q key %q is empty", ErrTokenEncoding, ref.Name, ref.Key)
	}
	return token, nil
}
