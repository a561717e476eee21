// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package account implements the controller for the Account CRD. It resolves
// the Cloudflare account an Account points at and records where its token
// came from. Nothing is created on Cloudflare.
package account

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	crcontroller "sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/common"
)

// Reconciler reconciles an Account object.
type Reconciler struct {
	client.Client
	Scheme     *runtime.Scheme
	Recorder   record.EventRecorder
	APIFactory *common.APIClientFactory
	Notifier   *controller.DeletionNotifier

	MaxConcurrentReconciles int
}

// observation is the part of status derived from Cloudflare.
type observation struct {
	id       string
	name     string
	tokenRef string
}

// +kubebuilder:rbac:groups=cloudflare.com,resources=accounts,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=accounts/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=accounts/finalizers,verbs=update
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	account := &v1alpha1.Account{}
	if err := r.Get(ctx, req.NamespacedName, account); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	lifecycle := &controller.Lifecycle{
		Client:    r.Client,
		Kind:      controller.KindAccount,
		Finalizer: controller.FinalizerAccount,
		Notifier:  r.Notifier,
	}
	return lifecycle.Run(ctx, account, func(ctx context.Context) (controller.Outcome, error) {
		obs, err := r.sync(ctx, account)
		return common.Settle(err, func(err error) error {
			return r.writeStatus(ctx, account, obs, err)
		})
	})
}

func (r *Reconciler) sync(ctx context.Context, account *v1alpha1.Account) (observation, error) {
	obs := observation{
		id:       account.Status.AccountID,
		name:     account.Status.AccountName,
		tokenRef: account.Status.TokenRef,
	}

	if account.Name == controller.IllegalObjectName {
		return obs, controller.Errorf(controller.ConfigurationInvalid, "object name %q is reserved", account.Name)
	}
	if account.Spec.ID == "" && account.Spec.Name == "" {
		return obs, controller.Errorf(controller.ConfigurationInvalid, "one of spec.id or spec.name is required")
	}

	api, err := r.APIFactory.GetClient(ctx, account, account.Namespace)
	if err != nil {
		return obs, err
	}
	obs.tokenRef = api.TokenSource

	found, err := lookup(ctx, api.API, account.Spec)
	if err != nil {
		return obs, err
	}
	obs.id = found.ID
	obs.name = found.Name

	log.FromContext(ctx).V(1).Info("Account resolved", "accountId", found.ID, "accountName", found.Name)
	return obs, nil
}

// lookup finds the account by id, or by exact name when no id is given.
func lookup(ctx context.Context, api cf.CloudflareClient, spec v1alpha1.AccountSpec) (*cf.AccountResult, error) {
	if spec.ID != "" {
		return api.GetAccount(ctx, spec.ID)
	}

	accounts, err := api.ListAccounts(ctx, spec.Name)
	if err != nil {
		return nil, err
	}
	switch len(accounts) {
	case 0:
		return nil, controller.Errorf(controller.ReferenceNotFound, "account %q not found", spec.Name)
	case 1:
		return &accounts[0], nil
	default:
		return nil, controller.Errorf(controller.ConfigurationInvalid,
			"%d accounts are named %q, set spec.id", len(accounts), spec.Name)
	}
}

func (r *Reconciler) writeStatus(ctx context.Context, account *v1alpha1.Account, obs observation, err error) error {
	patch := &v1alpha1.Account{
		ObjectMeta: controller.PatchMeta(account),
		Status: v1alpha1.AccountStatus{
			Ready:              err == nil,
			AccountID:          obs.id,
			AccountName:        obs.name,
			TokenRef:           obs.tokenRef,
			Error:              controller.StatusMessage(err),
			ObservedGeneration: account.Generation,
			Conditions:         controller.CopyConditions(account.Status.Conditions),
		},
	}
	controller.SetReadyCondition(&patch.Status.Conditions, account.Generation, err)

	if err := controller.ApplyStatus(ctx, r.Client, patch); err != nil {
		return err
	}
	controller.RecordOutcome(r.Recorder, account, account.Status.Ready, account.Status.Error, err,
		fmt.Sprintf("Account resolved to %s", obs.id))
	return nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor("account-controller")
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.Account{}).
		WithOptions(crcontroller.Options{MaxConcurrentReconciles: r.MaxConcurrentReconciles}).
		Named(controller.KindAccount).
		Complete(r)
}
