// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package zone implements the controller for the Zone CRD.
// A Zone waits for its Account to be ready, then creates the zone on
// Cloudflare or adopts an existing zone of the same name.
package zone

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	crcontroller "sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller/common"
)

// Reconciler reconciles a Zone object.
type Reconciler struct {
	client.Client
	Scheme     *runtime.Scheme
	Recorder   record.EventRecorder
	APIFactory *common.APIClientFactory
	Notifier   *controller.DeletionNotifier
	Gate       *common.DependencyGate

	MaxConcurrentReconciles int
}

type observation struct {
	id          string
	state       string
	nameServers []string
	adopted     bool
}

// +kubebuilder:rbac:groups=cloudflare.com,resources=zones,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=zones/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=zones/finalizers,verbs=update
// +kubebuilder:rbac:groups=cloudflare.com,resources=accounts,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	zone := &v1alpha1.Zone{}
	if err := r.Get(ctx, req.NamespacedName, zone); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	lifecycle := &controller.Lifecycle{
		Client:    r.Client,
		Kind:      controller.KindZone,
		Finalizer: controller.FinalizerZone,
		Notifier:  r.Notifier,
	}
	return lifecycle.Run(ctx, zone, func(ctx context.Context) (controller.Outcome, error) {
		obs, err := r.sync(ctx, zone)
		return common.Settle(err, func(err error) error {
			return r.writeStatus(ctx, zone, obs, err)
		})
	})
}

func (r *Reconciler) sync(ctx context.Context, zone *v1alpha1.Zone) (observation, error) {
	obs := observation{
		id:          zone.Status.ID,
		state:       zone.Status.State,
		nameServers: zone.Status.NameServers,
	}

	if zone.Name == controller.IllegalObjectName {
		return obs, controller.Errorf(controller.ConfigurationInvalid, "object name %q is reserved", zone.Name)
	}

	accountID, err := r.accountID(ctx, zone)
	if err != nil {
		return obs, err
	}

	api, err := r.APIFactory.GetClient(ctx, zone, zone.Namespace)
	if err != nil {
		return obs, err
	}

	result, adopted, err := ensureZone(ctx, api.API, zone, accountID)
	if err != nil {
		return obs, err
	}
	return observation{
		id:          result.ID,
		state:       result.Status,
		nameServers: result.NameServers,
		adopted:     adopted,
	}, nil
}

// accountID gates on spec.accountRef and returns the id of the referenced
// Account, or spec.accountId when there is no reference.
func (r *Reconciler) accountID(ctx context.Context, zone *v1alpha1.Zone) (string, error) {
	if ref := zone.Spec.AccountRef; ref != nil && ref.Name != "" {
		account := &v1alpha1.Account{}
		key := types.NamespacedName{Namespace: zone.Namespace, Name: ref.Name}
		if err := r.Gate.Check(ctx, controller.KindAccount, key, account); err != nil {
			return "", err
		}
		if id := account.ExternalID(); id != "" {
			return id, nil
		}
		return "", controller.Errorf(controller.DependencyNotReady, "dependency account/%s has no account id", ref.Name)
	}
	if zone.Spec.AccountID != "" {
		return zone.Spec.AccountID, nil
	}
	return "", controller.Errorf(controller.ConfigurationInvalid, "one of spec.accountRef or spec.accountId is required")
}

// ensureZone returns the Cloudflare zone backing zone, creating it when
// status has no id or the recorded zone is gone. A zone that already exists
// under the same name is adopted when it belongs to accountID.
func ensureZone(ctx context.Context, api cf.CloudflareClient, zone *v1alpha1.Zone, accountID string) (*cf.ZoneResult, bool, error) {
	logger := log.FromContext(ctx)

	if id := zone.Status.ID; id != "" {
		found, err := api.GetZone(ctx, id)
		if err == nil {
			return found, false, nil
		}
		if !cf.IsNotFoundError(err) {
			return nil, false, err
		}
		logger.Info("Zone no longer exists on Cloudflare, recreating", "zoneId", id)
	}

	params := cf.ZoneParams{
		Name:      zone.DomainName(),
		AccountID: accountID,
		JumpStart: zone.Spec.JumpStart,
		Type:      string(zone.Spec.Type),
	}
	created, err := api.CreateZone(ctx, params)
	if err == nil {
		return created, false, nil
	}
	if !cf.IsConflictError(err) {
		return nil, false, err
	}

	id, lookupErr := api.GetZoneIDByName(ctx, params.Name)
	if lookupErr != nil {
		return nil, false, fmt.Errorf("zone %s exists but could not be looked up: %w", params.Name, lookupErr)
	}
	existing, err := api.GetZone(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if existing.AccountID != "" && existing.AccountID != accountID {
		return nil, false, controller.Errorf(controller.ConfigurationInvalid,
			"zone %s already exists in account %s", params.Name, existing.AccountID)
	}

	logger.Info("Adopted existing zone", "zoneId", existing.ID, "name", existing.Name)
	return existing, true, nil
}

func (r *Reconciler) writeStatus(ctx context.Context, zone *v1alpha1.Zone, obs observation, err error) error {
	patch := &v1alpha1.Zone{
		ObjectMeta: controller.PatchMeta(zone),
		Status: v1alpha1.ZoneStatus{
			Ready:              err == nil,
			ID:                 obs.id,
			State:              obs.state,
			NameServers:        obs.nameServers,
			Error:              controller.StatusMessage(err),
			ObservedGeneration: zone.Generation,
			Conditions:         controller.CopyConditions(zone.Status.Conditions),
		},
	}
	controller.SetReadyCondition(&patch.Status.Conditions, zone.Generation, err)

	if err := controller.ApplyStatus(ctx, r.Client, patch); err != nil {
		return err
	}

	if obs.adopted {
		controller.RecordAdopted(r.Recorder, zone, fmt.Sprintf("Adopted zone %s (%s)", zone.DomainName(), obs.id))
		return nil
	}
	controller.RecordOutcome(r.Recorder, zone, zone.Status.Ready, zone.Status.Error, err,
		fmt.Sprintf("Zone %s is %s", zone.DomainName(), obs.state))
	return nil
}

// zonesForAccount maps an Account to the Zones that reference it.
func (r *Reconciler) zonesForAccount(ctx context.Context, obj client.Object) []reconcile.Request {
	zones := &v1alpha1.ZoneList{}
	if err := r.List(ctx, zones, client.InNamespace(obj.GetNamespace())); err != nil {
		log.FromContext(ctx).Error(err, "Failed to list zones", "account", obj.GetName())
		return nil
	}

	var requests []reconcile.Request
	for i := range zones.Items {
		if ref := zones.Items[i].Spec.AccountRef; ref != nil && ref.Name == obj.GetName() {
			requests = append(requests, reconcile.Request{NamespacedName: client.ObjectKeyFromObject(&zones.Items[i])})
		}
	}
	return requests
}

// SetupWithManager sets up the controller with the Manager.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor("zone-controller")
	}
	if r.Gate == nil {
		r.Gate = common.NewDependencyGate(mgr.GetClient())
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.Zone{}).
		Watches(&v1alpha1.Account{}, handler.EnqueueRequestsFromMapFunc(r.zonesForAccount)).
		WithOptions(crcontroller.Options{MaxConcurrentReconciles: r.MaxConcurrentReconciles}).
		Named(controller.KindZone).
		Complete(r)
}
