// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package pagerule implements the controller for the PageRule CRD.
package pagerule

import (
	"context"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
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

// Reconciler reconciles a PageRule object.
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
	ruleID     string
	zoneID     string
	createdOn  *metav1.Time
	modifiedOn *metav1.Time
}

func observedFrom(status v1alpha1.PageRuleStatus) observation {
	return observation{
		ruleID:     status.RuleID,
		zoneID:     status.ZoneID,
		createdOn:  status.CreatedOn,
		modifiedOn: status.ModifiedOn,
	}
}

func timeOrNil(t time.Time) *metav1.Time {
	if t.IsZero() {
		return nil
	}
	return &metav1.Time{Time: t}
}

// +kubebuilder:rbac:groups=cloudflare.com,resources=pagerules,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=pagerules/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=pagerules/finalizers,verbs=update
// +kubebuilder:rbac:groups=cloudflare.com,resources=zones,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	rule := &v1alpha1.PageRule{}
	if err := r.Get(ctx, req.NamespacedName, rule); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	lifecycle := &controller.Lifecycle{
		Client:    r.Client,
		Kind:      controller.KindPageRule,
		Finalizer: controller.FinalizerPageRule,
		Notifier:  r.Notifier,
	}
	return lifecycle.Run(ctx, rule, func(ctx context.Context) (controller.Outcome, error) {
		obs, err := r.sync(ctx, rule)
		return common.Settle(err, func(err error) error {
			return r.writeStatus(ctx, rule, obs, err)
		})
	})
}

func (r *Reconciler) sync(ctx context.Context, rule *v1alpha1.PageRule) (observation, error) {
	obs := observedFrom(rule.Status)

	if rule.Name == controller.IllegalObjectName {
		return obs, controller.Errorf(controller.ConfigurationInvalid, "object name %q is reserved", rule.Name)
	}

	params, err := desiredRule(rule.Spec)
	if err != nil {
		return obs, err
	}

	params.ZoneID, err = r.Gate.ZoneID(ctx, rule.Namespace, rule.Spec.ZoneRef, rule.Spec.ZoneID)
	if err != nil {
		return obs, err
	}

	api, err := r.APIFactory.GetClient(ctx, rule, rule.Namespace)
	if err != nil {
		return obs, err
	}

	result, err := ensureRule(ctx, api.API, rule.Status, params)
	if err != nil {
		return obs, err
	}
	return observation{
		ruleID:     result.ID,
		zoneID:     params.ZoneID,
		createdOn:  timeOrNil(result.CreatedOn),
		modifiedOn: timeOrNil(result.ModifiedOn),
	}, nil
}

// ensureRule makes Cloudflare hold params, reusing the rule recorded in status
// while it still exists in the same zone.
func ensureRule(ctx context.Context, api cf.CloudflareClient, status v1alpha1.PageRuleStatus, params cf.PageRuleParams) (*cf.PageRuleResult, error) {
	logger := log.FromContext(ctx)

	if status.RuleID != "" && status.ZoneID == params.ZoneID {
		found, err := api.GetPageRule(ctx, params.ZoneID, status.RuleID)
		switch {
		case err == nil && !found.Differs(params):
			return found, nil
		case err == nil:
			logger.Info("Page rule drifted, updating", "ruleId", status.RuleID)
			return api.UpdatePageRule(ctx, params.ZoneID, status.RuleID, params)
		case !cf.IsNotFoundError(err):
			return nil, err
		}
		logger.Info("Page rule no longer exists on Cloudflare, recreating", "ruleId", status.RuleID)
	}

	return api.CreatePageRule(ctx, params)
}

func (r *Reconciler) writeStatus(ctx context.Context, rule *v1alpha1.PageRule, obs observation, err error) error {
	patch := &v1alpha1.PageRule{
		ObjectMeta: controller.PatchMeta(rule),
		Status: v1alpha1.PageRuleStatus{
			Ready:              err == nil,
			RuleID:             obs.ruleID,
			ZoneID:             obs.zoneID,
			CreatedOn:          obs.createdOn,
			ModifiedOn:         obs.modifiedOn,
			Error:              controller.StatusMessage(err),
			ObservedGeneration: rule.Generation,
			Conditions:         controller.CopyConditions(rule.Status.Conditions),
		},
	}
	controller.SetReadyCondition(&patch.Status.Conditions, rule.Generation, err)

	if err := controller.ApplyStatus(ctx, r.Client, patch); err != nil {
		return err
	}
	controller.RecordOutcome(r.Recorder, rule, rule.Status.Ready, rule.Status.Error, err,
		"Page rule "+obs.ruleID+" is in sync")
	return nil
}

// findPageRulesForZone returns PageRules that reference the changed Zone.
func (r *Reconciler) findPageRulesForZone(ctx context.Context, obj client.Object) []reconcile.Request {
	rules := &v1alpha1.PageRuleList{}
	if err := r.List(ctx, rules, client.InNamespace(obj.GetNamespace())); err != nil {
		log.FromContext(ctx).Error(err, "Failed to list page rules", "zone", obj.GetName())
		return nil
	}

	var requests []reconcile.Request
	for i := range rules.Items {
		if ref := rules.Items[i].Spec.ZoneRef; ref != nil && ref.Name == obj.GetName() {
			requests = append(requests, reconcile.Request{NamespacedName: client.ObjectKeyFromObject(&rules.Items[i])})
		}
	}
	return requests
}

// SetupWithManager sets up the controller with the Manager.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor("pagerule-controller")
	}
	if r.Gate == nil {
		r.Gate = common.NewDependencyGate(mgr.GetClient())
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.PageRule{}).
		Watches(&v1alpha1.Zone{}, handler.EnqueueRequestsFromMapFunc(r.findPageRulesForZone)).
		WithOptions(crcontroller.Options{MaxConcurrentReconciles: r.MaxConcurrentReconciles}).
		Named(controller.KindPageRule).
		Complete(r)
}
