// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package dnsrecord implements the controller for the DNSRecord CRD.
// This controller directly calls the Cloudflare API and writes status back
// to the CRD. Records are created, drift-checked and updated; deletion is not
// mirrored to Cloudflare.
package dnsrecord

import (
	"context"
	"fmt"

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

// Reconciler reconciles a DNSRecord object.
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
	recordID string
	zoneID   string
}

// +kubebuilder:rbac:groups=cloudflare.com,resources=dnsrecords,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=dnsrecords/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=cloudflare.com,resources=dnsrecords/finalizers,verbs=update
// +kubebuilder:rbac:groups=cloudflare.com,resources=zones,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	dnsRecord := &v1alpha1.DNSRecord{}
	if err := r.Get(ctx, req.NamespacedName, dnsRecord); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	lifecycle := &controller.Lifecycle{
		Client:    r.Client,
		Kind:      controller.KindDNSRecord,
		Finalizer: controller.FinalizerDNSRecord,
		Notifier:  r.Notifier,
	}
	return lifecycle.Run(ctx, dnsRecord, func(ctx context.Context) (controller.Outcome, error) {
		obs, err := r.sync(ctx, dnsRecord)
		return common.Settle(err, func(err error) error {
			return r.writeStatus(ctx, dnsRecord, obs, err)
		})
	})
}

func (r *Reconciler) sync(ctx context.Context, dnsRecord *v1alpha1.DNSRecord) (observation, error) {
	obs := observation{recordID: dnsRecord.Status.RecordID, zoneID: dnsRecord.Status.ZoneID}

	if dnsRecord.Name == controller.IllegalObjectName {
		return obs, controller.Errorf(controller.ConfigurationInvalid, "object name %q is reserved", dnsRecord.Name)
	}

	params, err := desiredRecord(dnsRecord.Spec)
	if err != nil {
		return obs, err
	}

	params.ZoneID, err = r.Gate.ZoneID(ctx, dnsRecord.Namespace, dnsRecord.Spec.ZoneRef, dnsRecord.Spec.ZoneID)
	if err != nil {
		return obs, err
	}

	api, err := r.APIFactory.GetClient(ctx, dnsRecord, dnsRecord.Namespace)
	if err != nil {
		return obs, err
	}

	result, err := ensureRecord(ctx, api.API, dnsRecord.Status, params)
	if err != nil {
		return obs, err
	}
	return observation{recordID: result.ID, zoneID: params.ZoneID}, nil
}

// ensureRecord makes Cloudflare hold params. A record known from status is
// fetched and updated on drift. Otherwise, or when it is gone, a matching
// record already in the zone is adopted before a new one is created.
func ensureRecord(ctx context.Context, api cf.CloudflareClient, status v1alpha1.DNSRecordStatus, params cf.DNSRecordParams) (*cf.DNSRecordResult, error) {
	logger := log.FromContext(ctx)

	if status.RecordID != "" && status.ZoneID == params.ZoneID {
		found, err := api.GetDNSRecord(ctx, params.ZoneID, status.RecordID)
		switch {
		case err == nil && !found.Differs(params):
			return found, nil
		case err == nil:
			logger.Info("DNS record drifted, updating", "recordId", status.RecordID)
			return api.UpdateDNSRecord(ctx, params.ZoneID, status.RecordID, params)
		case !cf.IsNotFoundError(err):
			return nil, err
		}
		logger.Info("DNS record no longer exists on Cloudflare, recreating", "recordId", status.RecordID)
	}

	existingID, err := api.GetDNSRecordIDByName(ctx, params.ZoneID, params.Name, params.Type, adoptionContent(params))
	if err != nil {
		return nil, err
	}
	if existingID != "" {
		logger.Info("Adopting existing DNS record", "recordId", existingID)
		return api.UpdateDNSRecord(ctx, params.ZoneID, existingID, params)
	}

	logger.Info("Creating DNS record", "name", params.Name, "type", params.Type)
	return api.CreateDNSRecord(ctx, params)
}

// adoptionContent is the content an existing record must carry to be
// adopted. A name holds at most one CNAME, so any CNAME there is ours; the
// other types may legitimately repeat under one name.
func adoptionContent(params cf.DNSRecordParams) string {
	if params.Type == v1alpha1.RecordTypeCNAME {
		return ""
	}
	return params.Content
}

func (r *Reconciler) writeStatus(ctx context.Context, dnsRecord *v1alpha1.DNSRecord, obs observation, err error) error {
	patch := &v1alpha1.DNSRecord{
		ObjectMeta: controller.PatchMeta(dnsRecord),
		Status: v1alpha1.DNSRecordStatus{
			Ready:              err == nil,
			RecordID:           obs.recordID,
			ZoneID:             obs.zoneID,
			Error:              controller.StatusMessage(err),
			ObservedGeneration: dnsRecord.Generation,
			Conditions:         controller.CopyConditions(dnsRecord.Status.Conditions),
		},
	}
	controller.SetReadyCondition(&patch.Status.Conditions, dnsRecord.Generation, err)

	if err := controller.ApplyStatus(ctx, r.Client, patch); err != nil {
		return err
	}
	controller.RecordOutcome(r.Recorder, dnsRecord, dnsRecord.Status.Ready, dnsRecord.Status.Error, err,
		fmt.Sprintf("DNS record %s %s is in sync", dnsRecord.Spec.Type, dnsRecord.Spec.Name))
	return nil
}

// findDNSRecordsForZone returns DNSRecords that reference the changed Zone.
func (r *Reconciler) findDNSRecordsForZone(ctx context.Context, obj client.Object) []reconcile.Request {
	records := &v1alpha1.DNSRecordList{}
	if err := r.List(ctx, records, client.InNamespace(obj.GetNamespace())); err != nil {
		log.FromContext(ctx).Error(err, "Failed to list DNS records", "zone", obj.GetName())
		return nil
	}

	var requests []reconcile.Request
	for i := range records.Items {
		if ref := records.Items[i].Spec.ZoneRef; ref != nil && ref.Name == obj.GetName() {
			requests = append(requests, reconcile.Request{NamespacedName: client.ObjectKeyFromObject(&records.Items[i])})
		}
	}
	return requests
}

// SetupWithManager sets up the controller with the Manager.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor("dnsrecord-controller")
	}
	if r.Gate == nil {
		r.Gate = common.NewDependencyGate(mgr.GetClient())
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.DNSRecord{}).
		Watches(&v1alpha1.Zone{}, handler.EnqueueRequestsFromMapFunc(r.findDNSRecordsForZone)).
		WithOptions(crcontroller.Options{MaxConcurrentReconciles: r.MaxConcurrentReconciles}).
		Named(controller.KindDNSRecord).
		Complete(r)
}
