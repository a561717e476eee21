// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package controller

// FieldManager owns every status field written by the operator.
const FieldManager = "cntrlr"

// Finalizers, one per kind.
const (
	FinalizerAccount   = "account.cloudflare.com"
	FinalizerZone      = "zone.cloudflare.com"
	FinalizerDNSRecord = "dnsrecord.cloudflare.com"
	FinalizerPageRule  = "pagerule.cloudflare.com"
)

// Kind labels used for metrics, spans and logs.
const (
	KindAccount   = "account"
	KindZone      = "zone"
	KindDNSRecord = "dnsrecord"
	KindPageRule  = "pagerule"
)

// IllegalObjectName is rejected by every reconciler with ConfigurationInvalid.
// It lets failure handling be exercised end to end.
const IllegalObjectName = "illegal"

// ReportingController is the controller name published on events.
const ReportingController = "cloudflare.com/zone-operator"

// Conditions
const (
	ConditionReady   = "Ready"
	ReasonReconciled = "Reconciled"
)

// Event reasons
const (
	EventReasonSynced          = "Synced"
	EventReasonAdopted         = "Adopted"
	EventReasonReconcileFailed = "ReconcileFailed"
	EventReasonDeleteRequested = "DeleteRequested"
)

// EventActionDeleting is the action of the DeleteRequested event.
const EventActionDeleting = "Deleting"
