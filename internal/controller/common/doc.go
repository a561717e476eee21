// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package common holds the pieces every reconciler shares: the client cache,
// the API client factory that turns a resource into a Cloudflare client, the
// dependency gate and the requeue policy.
//
// A reconciler uses them in this order:
//
//	if err := r.Gate.Check(ctx, "zone", key, parent); err != nil {
//	    return r.fail(ctx, obj, err)
//	}
//	apiResult, err := r.APIFactory.GetClient(ctx, obj, obj.Namespace)
//	if err != nil {
//	    return r.fail(ctx, obj, err)
//	}
//	result, err := apiResult.API.CreateDNSRecord(ctx, params)
//
// The ClientCache is created once in main and shared by all reconcilers.
package common
