// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package mockserver

import (
	"net/http"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/handlers"
)

// registerRoutes registers all API routes.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealth)

	// Admin endpoints for testing
	mux.HandleFunc("POST /admin/reset", s.handleReset)
	mux.HandleFunc("GET /admin/requests", s.handleGetRequests)

	h := handlers.NewHandlers(s.store)

	// ---- Account Routes ----
	mux.HandleFunc("GET /accounts", h.ListAccounts)
	mux.HandleFunc("GET /accounts/{accountId}", h.GetAccount)

	// ---- Zone Routes ----
	mux.HandleFunc("POST /zones", h.CreateZone)
	mux.HandleFunc("GET /zones", h.ListZones)
	mux.HandleFunc("GET /zones/{zoneId}", h.GetZone)

	// ---- DNS Record Routes ----
	mux.HandleFunc("POST /zones/{zoneId}/dns_records", h.CreateDNSRecord)
	mux.HandleFunc("GET /zones/{zoneId}/dns_records", h.ListDNSRecords)
	mux.HandleFunc("GET /zones/{zoneId}/dns_records/{recordId}", h.GetDNSRecord)
	mux.HandleFunc("PUT /zones/{zoneId}/dns_records/{recordId}", h.UpdateDNSRecord)
	mux.HandleFunc("PATCH /zones/{zoneId}/dns_records/{recordId}", h.UpdateDNSRecord)
	mux.HandleFunc("DELETE /zones/{zoneId}/dns_records/{recordId}", h.DeleteDNSRecord)

	// ---- Page Rule Routes ----
	mux.HandleFunc("POST /zones/{zoneId}/pagerules", h.CreatePageRule)
	mux.HandleFunc("GET /zones/{zoneId}/pagerules/{ruleId}", h.GetPageRule)
	mux.HandleFunc("PUT /zones/{zoneId}/pagerules/{ruleId}", h.UpdatePageRule)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.Reset()
	writeSuccess(w, map[string]string{"status": "reset"})
}

func (s *Server) handleGetRequests(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, s.GetRequestLog())
}
