// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package mockserver provides a mock Cloudflare API server for testing.
package mockserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/injection"
	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/internal/store"
)

// Fixtures present in every fresh or reset server.
const (
	DefaultAccountID   = store.DefaultAccountID
	DefaultAccountName = store.DefaultAccountName
	DefaultZoneID      = store.DefaultZoneID
	DefaultZoneName    = store.DefaultZoneName
)

// Server is the mock Cloudflare API server.
type Server struct {
	httpServer    *http.Server
	testServer    *httptest.Server
	handler       http.Handler
	store         *store.Store
	errorInjector *injection.ErrorInjector
	requestLog    []RequestLogEntry
	requestLogMu  sync.RWMutex
	port          int
	quiet         bool
}

// RequestLogEntry records an API request.
type RequestLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
}

// Option is a function that configures the server.
type Option func(*Server)

// WithPort sets the server port.
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithQuiet disables per-request logging.
func WithQuiet() Option {
	return func(s *Server) {
		s.quiet = true
	}
}

// NewServer creates a new mock server.
func NewServer(opts ...Option) *Server {
	s := &Server{
		store:         store.NewStore(),
		errorInjector: injection.NewErrorInjector(),
		port:          8787,
	}

	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = s.middleware(mux)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// NewTestServer starts a mock server on a loopback listener for use in tests.
// Call Close when done.
func NewTestServer() *Server {
	s := NewServer(WithQuiet())
	s.testServer = httptest.NewServer(s.handler)
	return s
}

// middleware adds common middleware to all requests.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logRequest(r)

		w.Header().Set("Content-Type", "application/json")

		if err := s.errorInjector.Check(r.URL.Path, r.Method); err != nil {
			s.handleInjectedError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// logRequest logs an incoming request.
func (s *Server) logRequest(r *http.Request) {
	if !s.quiet {
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.URL.RawQuery)
	}
	s.requestLogMu.Lock()
	defer s.requestLogMu.Unlock()
	s.requestLog = append(s.requestLog, RequestLogEntry{
		Timestamp: time.Now(),
		Method:    r.Method,
		Path:      r.URL.Path,
	})
}

// handleInjectedError handles errors from the error injector.
func (s *Server) handleInjectedError(w http.ResponseWriter, err *injection.InjectedError) {
	switch err.Type {
	case injection.ErrorTypeRateLimit:
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
		writeError(w, 10000, "Rate limit exceeded")
	case injection.ErrorTypeServerError:
		w.WriteHeader(http.StatusInternalServerError)
		writeError(w, 10001, "Internal server error")
	case injection.ErrorTypeForbidden:
		w.WriteHeader(http.StatusForbidden)
		writeError(w, 9109, "Unauthorized to access requested resource")
	case injection.ErrorTypeConflict:
		w.WriteHeader(http.StatusConflict)
		writeError(w, 10003, "Resource conflict")
	case injection.ErrorTypeNotFound:
		w.WriteHeader(http.StatusNotFound)
		writeError(w, 10004, "Resource not found")
	case injection.ErrorTypeBadRequest:
		w.WriteHeader(http.StatusBadRequest)
		writeError(w, 1004, "Validation failed")
	default:
		w.WriteHeader(http.StatusInternalServerError)
		writeError(w, 10099, "Unknown error")
	}
}

// Start serves on the configured port until Stop is called.
func (s *Server) Start() error {
	log.Printf("Starting mock Cloudflare API server on port %d", s.port)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server started with Start.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Close shuts down a server created by NewTestServer.
func (s *Server) Close() {
	if s.testServer != nil {
		s.testServer.Close()
	}
}

// Store returns the server's data store.
func (s *Server) Store() *store.Store {
	return s.store
}

// ErrorInjector returns the server's error injector.
func (s *Server) ErrorInjector() *injection.ErrorInjector {
	return s.errorInjector
}

// Reset resets the server state.
func (s *Server) Reset() {
	s.store.Reset()
	s.errorInjector.Clear()
	s.requestLogMu.Lock()
	s.requestLog = nil
	s.requestLogMu.Unlock()
}

// GetRequestLog returns a copy of the request log.
func (s *Server) GetRequestLog() []RequestLogEntry {
	s.requestLogMu.RLock()
	defer s.requestLogMu.RUnlock()
	entries := make([]RequestLogEntry, len(s.requestLog))
	copy(entries, s.requestLog)
	return entries
}

// GetRequestCount returns the number of requests with the given method whose
// path starts with pathPrefix. An empty method matches all.
func (s *Server) GetRequestCount(method, pathPrefix string) int {
	s.requestLogMu.RLock()
	defer s.requestLogMu.RUnlock()
	count := 0
	for _, entry := range s.requestLog {
		if method != "" && entry.Method != method {
			continue
		}
		if strings.HasPrefix(entry.Path, pathPrefix) {
			count++
		}
	}
	return count
}

// URL returns the base URL to configure as the Cloudflare API endpoint.
func (s *Server) URL() string {
	if s.testServer != nil {
		return s.testServer.URL
	}
	return fmt.Sprintf("http://localhost:%d", s.port)
}

// writeSuccess writes a successful response.
func writeSuccess[T any](w http.ResponseWriter, result T) {
	resp := struct {
		Success bool `json:"success"`
		Result  T    `json:"result"`
	}{
		Success: true,
		Result:  result,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, code int, message string) {
	type apiError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	resp := struct {
		Success bool       `json:"success"`
		Errors  []apiError `json:"errors"`
	}{
		Errors: []apiError{{Code: code, Message: message}},
	}
	_ = json.NewEncoder(w).Encode(resp)
}
