// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package handlers provides HTTP handlers for the mock Cloudflare API server.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/models"
)

// Cloudflare error codes returned by the mock.
const (
	CodeNotFound      = 1001
	CodeBadRequest    = 1004
	CodeZoneExists    = 1061
	CodeInternalError = 10000
)

// Response writes a standard Cloudflare API response.
func Response[T any](w http.ResponseWriter, status int, result T, errors []models.APIError) {
	if errors == nil {
		errors = []models.APIError{}
	}
	resp := models.Response[T]{
		Success:  len(errors) == 0,
		Errors:   errors,
		Messages: []string{},
		Result:   result,
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// ResponseWithResultInfo writes a list response with single-page pagination info.
func ResponseWithResultInfo[T any](w http.ResponseWriter, result []T) {
	resp := models.Response[[]T]{
		Success:  true,
		Errors:   []models.APIError{},
		Messages: []string{},
		Result:   result,
		ResultInfo: &models.ResultInfo{
			Page:       1,
			PerPage:    50,
			TotalPages: 1,
			Count:      len(result),
			TotalCount: len(result),
		},
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// Success writes a successful response.
func Success[T any](w http.ResponseWriter, result T) {
	Response(w, http.StatusOK, result, nil)
}

// Error writes an error response.
func Error(w http.ResponseWriter, status int, code int, message string) {
	var empty interface{}
	Response(w, status, empty, []models.APIError{{Code: code, Message: message}})
}

// NotFound writes a not found error response.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, http.StatusNotFound, CodeNotFound, resource+" not found")
}

// BadRequest writes a bad request error response.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, CodeBadRequest, message)
}

// ReadJSON reads and unmarshals JSON from the request body.
func ReadJSON[T any](r *http.Request) (*T, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPathParam extracts a path parameter from the request.
func GetPathParam(r *http.Request, name string) string {
	return r.PathValue(name)
}

// GetQueryParam extracts a query parameter from the request.
func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
