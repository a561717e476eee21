// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package main runs the mock Cloudflare API as a standalone process, so the
// operator can be pointed at it with CLOUDFLARE_API_BASE_URL.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver"
)

func main() {
	port := flag.Int("port", 8787, "Port to listen on")
	quiet := flag.Bool("quiet", false, "Do not log every request")
	flag.Parse()

	opts := []mockserver.Option{mockserver.WithPort(*port)}
	if *quiet {
		opts = append(opts, mockserver.WithQuiet())
	}
	server := mockserver.NewServer(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Health check: %s/health", server.URL())
	log.Printf("Admin reset: POST %s/admin/reset", server.URL())

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
