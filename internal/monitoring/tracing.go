// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package monitoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cloudflare-zone-operator"

// Tracer is a no-op until a TracerProvider is installed.
var Tracer = otel.Tracer(tracerName)

// TracingConfig configures the OTLP exporter.
type TracingConfig struct {
	// Endpoint is the OTLP gRPC collector address. Empty disables tracing.
	Endpoint string
	Insecure bool
}

// SetupTracing installs a batching OTLP gRPC TracerProvider. The returned
// function flushes and stops it. With no endpoint the global no-op provider is
// kept and the shutdown function does nothing.
func SetupTracing(ctx context.Context, cfg TracingConfig) (func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	Tracer = tp.Tracer(tracerName)
	return tp.Shutdown, nil
}

// RunAndFlush runs fn and then calls shutdown with the given timeout, whether
// or not fn failed. Errors from both are joined.
func RunAndFlush(shutdown func(context.Context) error, timeout time.Duration, fn func() error) error {
	runErr := fn()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		return errors.Join(runErr, fmt.Errorf("failed to flush traces: %w", err))
	}
	return runErr
}

// StartReconcileSpan starts the span of one reconcile. Callers must end it.
func StartReconcileSpan(ctx context.Context, kind, namespace, name string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, kind+".Reconcile",
		trace.WithAttributes(
			attribute.String("k8s.resource.kind", kind),
			attribute.String("k8s.namespace", namespace),
			attribute.String("k8s.resource.name", name),
		),
	)
}

// StartChildSpan starts a span for a step of a reconcile, such as a Cloudflare call.
func StartChildSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, name)
}

// RecordSpanError marks span as failed. A nil err is ignored.
func RecordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
