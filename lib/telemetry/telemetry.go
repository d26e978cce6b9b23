// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry provides OpenTelemetry tracing and metrics for Web
// API calls.
//
// Telemetry is off unless [Config.Enabled] is set; a disabled
// [Telemetry] hands out no-op providers, and [Telemetry.Transport]
// returns the transport it is given unchanged. When enabled, spans are
// pretty-printed as JSON to [Config.Output] and metrics are held in
// memory for [Telemetry.CallCounts].
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/bureau-foundation/slackweb/webapi"
)

const instrumentationScope = "github.com/bureau-foundation/slackweb/webapi"

// Config controls telemetry setup.
type Config struct {
	// Enabled turns on tracing and metrics.
	Enabled bool

	// ServiceName is recorded on every span. Defaults to "slackweb".
	ServiceName string

	// Version is recorded as service.version when non-empty.
	Version string

	// Output receives pretty-printed spans. Defaults to os.Stderr.
	Output io.Writer
}

// Telemetry owns the tracer and meter providers for one process.
type Telemetry struct {
	enabled        bool
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	reader         *sdkmetric.ManualReader
	shutdown       []func(context.Context) error
}

// Setup builds providers according to config. The returned Telemetry
// must be shut down to flush spans.
func Setup(ctx context.Context, config Config) (*Telemetry, error) {
	if !config.Enabled {
		return &Telemetry{
			tracerProvider: tracenoop.NewTracerProvider(),
			meterProvider:  metricnoop.NewMeterProvider(),
		}, nil
	}

	serviceName := config.ServiceName
	if serviceName == "" {
		serviceName = "slackweb"
	}
	attributes := []attribute.KeyValue{attribute.String("service.name", serviceName)}
	if config.Version != "" {
		attributes = append(attributes, attribute.String("service.version", config.Version))
	}
	res, err := resource.New(ctx, resource.WithAttributes(attributes...))
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(output), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("telemetry: trace exporter: %w", err)
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
	)

	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)

	return &Telemetry{
		enabled:        true,
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
		reader:         reader,
		shutdown:       []func(context.Context) error{tracerProvider.Shutdown, meterProvider.Shutdown},
	}, nil
}

// Enabled reports whether t records anything.
func (t *Telemetry) Enabled() bool { return t.enabled }

// Transport returns inner instrumented with t's providers, or inner
// itself when telemetry is disabled.
func (t *Telemetry) Transport(inner webapi.Transport) webapi.Transport {
	if !t.enabled {
		return inner
	}
	return NewTransport(inner, t.tracerProvider, t.meterProvider)
}

// CallCounts returns the number of round trips recorded so far, keyed
// by API method name. It returns an empty map when disabled.
func (t *Telemetry) CallCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	if t.reader == nil {
		return counts, nil
	}
	var data metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &data); err != nil {
		return nil, fmt.Errorf("telemetry: collecting metrics: %w", err)
	}
	for _, scope := range data.ScopeMetrics {
		for _, recorded := range scope.Metrics {
			if recorded.Name != metricCalls {
				continue
			}
			sum, ok := recorded.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, point := range sum.DataPoints {
				method, _ := point.Attributes.Value(attributeMethod)
				counts[method.AsString()] += point.Value
			}
		}
	}
	return counts, nil
}

// Shutdown flushes pending spans and releases the providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range t.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	t.shutdown = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("telemetry: shutdown: %w", err)
	}
	return nil
}
