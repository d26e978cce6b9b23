// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"net/url"
	"path"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/bureau-foundation/slackweb/webapi"
)

// Metric names.
const (
	metricCalls    = "slackweb.webapi.calls"
	metricDuration = "slackweb.webapi.call.duration"
	metricErrors   = "slackweb.webapi.errors"
)

// Attribute keys.
const (
	attributeMethod     = attribute.Key("slack.method")
	attributeHTTPMethod = attribute.Key("http.request.method")
	attributeStatus     = attribute.Key("http.response.status_code")
)

// InstrumentedTransport wraps a webapi.Transport with a span per round
// trip and call, duration, and error metrics. A non-2xx status is an
// error here; an ok:false envelope inside a 200 is not, since the
// transport never parses bodies.
type InstrumentedTransport struct {
	inner    webapi.Transport
	tracer   trace.Tracer
	calls    metric.Int64Counter
	duration metric.Float64Histogram
	errs     metric.Int64Counter
}

// NewTransport instruments inner using the given providers.
func NewTransport(inner webapi.Transport, tracerProvider trace.TracerProvider, meterProvider metric.MeterProvider) *InstrumentedTransport {
	meter := meterProvider.Meter(instrumentationScope)
	calls, _ := meter.Int64Counter(metricCalls,
		metric.WithDescription("Web API round trips attempted"),
	)
	duration, _ := meter.Float64Histogram(metricDuration,
		metric.WithDescription("Web API round trip duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	errs, _ := meter.Int64Counter(metricErrors,
		metric.WithDescription("Web API round trips that failed or returned a non-2xx status"),
	)
	return &InstrumentedTransport{
		inner:    inner,
		tracer:   tracerProvider.Tracer(instrumentationScope),
		calls:    calls,
		duration: duration,
		errs:     errs,
	}
}

func (t *InstrumentedTransport) RoundTrip(ctx context.Context, request *webapi.TransportRequest) (*webapi.TransportResponse, error) {
	method := methodName(request.URL)
	attributes := []attribute.KeyValue{
		attributeMethod.String(method),
		attributeHTTPMethod.String(request.Method),
	}
	ctx, span := t.tracer.Start(ctx, "webapi."+method,
		trace.WithAttributes(attributes...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()
	t.calls.Add(ctx, 1, metric.WithAttributes(attributes...))
	start := time.Now()

	response, err := t.inner.RoundTrip(ctx, request)

	elapsed := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		t.duration.Record(ctx, elapsed, metric.WithAttributes(attributes...))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.errs.Add(ctx, 1, metric.WithAttributes(attributes...))
		return nil, err
	}

	status := attributeStatus.Int(response.StatusCode)
	span.SetAttributes(status)
	t.duration.Record(ctx, elapsed, metric.WithAttributes(append(attributes, status)...))
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		span.SetStatus(codes.Error, "HTTP "+strconv.Itoa(response.StatusCode))
		t.errs.Add(ctx, 1, metric.WithAttributes(append(attributes, status)...))
	}
	return response, nil
}

// methodName extracts the API method from a call URL: the last path
// segment, e.g. "chat.postMessage".
func methodName(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return "unknown"
	}
	return path.Base(parsed.Path)
}
