// Package telemetry exports pwgen activity as OpenTelemetry spans.
// Spans describe how a password was requested, never the password itself.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	ServiceName = "pwgen"

	SpanGenerate = "pwgen.generate"
	SpanClear    = "pwgen.history.clear"
	SpanCopy     = "pwgen.clipboard.copy"
)

// Tracer records pwgen operations. A nil *Tracer is valid and records nothing.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewTracer creates an OTLP/HTTP-backed tracer for endpoint.
// Returns nil (disabled) if endpoint is empty.
func NewTracer(ctx context.Context, endpoint string) (*Tracer, error) {
	if endpoint == "" {
		return nil, nil
	}
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return newTracer(sdktrace.WithBatcher(exporter)), nil
}

// NewTracerWithExporter builds a tracer that hands spans to exporter
// synchronously. Used with tracetest.InMemoryExporter in tests.
func NewTracerWithExporter(exporter sdktrace.SpanExporter) *Tracer {
	return newTracer(sdktrace.WithSyncer(exporter))
}

func newTracer(opt sdktrace.TracerProviderOption) *Tracer {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(ServiceName),
	)
	provider := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("pwgen/generator"),
	}
}

// RecordGeneration emits one span for a Generate call.
func (t *Tracer) RecordGeneration(ctx context.Context, length int, mode string, err error) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, SpanGenerate)
	span.SetAttributes(
		attribute.Int("pwgen.length", length),
		attribute.String("pwgen.mode", mode),
	)
	endWithError(span, err)
}

// RecordClear emits a span for a history clear that removed n entries.
func (t *Tracer) RecordClear(ctx context.Context, removed int) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, SpanClear)
	span.SetAttributes(attribute.Int("pwgen.history.removed", removed))
	span.End()
}

// RecordCopy emits a span for a clipboard write.
func (t *Tracer) RecordCopy(ctx context.Context, err error) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, SpanCopy)
	endWithError(span, err)
}

func endWithError(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
