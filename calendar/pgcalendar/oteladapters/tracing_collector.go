package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
)

// TracingCollector implements pgcalendar.TracingCollector with an OpenTelemetry tracer.
// Batch spans become children of the verification span through the returned context.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector that starts its spans from tracer.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span named name carrying attrs.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, pgcalendar.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan adds attrs, sets the status and ends the span. Spans not started by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx pgcalendar.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.setSpanStatus(status)
	otelSpanCtx.span.End()
}

var _ pgcalendar.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext wraps an OpenTelemetry span as a pgcalendar.SpanContext.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps status onto an OpenTelemetry status code.
func (s *OTelSpanContext) SetStatus(status string) {
	s.setSpanStatus(status)
}

// AddAttribute sets a string attribute on the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// setSpanStatus maps the Verifier's status strings to OpenTelemetry codes.
// Unknown strings are kept as a status attribute and leave the code unset.
func (s *OTelSpanContext) setSpanStatus(status string) {
	switch status {
	case "ok", "success":
		s.span.SetStatus(codes.Ok, "")
	case "error":
		s.span.SetStatus(codes.Error, "verification failed")
	case "canceled", "cancelled":
		s.span.SetStatus(codes.Error, "verification canceled")
	case "timeout":
		s.span.SetStatus(codes.Error, "verification timed out")
	default:
		s.span.SetAttributes(attribute.String("status", status))
	}
}

var _ pgcalendar.SpanContext = (*OTelSpanContext)(nil)
