package pgcalendar

import (
	"context"
	"time"
)

// Logger interface for SQL query logging, verification results, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting verification timings, day counts, and database errors.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
// The Verifier prefers these when the configured collector implements them.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting tracing information from verification runs.
// It is dependency-free, so any tracing backend can be plugged in by implementing it.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// ContextualLogger interface for context-aware logging with trace correlation.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// Option defines a functional option for configuring Verifier.
type Option func(*Verifier) error

// WithLogger sets the logger for the Verifier.
//
// Debug level: SQL queries with execution timing
// Info level: verification summaries
// Warn level: mismatches and cleanup failures
// Error level: failures that abort a verification.
func WithLogger(logger Logger) Option {
	return func(v *Verifier) error {
		v.logger = logger
		return nil
	}
}

// WithBatchSize sets how many days one query checks.
func WithBatchSize(size int) Option {
	return func(v *Verifier) error {
		if size <= 0 {
			return ErrInvalidBatchSize
		}

		v.batchSize = size

		return nil
	}
}

// WithMetrics sets the metrics collector for the Verifier.
// It receives run and batch durations, checked day counts, mismatch counts, and database errors.
func WithMetrics(collector MetricsCollector) Option {
	return func(v *Verifier) error {
		v.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Verifier.
// Every Verify call opens one span; each batch query opens a child span.
func WithTracing(collector TracingCollector) Option {
	return func(v *Verifier) error {
		v.tracingCollector = collector
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Verifier.
// It receives the same messages as the Logger, together with the span context of the run.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(v *Verifier) error {
		v.contextualLogger = logger
		return nil
	}
}
