package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
)

type spanKey struct{}

// SpySpanContext records the status and attributes set on a span.
type SpySpanContext struct {
	name       string
	status     string
	attributes map[string]string
	mu         sync.Mutex
}

// SetStatus implements pgcalendar.SpanContext.
func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

// AddAttribute implements pgcalendar.SpanContext.
func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}

	c.attributes[key] = value
}

// Status returns the last status set on the span.
func (c *SpySpanContext) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// Attributes returns a copy of the attributes added while the span was open.
func (c *SpySpanContext) Attributes() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.attributes)
}

// SpySpanRecord is one span as seen by the TracingCollectorSpy.
type SpySpanRecord struct {
	Name            string
	Parent          string
	StartAttributes map[string]string
	Finished        bool
	Status          string
	EndAttributes   map[string]string
	SpanContext     *SpySpanContext
}

// TracingCollectorSpy captures tracing calls for testing.
// Spans started from a context carrying another spy span record it as their parent.
type TracingCollectorSpy struct {
	spans []*SpySpanRecord
	mu    sync.Mutex
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements pgcalendar.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, pgcalendar.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spanCtx := &SpySpanContext{name: name}
	record := &SpySpanRecord{
		Name:            name,
		StartAttributes: maps.Clone(attrs),
		SpanContext:     spanCtx,
	}

	if parent, ok := ctx.Value(spanKey{}).(*SpySpanContext); ok {
		record.Parent = parent.name
	}

	s.spans = append(s.spans, record)

	return context.WithValue(ctx, spanKey{}, spanCtx), spanCtx
}

// FinishSpan implements pgcalendar.TracingCollector.
func (s *TracingCollectorSpy) FinishSpan(spanCtx pgcalendar.SpanContext, status string, attrs map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.spans {
		if record.SpanContext == spanCtx {
			record.Finished = true
			record.Status = status
			record.EndAttributes = maps.Clone(attrs)

			return
		}
	}
}

// Spans returns copies of all captured span records in start order.
func (s *TracingCollectorSpy) Spans() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	spans := make([]SpySpanRecord, 0, len(s.spans))
	for _, record := range s.spans {
		spans = append(spans, *record)
	}

	return spans
}

// SpansNamed returns the captured span records with the given name.
func (s *TracingCollectorSpy) SpansNamed(name string) []SpySpanRecord {
	var matching []SpySpanRecord

	for _, record := range s.Spans() {
		if record.Name == name {
			matching = append(matching, record)
		}
	}

	return matching
}

var _ pgcalendar.TracingCollector = (*TracingCollectorSpy)(nil)
