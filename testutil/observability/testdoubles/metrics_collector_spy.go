package testdoubles

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
)

// SpyMetricRecord is one captured metrics call. Duration is set for RecordDuration, Value for RecordValue.
type SpyMetricRecord struct {
	Kind       string
	Metric     string
	Duration   time.Duration
	Value      float64
	Labels     map[string]string
	HasContext bool
}

// Kinds of SpyMetricRecord.
const (
	KindDuration = "duration"
	KindCounter  = "counter"
	KindValue    = "value"
)

// MetricsCollectorSpy captures metrics calls for testing.
type MetricsCollectorSpy struct {
	records []SpyMetricRecord
	mu      sync.Mutex
}

// ContextualMetricsCollectorSpy is a MetricsCollectorSpy that accepts the context-aware calls.
type ContextualMetricsCollectorSpy struct {
	MetricsCollectorSpy
}

// NewMetricsCollectorSpy creates a spy implementing only pgcalendar.MetricsCollector.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

// NewContextualMetricsCollectorSpy creates a spy implementing pgcalendar.ContextualMetricsCollector.
func NewContextualMetricsCollectorSpy() *ContextualMetricsCollectorSpy {
	return &ContextualMetricsCollectorSpy{}
}

// RecordDuration implements pgcalendar.MetricsCollector.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: KindDuration, Metric: metric, Duration: duration, Labels: labels})
}

// IncrementCounter implements pgcalendar.MetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: KindCounter, Metric: metric, Labels: labels})
}

// RecordValue implements pgcalendar.MetricsCollector.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: KindValue, Metric: metric, Value: value, Labels: labels})
}

// RecordDurationContext implements pgcalendar.ContextualMetricsCollector.
func (s *ContextualMetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: KindDuration, Metric: metric, Duration: duration, Labels: labels, HasContext: true})
}

// IncrementCounterContext implements pgcalendar.ContextualMetricsCollector.
func (s *ContextualMetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: KindCounter, Metric: metric, Labels: labels, HasContext: true})
}

// RecordValueContext implements pgcalendar.ContextualMetricsCollector.
func (s *ContextualMetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: KindValue, Metric: metric, Value: value, Labels: labels, HasContext: true})
}

func (s *MetricsCollectorSpy) add(record SpyMetricRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Labels = maps.Clone(record.Labels)
	s.records = append(s.records, record)
}

// Records returns a copy of all captured records.
func (s *MetricsCollectorSpy) Records() []SpyMetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyMetricRecord, len(s.records))
	copy(records, s.records)

	return records
}

// RecordsFor returns the captured records for one metric name.
func (s *MetricsCollectorSpy) RecordsFor(metric string) []SpyMetricRecord {
	var matching []SpyMetricRecord

	for _, record := range s.Records() {
		if record.Metric == metric {
			matching = append(matching, record)
		}
	}

	return matching
}

var (
	_ pgcalendar.MetricsCollector           = (*MetricsCollectorSpy)(nil)
	_ pgcalendar.ContextualMetricsCollector = (*ContextualMetricsCollectorSpy)(nil)
)
