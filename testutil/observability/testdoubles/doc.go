// Package testdoubles provides spies for the observability interfaces of the pgcalendar Verifier.
//
//   - MetricsCollectorSpy: captures duration, counter and value recordings
//   - TracingCollectorSpy: captures started and finished spans
//   - ContextualLoggerSpy: captures log calls together with their context
//
// They let tests assert on verification instrumentation without a telemetry backend.
package testdoubles
