// Package oteladapters implements the pgcalendar observability interfaces on top of OpenTelemetry.
//
// Wire them into a Verifier with pgcalendar.WithMetrics, pgcalendar.WithTracing and
// pgcalendar.WithContextualLogger:
//
//	verifier, err := pgcalendar.NewVerifierFromPGXPool(pool,
//		pgcalendar.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("mdncal"))),
//		pgcalendar.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("mdncal"))),
//		pgcalendar.WithContextualLogger(oteladapters.NewSlogBridgeLogger("mdncal")),
//	)
package oteladapters
