package pgcalendar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	spanNameVerify      = "pgcalendar.verify"
	spanNameVerifyBatch = "pgcalendar.verify_batch"

	metricVerifyDuration = "mdncal_verify_duration_seconds"
	metricQueryDuration  = "mdncal_verify_query_duration_seconds"
	metricDaysChecked    = "mdncal_verify_days_checked"
	metricMismatches     = "mdncal_verify_mismatches_total"
	metricDatabaseErrors = "mdncal_database_errors_total"

	operationVerify      = "verify"
	operationVerifyBatch = "verify_batch"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeInvalidInput  = "invalid_input"
	errorTypeBuildQuery    = "build_query"
	errorTypeDatabaseQuery = "database_query"
	errorTypeRowScan       = "row_scan"
	errorTypeCanceled      = "canceled"
	errorTypeTimeout       = "timeout"

	spanAttrOperation   = "operation"
	spanAttrAdapter     = "adapter"
	spanAttrRunID       = "run_id"
	spanAttrFromMdn     = "from_mdn"
	spanAttrToMdn       = "to_mdn"
	spanAttrDaysChecked = "days_checked"
	spanAttrMismatches  = "mismatch_count"
	spanAttrErrorType   = "error_type"
	spanAttrDurationMS  = "duration_ms"
	labelStatus         = "status"
)

// classifyError maps a Verify error to the error_type label used by spans and metrics.
func classifyError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeTimeout
	case errors.Is(err, ErrBuildingQueryFailed):
		return errorTypeBuildQuery
	case errors.Is(err, ErrQueryingDatabaseFailed):
		return errorTypeDatabaseQuery
	case errors.Is(err, ErrScanningDBRowFailed):
		return errorTypeRowScan
	default:
		return errorTypeInvalidInput
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2f", durationToMilliseconds(d))
}

// === Logging ===
// Every message goes to the plain Logger and, with the span context attached, to the ContextualLogger.

func (v Verifier) logDebug(ctx context.Context, msg string, args ...any) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}

	if v.contextualLogger != nil {
		v.contextualLogger.DebugContext(ctx, msg, args...)
	}
}

func (v Verifier) logInfo(ctx context.Context, msg string, args ...any) {
	if v.logger != nil {
		v.logger.Info(msg, args...)
	}

	if v.contextualLogger != nil {
		v.contextualLogger.InfoContext(ctx, msg, args...)
	}
}

func (v Verifier) logWarn(ctx context.Context, msg string, args ...any) {
	if v.logger != nil {
		v.logger.Warn(msg, args...)
	}

	if v.contextualLogger != nil {
		v.contextualLogger.WarnContext(ctx, msg, args...)
	}
}

// logError logs err under the error attribute followed by args.
func (v Verifier) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if v.logger != nil {
		v.logger.Error(msg, allArgs...)
	}

	if v.contextualLogger != nil {
		v.contextualLogger.ErrorContext(ctx, msg, allArgs...)
	}
}

// === Metrics ===

func (v Verifier) recordDurationMetrics(ctx context.Context, metricName string, duration time.Duration, labels map[string]string) {
	if v.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := v.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
		return
	}

	v.metricsCollector.RecordDuration(metricName, duration, labels)
}

func (v Verifier) recordValueMetrics(ctx context.Context, metricName string, value float64, labels map[string]string) {
	if v.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := v.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
		return
	}

	v.metricsCollector.RecordValue(metricName, value, labels)
}

func (v Verifier) incrementCounterMetrics(ctx context.Context, metricName string, labels map[string]string) {
	if v.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := v.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricName, labels)
		return
	}

	v.metricsCollector.IncrementCounter(metricName, labels)
}

func (v Verifier) statusLabels(operation, status string) map[string]string {
	return map[string]string{
		spanAttrOperation: operation,
		spanAttrAdapter:   v.db.Name(),
		labelStatus:       status,
	}
}

// verifyMetricsObserver records the metrics of one Verify call.
type verifyMetricsObserver struct {
	v   Verifier
	ctx context.Context
}

func (v Verifier) startVerifyMetrics(ctx context.Context) verifyMetricsObserver {
	return verifyMetricsObserver{v: v, ctx: ctx}
}

func (o verifyMetricsObserver) recordSuccess(report Report) {
	labels := o.v.statusLabels(operationVerify, statusSuccess)

	o.v.recordDurationMetrics(o.ctx, metricVerifyDuration, report.Duration, labels)
	o.v.recordValueMetrics(o.ctx, metricDaysChecked, float64(report.Checked), labels)

	for range report.Mismatches {
		o.v.incrementCounterMetrics(o.ctx, metricMismatches, labels)
	}
}

func (o verifyMetricsObserver) recordError(errorType string, duration time.Duration) {
	o.v.recordDurationMetrics(o.ctx, metricVerifyDuration, duration, o.v.statusLabels(operationVerify, statusError))

	if errorType == errorTypeInvalidInput {
		return
	}

	labels := o.v.statusLabels(operationVerify, statusError)
	labels[spanAttrErrorType] = errorType
	o.v.incrementCounterMetrics(o.ctx, metricDatabaseErrors, labels)
}

func (v Verifier) recordQueryDuration(ctx context.Context, duration time.Duration, queryErr error) {
	status := statusSuccess
	if queryErr != nil {
		status = statusError
	}

	v.recordDurationMetrics(ctx, metricQueryDuration, duration, v.statusLabels(operationVerifyBatch, status))
}

// === Tracing ===

func (v Verifier) startTraceSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if v.tracingCollector != nil {
		return v.tracingCollector.StartSpan(ctx, name, attrs)
	}

	return ctx, nil
}

func (v Verifier) finishTraceSpan(span SpanContext, status string, attrs map[string]string) {
	if v.tracingCollector != nil && span != nil {
		v.tracingCollector.FinishSpan(span, status, attrs)
	}
}

// verifyTracingObserver manages the span of one Verify call.
type verifyTracingObserver struct {
	v    Verifier
	span SpanContext
}

func (v Verifier) startVerifyTracing(ctx context.Context) (verifyTracingObserver, context.Context) {
	newCtx, span := v.startTraceSpan(ctx, spanNameVerify, map[string]string{
		spanAttrOperation: operationVerify,
		spanAttrAdapter:   v.db.Name(),
	})

	return verifyTracingObserver{v: v, span: span}, newCtx
}

// annotateRun adds the run id and the validated range once they are known.
func (o verifyTracingObserver) annotateRun(report Report, lo, hi int32) {
	if o.span == nil {
		return
	}

	o.span.AddAttribute(spanAttrRunID, report.RunID.String())
	o.span.AddAttribute(spanAttrFromMdn, strconv.FormatInt(int64(lo), 10))
	o.span.AddAttribute(spanAttrToMdn, strconv.FormatInt(int64(hi), 10))
}

func (o verifyTracingObserver) finishSuccess(report Report) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusSuccess)
	o.span.AddAttribute(spanAttrDurationMS, formatDuration(report.Duration))

	o.v.finishTraceSpan(o.span, statusSuccess, map[string]string{
		spanAttrDaysChecked: strconv.Itoa(report.Checked),
		spanAttrMismatches:  strconv.Itoa(len(report.Mismatches)),
	})
}

func (o verifyTracingObserver) finishError(errorType string, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusError)
	o.span.AddAttribute(spanAttrErrorType, errorType)

	if duration > 0 {
		o.span.AddAttribute(spanAttrDurationMS, formatDuration(duration))
	}

	o.v.finishTraceSpan(o.span, statusError, map[string]string{spanAttrErrorType: errorType})
}

// startBatchSpan opens a child span for the query covering lo..hi.
func (v Verifier) startBatchSpan(ctx context.Context, lo, hi int32) (context.Context, SpanContext) {
	return v.startTraceSpan(ctx, spanNameVerifyBatch, map[string]string{
		spanAttrOperation: operationVerifyBatch,
		spanAttrFromMdn:   strconv.FormatInt(int64(lo), 10),
		spanAttrToMdn:     strconv.FormatInt(int64(hi), 10),
	})
}

func (v Verifier) finishBatchSpan(span SpanContext, err error) {
	if err != nil {
		v.finishTraceSpan(span, statusError, map[string]string{spanAttrErrorType: classifyError(err)})
		return
	}

	v.finishTraceSpan(span, statusSuccess, nil)
}
