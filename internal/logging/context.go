package logging

import (
	"context"
	"log/slog"

	"plagcheck/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldComparisonID is the standardized structured logging key for the correlation ID of one comparison.
	FieldComparisonID = "comparison_id"
	// FieldPair is the standardized structured logging key for the 1-based pair position in a batch.
	FieldPair = "pair"
	// FieldEventType classifies a log line for filtering (e.g. "comparison_failed").
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldErrorCategory carries services.Category of the logged error.
	FieldErrorCategory = "error_category"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if pair, ok := services.PairFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldPair, pair))
	}
	if id, ok := services.ComparisonIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldComparisonID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
