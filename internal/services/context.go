package services

import "context"

type contextKey string

const (
	comparisonIDKey contextKey = "comparison_id"
	pairKey         contextKey = "pair"
)

// WithComparisonID annotates context with the correlation identifier of a
// single original/candidate comparison.
func WithComparisonID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, comparisonIDKey, id)
}

// ComparisonIDFromContext extracts the comparison identifier if present.
func ComparisonIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(comparisonIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithPair annotates context with the 1-based position of a pair in a batch.
func WithPair(ctx context.Context, index int) context.Context {
	if index <= 0 {
		return ctx
	}
	return context.WithValue(ctx, pairKey, index)
}

// PairFromContext returns the batch pair position if present.
func PairFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(pairKey).(int)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}
