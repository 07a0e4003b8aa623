package logging

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

type infoField struct {
	label string
	value string
}

// infoOrder lists keys shown first, in this order, at info level. Remaining
// keys follow in record order.
var infoOrder = []string{
	FieldAlert,
	FieldEventType,
	"similarity_percent",
	"progress_percent",
	"combined",
	"frequency",
	"cosine",
	"edit_distance",
	"original",
	"candidate",
	"result",
	"original_encoding",
	"candidate_encoding",
	"error",
	FieldErrorCategory,
	FieldErrorHint,
	FieldImpact,
	"pairs",
	"completed",
	"succeeded",
	"failed",
	"workers",
	"elapsed",
}

var infoLabels = map[string]string{
	FieldAlert:           "Alert",
	FieldEventType:       "Event",
	FieldErrorHint:       "Hint",
	FieldErrorCategory:   "Category",
	"similarity_percent": "Similarity",
	"progress_percent":   "Progress",
	"size_bytes":         "Size",
}

const maxInfoValueLen = 120

// selectInfoFields formats the fields shown for info-level records. Debug-only
// keys (IDs and token counts) and empty strings are dropped, and long values
// are dropped unless they are paths or errors.
func selectInfoFields(fields []field) []infoField {
	ordered := slices.Clone(fields)
	slices.SortStableFunc(ordered, func(a, b field) int {
		return infoRank(a.key) - infoRank(b.key)
	})

	out := make([]infoField, 0, len(ordered))
	for _, f := range ordered {
		if f.key == FieldPair || debugOnly(f.key) {
			continue
		}
		value := formatInfoValue(f.key, f.value)
		if value == "" {
			continue
		}
		if len(value) > maxInfoValueLen && !keepLong(f.key) {
			continue
		}
		out = append(out, infoField{label: infoLabel(f.key), value: value})
	}
	return out
}

func infoRank(key string) int {
	if i := slices.Index(infoOrder, key); i >= 0 {
		return i
	}
	return len(infoOrder)
}

func debugOnly(key string) bool {
	return key == FieldComparisonID || strings.HasSuffix(key, "_id") || strings.HasSuffix(key, "_tokens")
}

func keepLong(key string) bool {
	switch key {
	case "error", "original", "candidate", "result", "path":
		return true
	}
	return false
}

// formatInfoValue picks a human format from the key: sizes in IEC units,
// percents and scores with fixed decimals, durations rounded, booleans as
// yes/no.
func formatInfoValue(key string, v slog.Value) string {
	switch {
	case (strings.HasSuffix(key, "_bytes") || key == "size") && v.Kind() == slog.KindInt64 && v.Int64() >= 0:
		return humanize.IBytes(uint64(v.Int64()))
	case strings.HasSuffix(key, "_percent") && v.Kind() == slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', 2, 64) + "%"
	case isScoreKey(key) && v.Kind() == slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', 4, 64)
	case v.Kind() == slog.KindDuration:
		return roundDuration(v.Duration()).String()
	case v.Kind() == slog.KindBool:
		if v.Bool() {
			return "yes"
		}
		return "no"
	}
	s := strings.TrimSpace(plainValue(v))
	if key == "error" && len(s) > 200 {
		s = s[:200] + "…"
	}
	return s
}

func isScoreKey(key string) bool {
	switch key {
	case "frequency", "cosine", "edit_distance", "combined":
		return true
	}
	return false
}

func roundDuration(d time.Duration) time.Duration {
	switch {
	case d < time.Millisecond:
		return d
	case d < time.Second:
		return d.Round(time.Millisecond)
	default:
		return d.Round(10 * time.Millisecond)
	}
}

// infoLabel turns snake_case keys into Title Case labels unless a fixed label
// exists.
func infoLabel(key string) string {
	if label, ok := infoLabels[key]; ok {
		return label
	}
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' || r == '.' })
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}
