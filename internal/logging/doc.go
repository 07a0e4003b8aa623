// Package logging assembles structured slog loggers and formatting helpers used
// across plagcheck.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so comparison code can
// automatically tag log lines with comparison IDs and batch pair positions.
// When a log directory is configured, a JSON copy of every record is teed into
// a timestamped file and old files are pruned. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data with the same shape as the rest of the tool.
package logging
