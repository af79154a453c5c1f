// Package logging assembles structured slog loggers and formatting helpers
// used across the filings pipeline.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and defines the standardized attribute keys (component,
// phase, state, run_id) that phase code uses to tag log lines. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup to ensure new
// components emit data with the same shape as the rest of the system.
package logging
