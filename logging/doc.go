// Package logging builds the structured diagnostics logger on top of log/slog.
// Records are written as JSON by default, or as key=value text for terminals.
package logging
