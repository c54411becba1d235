// Package output keeps the registry of output logger types.
//
// An output logger is what reports check results (text, HTML, CSV, ...). It is
// unrelated to the diagnostic logging done through log/slog. Each type is
// registered with a Constructor and a default option mapping; Instantiate
// merges the defaults with per-call overrides and calls the constructor.
//
// The registry is safe for concurrent use so that plugins can register new
// types after startup.
package output
