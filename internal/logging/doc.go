// Package logging assembles structured slog loggers and formatting helpers used
// across jokebot.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so step code can automatically
// tag log lines with the session ID, step name, and step index. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Diagnostics are routed to stderr (and optionally a log file) so they never
// interleave with the interactive conversation on stdout.
package logging
