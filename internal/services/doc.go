// Package services defines shared utilities consumed by the workflow steps and
// the joke source.
//
// Key responsibilities:
//   - Context helpers that stamp session IDs and step names for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures with errors.Is (retryable input problems vs fatal source errors).
//
// Use these helpers when wiring new step logic so error handling and
// observability stay uniform across the workflow.
package services
