// Package stage defines the contract between the workflow engine and the step
// handlers it sequences, plus the Health record used by readiness checks.
package stage
