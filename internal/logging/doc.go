// Package logging assembles the structured slog loggers used across
// shuttercheck.
//
// It owns the console and JSON handlers and centralizes level plumbing so
// every component emits data with the same shape. Prefer these constructors
// over hand-rolled slog setup; NewNop serves tests and wiring code that
// cannot fail.
package logging
