// Package analysis orders photo records chronologically and scans the
// ordered sequence for counter irregularities that suggest a reset,
// component replacement, or tampering.
//
// Ordering is stable: dated records sort ascending by capture time, undated
// records keep their original scan order at the end. Detection is a single
// linear pass carrying a last-valid-seen cursor per counter class, so
// records with missing counters do not mask a regression between two valid,
// farther-apart readings.
//
// The thresholds are policy, not physics. They are carried in a Thresholds
// struct so callers can override them from configuration.
package analysis
