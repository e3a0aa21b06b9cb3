// Package sequence tracks per-day counters and shot sequences over a
// capture-time-ordered stream of rows.
//
// A Tracker is a small state machine: each Advance consumes one row's
// timestamp and sequence number and reports the counter the name builder
// should use, whether a new day began, and whether a shot sequence restarted.
// CountDigits runs the same machine as a dry pass to fix the counter width
// for a whole run.
package sequence
