// Package logging builds the slog loggers shared by every shotname command.
//
// Two handlers are provided: a console handler printing
// "time LEVEL component: message key=value" with optional ANSI level colours,
// and a JSON handler with short keys for log files that are post-processed.
// Time attributes are rendered in capture form (no zone conversion,
// sub-seconds only when present) so collision and grouping warnings can be
// read against file names directly.
//
// WithContext adds the run ID and command stored by the services package;
// NewNop discards everything and is what tests pass to collaborators.
package logging
