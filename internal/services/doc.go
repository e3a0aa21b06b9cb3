// Package services defines shared utilities consumed by the organizer commands
// and their external collaborators.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and command names for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into the categories the CLI and callers react to (missing metadata
//     columns, unsupported extensions, filesystem failures).
//
// Use these helpers when wiring new commands so operational behaviour (error
// classification, observability) stays uniform across the tool.
package services
