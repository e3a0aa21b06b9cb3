// Package organizer runs the shotname commands against a directory.
//
// A Service ties the metadata reader, the naming and grouping engines, the
// filesystem collaborator and the run snapshot store together. Every
// mutating command follows the same shape: take the directory lock, read the
// metadata table, check required columns before touching any file, decide
// the full plan, persist it (audit log, snapshot), then apply it. Plan-only
// requests stop after persisting.
//
// Renames are committed in two phases through fileops.Commit so old and new
// names may overlap. Cancellation or a failed rename leaves completed renames
// in place; there is no rollback beyond returning pending files to their old
// names.
package organizer
