// Package main hosts the shotname CLI entrypoint and command graph.
//
// The Cobra-based command tree maps terminal invocations onto the organizer
// service: renaming photos and videos from their capture metadata, sorting
// them into day and time-gap directories, listing and searching tags, and
// writing sheet descriptions back into files. It centralizes configuration
// resolution, logger construction, reader selection and the run snapshot
// store so subcommands only translate flags into requests and render the
// results.
//
// Every mutating command accepts --plan, which computes and reports the full
// plan (audit file, preview table) without touching a single file.
package main
