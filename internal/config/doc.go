// Package config loads, normalizes, and validates shotname configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SHOTNAME_EXIFTOOL. The Config type centralizes every knob the CLI and the
// organizer need: naming defaults, grouping thresholds, extractor settings,
// and where audit logs, reports, and run snapshots are written.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
