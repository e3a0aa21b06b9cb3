// Package naming composes new file names from classified metadata rows.
//
// A Builder consumes rows in capture order and produces one Record per row:
//
//	[Prefix][Date][_Camera][_Name]_[Counter][SequenceTag][ModePostfix][Postfix].ext
//
// It owns the run's collision log, so every emitted base name is unique
// within the run, and never touches the filesystem itself. Raw companions
// are detected through an injected existence probe.
package naming
