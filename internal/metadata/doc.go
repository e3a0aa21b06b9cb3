// Package metadata models the per-file tag table the naming engine consumes
// and provides the readers that produce it.
//
// A Table is an immutable, ordered set of strongly typed Rows, one per media
// file, with an explicit record of which columns every row reported. Readers
// walk a directory, extract tags through exiftool (or the built-in EXIF
// decoder when exiftool is disabled), and return rows sorted by capture time.
// Everything downstream assumes that order and never re-sorts.
package metadata
