// Package textutil provides filename sanitization for user-supplied naming
// fragments.
//
// Prefixes and optional names flow straight into generated filenames, so they
// are normalized here before the naming engine sees them: filesystem-unsafe
// characters are replaced and whitespace runs collapse to a single dash.
package textutil
