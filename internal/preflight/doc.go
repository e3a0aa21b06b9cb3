// Package preflight provides readiness checks for the external tool and
// filesystem paths that shotname depends on.
//
// These checks run in two contexts:
//   - The organizer calls CheckDirectoryAccess on the target directory
//     before committing renames, so a read-only mount fails before any file
//     is touched.
//   - The CLI "shotname doctor" command runs RunAll to display readiness.
//
// Each check is gated by its config toggle; a disabled exiftool is reported
// as passing with an easy-mode note.
package preflight
