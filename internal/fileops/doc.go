// Package fileops performs the filesystem side of a run: renames in place,
// moves into batch directories, verified copies, the two-phase rename commit
// and the per-directory run lock.
//
// Every operation refuses to overwrite an existing file and reports failures
// as services.ErrFilesystem.
package fileops
