// Package grouping splits a capture-ordered row stream into dated batch
// directories and matches further files against the resulting intervals.
//
// Group decides boundaries from time gaps, batch size and calendar days;
// Nearest and AssignSecondary place companion files (videos, files listed in
// a time file) into the interval closest to their capture time. The package
// only plans: moving files is left to the caller.
package grouping
