// Package report renders and persists the human readable artifacts of a run:
// the rename audit log, time-range tables, tag listings and the terminal
// tables the CLI prints.
package report
