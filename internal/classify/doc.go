// Package classify derives capture-mode facts from a metadata row.
//
// Every function here is pure: it reads tag values, consults the fixed
// abbreviation tables, and returns a predicate, a name fragment, or a
// Classification summary. Absent tags read as empty strings, which every
// predicate treats as "not set".
package classify
