// Package snapshot persists every run in a local SQLite database: the run
// itself, the full metadata table it read (with classifications), the naming
// records it produced, and the batch intervals of order runs.
//
// The database is a record of decisions, not a cache: nothing in a run reads
// earlier snapshots. The schema is versioned; a mismatch asks the user to
// delete the database rather than migrating it.
package snapshot
