package testsupport

import (
	"testing"

	"shotname/internal/config"
	"shotname/internal/snapshot"
)

// MustOpenStore opens the run snapshot store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *snapshot.Store {
	t.Helper()

	store, err := snapshot.Open(cfg.SnapshotPath())
	if err != nil {
		t.Fatalf("snapshot.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
