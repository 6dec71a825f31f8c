package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/rsqlwhere/internal/testutil"
)

// createTestStore creates a new temp-dir store with a deterministic clock
// and sequential IDs.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path,
		WithClock(testutil.NewDeterministicClock().Now),
		WithIDGenerator(testutil.NewSequentialIDGenerator("tr").Generate),
	)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
