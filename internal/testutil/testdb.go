package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"clover-casino/internal/store"
)

// OpenTestStore provisions an isolated SQLite store in a per-test temp
// directory with the schema applied.
func OpenTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "casino.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Init(context.Background()); err != nil {
		st.Close()
		t.Fatalf("apply schema: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}
