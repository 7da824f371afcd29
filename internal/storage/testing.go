package storage

import (
	"testing"

	"github.com/carson-networks/account-server/internal/config"
)

// NewTestStorage opens a fresh in-memory database for one test. The schema is
// created before the test runs; cleanup drops it and closes the connection so
// every test starts from an empty store.
func NewTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := NewStorage(config.TestConfig())
	if err != nil {
		t.Fatalf("open test storage: %v", err)
	}

	t.Cleanup(func() {
		_ = store.DB.Migrator().DropTable(&Transaction{}, &Account{})
		_ = store.Close()
	})

	return store
}
