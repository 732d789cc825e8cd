package testsupport

import (
	"context"
	"testing"

	"forge3d/internal/config"
	"forge3d/internal/history"
)

// MustOpenHistory opens a history.Store for tests and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// RecordDownload appends a successful download entry for tests.
func RecordDownload(t testing.TB, store *history.Store, assetID, destPath string) *history.Entry {
	t.Helper()

	entry, err := store.Append(context.Background(), history.Entry{
		AssetID:   assetID,
		DestPath:  destPath,
		Succeeded: true,
	})
	if err != nil {
		t.Fatalf("history.Append: %v", err)
	}
	return entry
}
