package snapshot

import (
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Save("board", []byte(`{"records":[]}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, ok, err := store.Load("board")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() ok = false, want true")
	}
	if string(data) != `{"records":[]}` {
		t.Errorf("Load() data = %q", data)
	}
}

func TestSQLiteStore_LoadAbsentKey(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, ok, err := store.Load("board")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("Load() ok = true for absent key, want false")
	}
}

func TestSQLiteStore_SaveReplaces(t *testing.T) {
	store := newTestSQLiteStore(t)

	store.Save("board", []byte("old"))
	if err := store.Save("board", []byte("new")); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	data, _, _ := store.Load("board")
	if string(data) != "new" {
		t.Errorf("Load() data = %q, want %q", data, "new")
	}
}

func TestSQLiteStore_PersistsAcrossReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fb.db")

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	if err := store.Save("board", []byte("persisted")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopening NewSQLiteStore() error = %v", err)
	}
	defer reopened.Close()

	data, ok, err := reopened.Load("board")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() ok = false after reopen, want true")
	}
	if string(data) != "persisted" {
		t.Errorf("Load() data = %q, want %q", data, "persisted")
	}
}
