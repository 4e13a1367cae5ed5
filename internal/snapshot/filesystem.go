package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sulta24/feedback-app/internal/board"
)

// FileSystemStore persists snapshots as JSON files in a directory, one file
// per key:
//
//	<root>/
//	  <key>.json
//
// Writes go through a temp file plus rename so a crash mid-write never
// leaves a truncated snapshot behind.
type FileSystemStore struct {
	root string
}

// NewFileSystemStore creates a snapshot store rooted at the given directory,
// creating it if necessary.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}
	return &FileSystemStore{root: root}, nil
}

// Load retrieves the snapshot stored under key.
func (f *FileSystemStore) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading snapshot: %w", err)
	}
	return data, true, nil
}

// Save stores the snapshot under key using an atomic write
// (temp file + rename).
func (f *FileSystemStore) Save(key string, data []byte) error {
	destPath := f.path(key)

	// Temp file in the same directory so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(f.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// Close is a no-op for the filesystem store.
func (f *FileSystemStore) Close() error { return nil }

func (f *FileSystemStore) path(key string) string {
	return filepath.Join(f.root, key+".json")
}

// Compile-time check that FileSystemStore implements board.SnapshotStore
var _ board.SnapshotStore = (*FileSystemStore)(nil)
