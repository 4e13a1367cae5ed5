package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sulta24/feedback-app/internal/board"
	"github.com/sulta24/feedback-app/internal/config"
)

// NewStoreFromConfig creates a SnapshotStore implementation based on the
// snapshot config type.
func NewStoreFromConfig(cfg config.SnapshotConfig) (board.SnapshotStore, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.Dir == "" {
			return nil, fmt.Errorf("filesystem snapshot store requires dir to be set")
		}
		return NewFileSystemStore(cfg.Dir)
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("sqlite snapshot store requires data_dir to be set")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, "fb.db"))
	default:
		return nil, fmt.Errorf("unknown snapshot store type: %s", cfg.Type)
	}
}
