package app

import (
	"fmt"
	"os"
	"time"

	"github.com/sulta24/feedback-app/internal/board"
	"github.com/sulta24/feedback-app/internal/config"
	"github.com/sulta24/feedback-app/internal/snapshot"
)

// App is the application layer between the CLI and the board store.
// It constructs all dependencies from config and manages the snapshot
// store lifecycle on Close.
type App struct {
	cfg       *config.Config
	snapshots board.SnapshotStore
	store     *board.Store
	logFile   *os.File
}

// New creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "Create", "Export").
// The caller must call Close when done.
func New(cfg *config.Config, operation string) (*App, error) {
	snapshots, err := snapshot.NewStoreFromConfig(cfg.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("creating snapshot store: %w", err)
	}

	opID := operation + "-" + time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		snapshots.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	store, err := board.Open(snapshots, board.RealClock{}, board.UUIDGenerator{}, &slogAdapter{l: logger})
	if err != nil {
		logFile.Close()
		snapshots.Close()
		return nil, fmt.Errorf("opening board: %w", err)
	}

	return &App{
		cfg:       cfg,
		snapshots: snapshots,
		store:     store,
		logFile:   logFile,
	}, nil
}

// Store returns the board store.
func (a *App) Store() *board.Store { return a.store }

// Close releases the snapshot store and the log file.
func (a *App) Close() error {
	var firstErr error

	if err := a.snapshots.Close(); err != nil {
		firstErr = fmt.Errorf("closing snapshot store: %w", err)
	}

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}

	return firstErr
}
