package app

import (
	"path/filepath"
	"testing"

	"github.com/sulta24/feedback-app/internal/board"
	"github.com/sulta24/feedback-app/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	return &config.Config{
		BoardID: "test-board",
		BaseDir: base,
		LogDir:  filepath.Join(base, "log"),
		Snapshot: config.SnapshotConfig{
			Type: "filesystem",
			Dir:  filepath.Join(base, "snapshots"),
		},
	}
}

func TestApp_BoardSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	a1, err := New(cfg, "Create")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	id, err := a1.Store().Create("Persist me", board.CategoryFeature)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := a1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	a2, err := New(cfg, "List")
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	defer a2.Close()

	records := a2.Store().State().Records
	if len(records) != 1 {
		t.Fatalf("records = %d after restart, want 1", len(records))
	}
	if records[0].ID != id || records[0].Text != "Persist me" {
		t.Errorf("record = %+v, want id %q text %q", records[0], id, "Persist me")
	}
}

func TestApp_RejectsUnknownSnapshotType(t *testing.T) {
	cfg := testConfig(t)
	cfg.Snapshot.Type = "flatfile"

	if _, err := New(cfg, "List"); err == nil {
		t.Error("New() expected error for unknown snapshot store type")
	}
}
