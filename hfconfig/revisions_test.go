package hfconfig

import (
	"testing"
)

func TestNextRevisionSnapshotsState(t *testing.T) {
	cfg := DefaultHeaderConfig("admin-1")
	cfg.Version = 3
	cfg.IsPublished = true

	rev := nextRevision(&cfg, "admin-2", "tweak nav")

	if rev.Version != 4 {
		t.Fatalf("expected version 4, got %d", rev.Version)
	}
	if !rev.IsPublished || !rev.IsActive {
		t.Fatalf("snapshot should carry the live flags, got %+v", rev)
	}
	if rev.UpdatedBy != "admin-2" || rev.Notes != "tweak nav" {
		t.Fatalf("snapshot actor/notes wrong: %+v", rev)
	}
	if len(rev.Content.Navigation) != len(cfg.Content.Navigation) {
		t.Fatal("snapshot content does not match config")
	}
}

func TestApplyRevisionMonotonicVersions(t *testing.T) {
	cfg := DefaultFooterConfig("admin-1")
	cfg.Version = 1
	cfg.Revisions = nil

	for i := 0; i < 3; i++ {
		applyRevision(&cfg, nextRevision(&cfg, "admin-1", ""))
	}

	if cfg.Version != 4 {
		t.Fatalf("expected version 4 after three revisions, got %d", cfg.Version)
	}
	if len(cfg.Revisions) != 3 {
		t.Fatalf("expected 3 revisions, got %d", len(cfg.Revisions))
	}
	for i, rev := range cfg.Revisions {
		if rev.Version != i+2 {
			t.Fatalf("revision %d has version %d, want %d", i, rev.Version, i+2)
		}
	}
}
