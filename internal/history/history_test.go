package history

import (
	"path/filepath"
	"testing"

	"github.com/studiowebux/sniprrr/internal/types"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })

	return m
}

func TestRecordAndRecent(t *testing.T) {
	m := newTestManager(t)

	if err := m.Record(types.ActionAdd, "first", "echo hello"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := m.Record(types.ActionCopy, "first", "echo hello"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := m.Record(types.ActionDelete, "first", "echo hello"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	events, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first
	if events[0].Action != types.ActionDelete {
		t.Errorf("events[0].Action = %q, want %q", events[0].Action, types.ActionDelete)
	}
	if events[2].Action != types.ActionAdd {
		t.Errorf("events[2].Action = %q, want %q", events[2].Action, types.ActionAdd)
	}
	if events[0].Title != "first" {
		t.Errorf("events[0].Title = %q, want %q", events[0].Title, "first")
	}
	if events[0].Description != "echo hello" {
		t.Errorf("events[0].Description = %q, want %q", events[0].Description, "echo hello")
	}
}

func TestRecent_Limit(t *testing.T) {
	m := newTestManager(t)

	for i := 0; i < 5; i++ {
		if err := m.Record(types.ActionAdd, "snippet", "body"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	events, err := m.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("got %d events, want 3", len(events))
	}
}

func TestRecent_Empty(t *testing.T) {
	m := newTestManager(t)

	events, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestClear(t *testing.T) {
	m := newTestManager(t)

	if err := m.Record(types.ActionAdd, "snippet", "body"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	events, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after clear, want 0", len(events))
	}
}
