package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	m := NewManagerWithPath(filepath.Join(t.TempDir(), "config.yaml"))
	m.Load()

	s := m.Get()
	if s.QuitAfterCopy {
		t.Error("QuitAfterCopy should default to false")
	}
	if s.ConfirmDelete {
		t.Error("ConfirmDelete should default to false")
	}
	if s.HistoryEnabled == nil || !*s.HistoryEnabled {
		t.Error("HistoryEnabled should default to true")
	}
	if s.HighlightSymbol != "> " {
		t.Errorf("HighlightSymbol = %q, want %q", s.HighlightSymbol, "> ")
	}
}

func TestLoad_MalformedYAMLUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("quitAfterCopy: [not a bool"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	m := NewManagerWithPath(path)
	m.Load()

	if m.Get().QuitAfterCopy {
		t.Error("malformed file should fall back to defaults")
	}
}

func TestLoad_PartialFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("quitAfterCopy: true\n"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	m := NewManagerWithPath(path)
	m.Load()

	s := m.Get()
	if !s.QuitAfterCopy {
		t.Error("QuitAfterCopy should be true from file")
	}
	if s.HistoryEnabled == nil || !*s.HistoryEnabled {
		t.Error("HistoryEnabled should keep its default when absent")
	}
	if s.HighlightSymbol != "> " {
		t.Errorf("HighlightSymbol = %q, want default", s.HighlightSymbol)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	m := NewManagerWithPath(path)
	m.Load()
	m.Get().ConfirmDelete = true
	m.Get().HighlightSymbol = ">> "
	if err := m.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	m2 := NewManagerWithPath(path)
	m2.Load()
	if !m2.Get().ConfirmDelete {
		t.Error("ConfirmDelete not persisted")
	}
	if m2.Get().HighlightSymbol != ">> " {
		t.Errorf("HighlightSymbol = %q, want %q", m2.Get().HighlightSymbol, ">> ")
	}
}
