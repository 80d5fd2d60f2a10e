package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sniprrr/internal/settings"
	"github.com/studiowebux/sniprrr/internal/store"
	"github.com/studiowebux/sniprrr/internal/types"
)

// newTestModel creates a Model backed by a temp-dir store, default
// settings, and no history database.
func newTestModel(t *testing.T) *Model {
	t.Helper()

	dir := t.TempDir()
	s := &store.Store{Path: filepath.Join(dir, "messages.json")}

	settingsMgr := settings.NewManagerWithPath(filepath.Join(dir, "config.yaml"))
	settingsMgr.Load()

	m := New(s, settingsMgr, nil)
	m.width = 80
	m.height = 24

	return &m
}

// seedSnippets installs a snippet list without going through the editor.
func seedSnippets(t *testing.T, m *Model, titles ...string) {
	t.Helper()

	m.snippets = nil
	for _, title := range titles {
		m.snippets = append(m.snippets, types.Snippet{Title: title, Description: "desc " + title})
	}
}

// press sends one key through Update.
func press(t *testing.T, m *Model, key string) tea.Cmd {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "delete":
		msg = tea.KeyMsg{Type: tea.KeyDelete}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	_, cmd := m.Update(msg)
	return cmd
}

// typeText sends a string rune by rune.
func typeText(t *testing.T, m *Model, text string) {
	t.Helper()

	for _, r := range text {
		press(t, m, string(r))
	}
}

// assertQuit runs a command and checks it produces tea.QuitMsg.
func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()

	if cmd == nil {
		t.Fatal("expected a quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
