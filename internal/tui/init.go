package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sniprrr/internal/config"
	"github.com/studiowebux/sniprrr/internal/history"
	"github.com/studiowebux/sniprrr/internal/settings"
	"github.com/studiowebux/sniprrr/internal/store"
)

// New creates a new TUI model. The snippet list comes from the store's
// load result; a degraded load (missing, unreadable, malformed file)
// starts the session with an empty list and is never surfaced.
func New(s *store.Store, settingsMgr *settings.Manager, historyMgr *history.Manager) Model {
	snippets, outcome := s.Load()

	m := Model{
		snippetStore: s,
		settingsMgr:  settingsMgr,
		historyMgr:   historyMgr,
		snippets:     snippets,
		selected:     -1,
		loadNote:     outcome,
		mode:         ModeBrowse,
		helpView:     viewport.New(80, 20),
		modalView:    viewport.New(80, 20),
	}

	return m
}

// Run starts the TUI
func Run() error {
	if err := config.Initialize(); err != nil {
		return err
	}

	settingsMgr := settings.NewManager()
	settingsMgr.Load()

	// History is best effort: an unopenable database disables the log
	// but never blocks the session
	var historyMgr *history.Manager
	if hist := settingsMgr.Get().HistoryEnabled; hist != nil && *hist {
		if mgr, err := history.NewManager(config.DatabasePath); err == nil {
			historyMgr = mgr
		}
	}

	m := New(store.New(), settingsMgr, historyMgr)

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		m.Cleanup()
		return err
	}
	m.Cleanup()

	// A failed persist quits the loop; surface it once the terminal
	// is restored
	return m.fatalErr
}
