package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sniprrr/internal/history"
	"github.com/studiowebux/sniprrr/internal/settings"
	"github.com/studiowebux/sniprrr/internal/store"
	"github.com/studiowebux/sniprrr/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeBrowse Mode = iota
	ModeEdit
	ModeDeleteConfirm
	ModeHelp
	ModeHistory
)

// Editor fields. fieldIndex is only consulted while mode == ModeEdit.
const (
	fieldTitle = iota
	fieldDescription
	fieldCount
)

// Model represents the TUI state
type Model struct {
	// Collaborators
	snippetStore *store.Store
	settingsMgr  *settings.Manager
	historyMgr   *history.Manager // nil when history is disabled or unavailable

	// Snippet list and table selection
	snippets []types.Snippet
	selected int // -1 when nothing is selected
	loadNote store.LoadOutcome

	mode Mode

	// Editor state
	fieldIndex  int
	titleInput  string
	descInput   string
	titleCursor int
	descCursor  int

	// History modal state
	events     []types.Event
	eventIndex int

	// Viewports for scrollable modals
	helpView  viewport.Model
	modalView viewport.Model

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string

	// fatalErr carries a failed persist out of the event loop; Run
	// returns it after the terminal is restored.
	fatalErr error
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// FatalErr returns the error that forced the event loop to quit, if any.
func (m *Model) FatalErr() error {
	return m.fatalErr
}

// Cleanup closes the history database.
func (m *Model) Cleanup() {
	if m.historyMgr != nil {
		m.historyMgr.Close()
		m.historyMgr = nil
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	// Discard mouse events so terminal scrolling doesn't fight the alt screen
	case tea.MouseMsg:

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewports()

	case historyLoadedMsg:
		m.events = msg.events
		m.eventIndex = 0

	case errorMsg:
		m.errorMsg = string(msg)
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeEdit:
		return m.renderEditor()
	case ModeDeleteConfirm:
		return m.renderDeleteConfirm()
	case ModeHelp:
		return m.renderHelp()
	case ModeHistory:
		return m.renderHistory()
	default:
		return m.renderMain()
	}
}

// Custom message types
type historyLoadedMsg struct {
	events []types.Event
}

type errorMsg string

// Snippets returns the current snippet list.
func (m *Model) Snippets() []types.Snippet {
	return m.snippets
}

// Selected returns the table selection index, -1 when nothing is selected.
func (m *Model) Selected() int {
	return m.selected
}

// CurrentMode returns the current interaction mode.
func (m *Model) CurrentMode() Mode {
	return m.mode
}

// selectedSnippet returns the highlighted snippet, or nil when the
// selection is empty or out of range.
func (m *Model) selectedSnippet() *types.Snippet {
	if m.selected < 0 || m.selected >= len(m.snippets) {
		return nil
	}
	return &m.snippets[m.selected]
}

// selectNext advances the table selection, wrapping past the last row.
func (m *Model) selectNext() {
	if len(m.snippets) == 0 {
		return
	}
	if m.selected < 0 {
		m.selected = 0
		return
	}
	if m.selected >= len(m.snippets)-1 {
		m.selected = 0
		return
	}
	m.selected++
}

// selectPrev retreats the table selection, wrapping before the first row.
func (m *Model) selectPrev() {
	if len(m.snippets) == 0 {
		return
	}
	if m.selected < 0 {
		m.selected = 0
		return
	}
	if m.selected == 0 {
		m.selected = len(m.snippets) - 1
		return
	}
	m.selected--
}

// persist writes the full snippet list. A failed save is fatal: the
// model records the error and the caller quits the loop.
func (m *Model) persist() tea.Cmd {
	if err := m.snippetStore.Save(m.snippets); err != nil {
		m.fatalErr = err
		return tea.Quit
	}
	return nil
}

// recordEvent logs to the history database, best effort.
func (m *Model) recordEvent(action, title, description string) {
	if m.historyMgr == nil {
		return
	}
	_ = m.historyMgr.Record(action, title, description)
}
