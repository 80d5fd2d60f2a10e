package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sniprrr/internal/types"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		m.Cleanup()
		return tea.Quit
	}

	switch m.mode {
	case ModeBrowse:
		return m.handleBrowseKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeDeleteConfirm:
		return m.handleDeleteConfirmKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeHistory:
		return m.handleHistoryKeys(msg)
	}

	return nil
}

// handleBrowseKeys handles keyboard input while browsing the table
func (m *Model) handleBrowseKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.Cleanup()
		return tea.Quit

	case "e":
		// Buffers keep any prior draft; only a commit clears them
		m.mode = ModeEdit
		m.fieldIndex = fieldTitle
		m.errorMsg = ""

	case "j", "down":
		m.selectNext()

	case "k", "up":
		m.selectPrev()

	case "g", "home":
		if len(m.snippets) > 0 {
			m.selected = 0
		}

	case "G", "end":
		if len(m.snippets) > 0 {
			m.selected = len(m.snippets) - 1
		}

	case "backspace", "delete":
		if m.selectedSnippet() == nil {
			return nil
		}
		if m.settingsMgr.Get().ConfirmDelete {
			m.mode = ModeDeleteConfirm
			return nil
		}
		return m.deleteSelected()

	case "c":
		return m.copySelected()

	case "?":
		m.mode = ModeHelp
		m.updateHelpView()

	case "H":
		m.mode = ModeHistory
		return m.loadHistory()
	}

	return nil
}

// handleEditKeys handles keyboard input while composing a snippet
func (m *Model) handleEditKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Draft preservation: leave the buffers alone so re-entering
		// edit mode resumes the text
		m.mode = ModeBrowse
		return nil

	case "tab":
		m.fieldIndex = (m.fieldIndex + 1) % fieldCount
		return nil

	case "enter":
		if m.fieldIndex < fieldCount-1 {
			// Enter on a non-last field advances focus, same as tab
			m.fieldIndex = (m.fieldIndex + 1) % fieldCount
			return nil
		}
		return m.commitSnippet()
	}

	// Text input with cursor support on the focused field
	input, cursor := m.focusedField()
	if _, handled := handleTextInputWithCursor(input, cursor, msg); handled {
		return nil
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		text := msg.String()
		if msg.Type == tea.KeySpace {
			text = " "
		}
		*input = (*input)[:*cursor] + text + (*input)[*cursor:]
		*cursor += len(text)
	}

	return nil
}

// handleDeleteConfirmKeys handles the delete confirmation prompt
func (m *Model) handleDeleteConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = ModeBrowse
		return m.deleteSelected()
	case "n", "N", "esc", "q":
		m.mode = ModeBrowse
	}
	return nil
}

// handleHelpKeys handles keyboard input in the help modal
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "?", "q":
		m.mode = ModeBrowse
	case "j", "down":
		m.helpView.LineDown(1)
	case "k", "up":
		m.helpView.LineUp(1)
	case "pgdown":
		m.helpView.ViewDown()
	case "pgup":
		m.helpView.ViewUp()
	}
	return nil
}

// handleHistoryKeys handles keyboard input in the history modal
func (m *Model) handleHistoryKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "H", "q":
		m.mode = ModeBrowse

	case "j", "down":
		if m.eventIndex < len(m.events)-1 {
			m.eventIndex++
		}

	case "k", "up":
		if m.eventIndex > 0 {
			m.eventIndex--
		}

	case "g":
		m.eventIndex = 0

	case "G":
		if len(m.events) > 0 {
			m.eventIndex = len(m.events) - 1
		}

	case "C":
		if m.historyMgr == nil {
			return nil
		}
		if err := m.historyMgr.Clear(); err != nil {
			m.errorMsg = fmt.Sprintf("Failed to clear history: %v", err)
			return nil
		}
		m.events = nil
		m.eventIndex = 0
		m.statusMsg = "History cleared"
	}
	return nil
}

// deleteSelected removes the highlighted snippet, persists the list, and
// revalidates the selection so it never points past the shortened list.
func (m *Model) deleteSelected() tea.Cmd {
	snippet := m.selectedSnippet()
	if snippet == nil {
		return nil
	}
	title := snippet.Title
	description := snippet.Description

	m.snippets = append(m.snippets[:m.selected], m.snippets[m.selected+1:]...)

	if len(m.snippets) == 0 {
		m.selected = -1
	} else if m.selected >= len(m.snippets) {
		m.selected = len(m.snippets) - 1
	}

	if cmd := m.persist(); cmd != nil {
		return cmd
	}
	m.recordEvent(types.ActionDelete, title, description)
	m.statusMsg = fmt.Sprintf("Deleted %q", title)

	return nil
}

// copySelected writes the highlighted description to the system
// clipboard. Failure is non-fatal and lands in the status bar; with
// quitAfterCopy the program exits after the attempt either way.
func (m *Model) copySelected() tea.Cmd {
	snippet := m.selectedSnippet()
	if snippet == nil {
		return nil
	}

	if err := clipboard.WriteAll(snippet.Description); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to copy to clipboard: %v", err)
	} else {
		m.errorMsg = ""
		m.statusMsg = fmt.Sprintf("copied %q to clipboard", snippet.Title)
		m.recordEvent(types.ActionCopy, snippet.Title, snippet.Description)
	}

	if m.settingsMgr.Get().QuitAfterCopy {
		m.Cleanup()
		return tea.Quit
	}

	return nil
}

// commitSnippet appends a snippet built from the buffers, clears them,
// persists the full list, and returns to browsing.
func (m *Model) commitSnippet() tea.Cmd {
	snippet := types.Snippet{
		Title:       m.titleInput,
		Description: m.descInput,
	}
	m.snippets = append(m.snippets, snippet)

	m.titleInput = ""
	m.descInput = ""
	m.titleCursor = 0
	m.descCursor = 0
	m.fieldIndex = fieldTitle
	m.mode = ModeBrowse
	m.selected = len(m.snippets) - 1

	if cmd := m.persist(); cmd != nil {
		return cmd
	}
	m.recordEvent(types.ActionAdd, snippet.Title, snippet.Description)
	m.statusMsg = fmt.Sprintf("Saved %q", snippet.Title)

	return nil
}

// loadHistory fetches recent events off the key-handling path.
func (m *Model) loadHistory() tea.Cmd {
	if m.historyMgr == nil {
		m.events = nil
		return nil
	}
	mgr := m.historyMgr
	return func() tea.Msg {
		events, err := mgr.Recent(100)
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to load history: %v", err))
		}
		return historyLoadedMsg{events: events}
	}
}

// focusedField returns the buffer and cursor of the field selected by
// fieldIndex.
func (m *Model) focusedField() (*string, *int) {
	if m.fieldIndex == fieldTitle {
		return &m.titleInput, &m.titleCursor
	}
	return &m.descInput, &m.descCursor
}

// handleTextInputWithCursor handles navigation and editing keys shared by
// all text inputs. The cursor is a byte offset that always sits on a rune
// boundary: movement and deletion step by whole runes so multibyte input
// never ends up split. Returns whether the input was modified and whether
// the key was consumed.
func handleTextInputWithCursor(input *string, cursorPos *int, msg tea.KeyMsg) (modified bool, consumed bool) {
	// Ensure cursor position is valid
	if *cursorPos < 0 {
		*cursorPos = 0
	}
	if *cursorPos > len(*input) {
		*cursorPos = len(*input)
	}

	switch msg.String() {
	case "left":
		if *cursorPos > 0 {
			_, size := utf8.DecodeLastRuneInString((*input)[:*cursorPos])
			*cursorPos -= size
		}
		return false, true

	case "right":
		if *cursorPos < len(*input) {
			_, size := utf8.DecodeRuneInString((*input)[*cursorPos:])
			*cursorPos += size
		}
		return false, true

	case "home", "ctrl+a":
		*cursorPos = 0
		return false, true

	case "end", "ctrl+e":
		*cursorPos = len(*input)
		return false, true

	case "ctrl+v", "shift+insert", "super+v":
		// Paste at cursor position; if the clipboard is unavailable just
		// swallow the key
		if text, err := clipboard.ReadAll(); err == nil {
			*input = (*input)[:*cursorPos] + text + (*input)[*cursorPos:]
			*cursorPos += len(text)
			return true, true
		}
		return false, true

	case "ctrl+k":
		if *input != "" {
			*input = ""
			*cursorPos = 0
			return true, true
		}
		return false, true

	case "backspace":
		if *cursorPos > 0 {
			_, size := utf8.DecodeLastRuneInString((*input)[:*cursorPos])
			*input = (*input)[:*cursorPos-size] + (*input)[*cursorPos:]
			*cursorPos -= size
			return true, true
		}
		return false, true

	case "delete":
		if *cursorPos < len(*input) {
			_, size := utf8.DecodeRuneInString((*input)[*cursorPos:])
			*input = (*input)[:*cursorPos] + (*input)[*cursorPos+size:]
			return true, true
		}
		return false, true
	}

	return false, false
}
