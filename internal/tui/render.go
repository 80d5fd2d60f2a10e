package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed   = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorBlue  = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"}
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the browsing view: snippet table + status bar
func (m Model) renderMain() string {
	tableWidth := m.width - 4
	tableHeight := m.height - 3

	table := m.renderTable(tableWidth, tableHeight)

	tableBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGreen).
		Width(m.width - 2).
		Height(m.height - 1). // Leave 1 line for status bar
		Padding(0, 1).
		Render(table)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tableBox,
		m.renderStatusBar(),
	)
}

// renderTable renders the snippet rows with the selection highlighted
func (m Model) renderTable(width, height int) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Snippets") + "\n\n")

	if len(m.snippets) == 0 {
		b.WriteString(styleSubtle.Render("No snippets yet. Press e to add one."))
		return b.String()
	}

	symbol := m.settingsMgr.Get().HighlightSymbol
	gutter := strings.Repeat(" ", lipgloss.Width(symbol))

	// Title column takes half the width, description the rest
	titleWidth := (width - len(gutter) - 3) / 2
	if titleWidth < 10 {
		titleWidth = 10
	}
	descWidth := width - len(gutter) - titleWidth - 3
	if descWidth < 10 {
		descWidth = 10
	}

	header := fmt.Sprintf("%s%-*s  %s", gutter, titleWidth, "Title", "Description")
	b.WriteString(styleHeader.Render(header) + "\n")

	// Keep the selected row visible when the list outgrows the box
	visible := height - 4 // title, blank, header, trailing status room
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.snippets) {
		end = len(m.snippets)
	}

	for i := start; i < end; i++ {
		snippet := m.snippets[i]
		title := truncate(flatten(snippet.Title), titleWidth)
		desc := truncate(flatten(snippet.Description), descWidth)

		if i == m.selected {
			line := fmt.Sprintf("%s%-*s  %s", symbol, titleWidth, title, desc)
			b.WriteString(styleSelected.Render(line) + "\n")
		} else {
			line := fmt.Sprintf("%s%-*s  %s", gutter, titleWidth, title, desc)
			b.WriteString(line + "\n")
		}
	}

	if end < len(m.snippets) {
		b.WriteString(styleSubtle.Render(fmt.Sprintf("… %d more", len(m.snippets)-end)))
	}

	return b.String()
}

// renderEditor renders the two-field snippet composer
func (m Model) renderEditor() string {
	var content strings.Builder

	content.WriteString("New Snippet\n\n")

	titleField := m.titleInput
	descField := m.descInput
	if m.fieldIndex == fieldTitle {
		titleField = addCursorAt(titleField, m.titleCursor)
	} else {
		descField = addCursorAt(descField, m.descCursor)
	}

	content.WriteString("Title:       " + titleField + "\n")
	content.WriteString("Description: " + descField + "\n")

	footer := "[TAB] switch fields [Enter] save [ESC] cancel"

	return m.renderModalWithFooter("Editing", content.String(), footer, 70, 12)
}

// renderDeleteConfirm renders the delete confirmation prompt
func (m Model) renderDeleteConfirm() string {
	snippet := m.selectedSnippet()
	title := ""
	if snippet != nil {
		title = snippet.Title
	}

	content := fmt.Sprintf("Delete Snippet\n\nAre you sure you want to delete %q?", title)
	return m.renderModalWithFooter("Confirm", content, "[y]es [n]o", 60, 10)
}

// addCursorAt inserts a visible cursor (█) at byte offset pos. The key
// handlers keep pos on a rune boundary; a stray mid-rune value is snapped
// back to the previous boundary.
func addCursorAt(s string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	for pos > 0 && pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos--
	}
	return s[:pos] + "█" + s[pos:]
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("sniprrr | %d snippets", len(m.snippets))

	right := ""
	if m.errorMsg != "" {
		right = styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		if strings.Contains(m.statusMsg, "Saved") || strings.Contains(m.statusMsg, "copied") {
			right = styleSuccess.Render(m.statusMsg)
		} else {
			right = m.statusMsg
		}
	} else {
		right = styleSubtle.Render("e: new | c: copy | backspace: delete | ?: help | q: quit")
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// updateViewports resizes the modal viewports after a window change
func (m *Model) updateViewports() {
	m.helpView.Width = m.width - 14
	m.helpView.Height = m.height - 10
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}
	m.updateHelpView()
}

// flatten collapses newlines so multiline descriptions fit a table row
func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// truncate shortens a string to maxLen runes with an ellipsis, never
// cutting a rune in half
func truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 3
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
