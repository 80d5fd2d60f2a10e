package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := styleSubtle.Render("↑/↓ j/k: scroll | ESC/?: close")

	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + footer

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - 10).
		Height(m.height - 4).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}

// updateHelpView fills the help viewport content
func (m *Model) updateHelpView() {
	var b strings.Builder

	b.WriteString(styleHeader.Render("Browsing") + "\n")
	b.WriteString("  j / ↓          next snippet (wraps)\n")
	b.WriteString("  k / ↑          previous snippet (wraps)\n")
	b.WriteString("  g / G          first / last snippet\n")
	b.WriteString("  e              new snippet\n")
	b.WriteString("  c              copy description to clipboard\n")
	b.WriteString("  backspace      delete selected snippet\n")
	b.WriteString("  H              history\n")
	b.WriteString("  q / ctrl+c     quit\n")
	b.WriteString("\n")
	b.WriteString(styleHeader.Render("Editing") + "\n")
	b.WriteString("  tab            switch field\n")
	b.WriteString("  enter          next field, or save on the last one\n")
	b.WriteString("  esc            back to browsing (draft is kept)\n")
	b.WriteString("  ←/→ home/end   move cursor\n")
	b.WriteString("  ctrl+k         clear field\n")
	b.WriteString("  ctrl+v         paste\n")
	b.WriteString("\n")
	b.WriteString(styleHeader.Render("History") + "\n")
	b.WriteString("  j/k            navigate\n")
	b.WriteString("  C              clear history\n")
	b.WriteString("  ESC / H        close\n")

	m.helpView.SetContent(b.String())
}

// renderHistory renders the history modal
func (m *Model) renderHistory() string {
	var content strings.Builder

	if m.historyMgr == nil {
		content.WriteString(styleSubtle.Render("History is disabled."))
	} else if len(m.events) == 0 {
		content.WriteString(styleSubtle.Render("No events recorded yet."))
	} else {
		for i, e := range m.events {
			line := fmt.Sprintf("%s  %-6s  %-20s  %s",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Action,
				truncate(flatten(e.Title), 20),
				truncate(flatten(e.Description), 24),
			)
			if i == m.eventIndex {
				line = styleSelected.Render("> " + line)
			} else {
				line = "  " + line
			}
			content.WriteString(line + "\n")
		}
	}

	footer := "↑/↓ j/k: navigate | C: clear | ESC/H: close"
	selectedLine := -1
	if len(m.events) > 0 {
		selectedLine = m.eventIndex
	}

	return m.renderModalWithFooterAndScroll("History", content.String(), footer, 72, 24, selectedLine)
}

// renderModalWithFooter renders a modal dialog with a fixed footer
func (m *Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	return m.renderModalWithFooterAndScroll(title, content, footer, width, height, -1)
}

// renderModalWithFooterAndScroll renders a modal and auto-scrolls to keep
// selectedLine visible. Pass selectedLine=-1 to preserve the scroll position.
func (m *Model) renderModalWithFooterAndScroll(title, content, footer string, width, height, selectedLine int) string {
	// For small terminals, use almost full screen
	maxWidth := m.width - 4
	maxHeight := m.height - 2
	if width > maxWidth {
		width = maxWidth
	}
	if height > maxHeight {
		height = maxHeight
	}
	if width < 30 && m.width >= 30 {
		width = 30
	}
	if height < 8 && m.height >= 8 {
		height = 8
	}

	// Title (2 lines), padding (2), border (2); footer adds 2 more
	footerLines := 0
	if footer != "" {
		footerLines = 2
	}
	contentHeight := height - 6 - footerLines
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.modalView.Width = width - 4
	if m.modalView.Width < 10 {
		m.modalView.Width = 10
	}
	m.modalView.Height = contentHeight

	savedOffset := m.modalView.YOffset
	m.modalView.SetContent(content)

	if selectedLine >= 0 && m.modalView.Height > 0 {
		topVisible := savedOffset
		bottomVisible := savedOffset + m.modalView.Height - 1

		if selectedLine < topVisible {
			m.modalView.SetYOffset(selectedLine)
		} else if selectedLine > bottomVisible {
			m.modalView.SetYOffset(selectedLine - m.modalView.Height + 1)
		} else {
			m.modalView.SetYOffset(savedOffset)
		}
	} else {
		m.modalView.SetYOffset(savedOffset)
	}

	fullContent := styleTitle.Render(title) + "\n\n" + m.modalView.View()
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}
