package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/filetree/internal/session"
	"github.com/nikbrunner/filetree/internal/tui/layout"
)

func (a App) renderView() string {
	if a.showHelp {
		return a.renderHelpOverlay()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		a.styles.Label.Render(" Project Structure "),
		a.renderTreePane(),
		a.styles.Label.Render(" Info "),
		a.renderInfoPane(),
		a.styles.Label.Render(a.inputTitle()),
		a.renderInputPane(),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTreePane renders the visible window of rows with the selection marked.
func (a App) renderTreePane() string {
	rowsVisible := layout.TreeRows(a.height, a.layoutConfig)
	contentWidth := layout.ContentWidth(a.width, a.layoutConfig)
	rows := a.session.Rows()

	var lines []string
	if len(rows) == 0 {
		lines = append(lines, a.styles.Empty.Render("(empty) press i to insert paths"))
	} else {
		selected, ok := a.session.Cursor()
		if !ok {
			selected = -1
		}
		start, end := layout.Window(max(selected, 0), len(rows), rowsVisible)

		marker := a.layoutConfig.Marker
		blank := strings.Repeat(" ", len(marker))
		for i := start; i < end; i++ {
			line := layout.Truncate(rows[i].Line, contentWidth-len(marker), a.layoutConfig.Ellipsis)
			if i == selected {
				lines = append(lines, a.styles.ItemSelected.Render(marker+line))
				continue
			}
			lines = append(lines, a.styles.Item.Render(blank+line))
		}
	}

	return a.styles.Pane.
		Width(a.width - 2).
		Height(rowsVisible).
		Render(strings.Join(lines, "\n"))
}

// renderInfoPane renders "Status: <message> | <hints>" in the mode colour.
func (a App) renderInfoPane() string {
	status := a.session.Status()
	if a.notice != "" {
		status = a.notice
	}

	text := a.statusStyle().Render("Status: " + status)
	if a.showHints {
		text += " | " + a.renderHints(a.getContextualHints())
	}
	return a.styles.Pane.
		Width(a.width - 2).
		Render(text)
}

func (a App) statusStyle() lipgloss.Style {
	switch a.session.Mode() {
	case session.ModeDeleteConfirm:
		return a.styles.StatusDanger
	case session.ModeEdit:
		return a.styles.StatusEdit
	default:
		return a.styles.Status
	}
}

func (a App) inputTitle() string {
	if a.finding {
		return " Find "
	}
	switch a.session.Mode() {
	case session.ModeInsert:
		return " Batch Insert (Paste here) "
	case session.ModeEdit:
		return " Editing Path "
	case session.ModeDeleteConfirm:
		return " Input Path (Disabled) "
	default:
		return " Input Path "
	}
}

// renderInputPane echoes the session buffer, or the find query while the
// find prompt is open.
func (a App) renderInputPane() string {
	style := a.styles.Pane
	if a.finding || a.session.Mode().AcceptsInput() {
		style = a.styles.InputActive
	}

	input := a.input
	if a.finding {
		input = a.find
	}
	input.Width = layout.ContentWidth(a.width, a.layoutConfig) - 1

	return style.Width(a.width - 2).Render(input.View())
}

func (a App) renderHelpOverlay() string {
	width := layout.ContentWidth(a.width, a.layoutConfig)
	body := renderHelp(width)
	footer := a.styles.HintKey.Render("[?/esc] close")

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, body, footer),
	)
}
