package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	uistate "github.com/notifctl/rofication-gui/internal/ui/state"
)

const (
	selectedIndicator = "▌"
	rowIndent         = " "
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	lines := make([]string, 0, 2*maxRows+2)
	lines = append(lines, m.fit(m.filter.View()))

	visible := m.visibleRows()
	m.level.EnsureCursorVisible(visible)
	if len(m.level.Items) == 0 {
		msg := "(no notifications)"
		if m.level.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.level.Filter)
		}
		lines = append(lines, render(styles.Empty, m.fit(msg)))
	} else {
		selected, _ := m.level.Selected()
		for _, row := range m.level.Visible(visible) {
			lines = append(lines, m.renderRow(row, row.Index == selected.Index)...)
		}
	}
	lines = append(lines, m.footer())
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(row uistate.Row, selected bool) []string {
	prefix := rowIndent
	if selected {
		prefix = render(styles.Indicator, selectedIndicator)
	}
	titleStyle, bodyStyle := styles.Item, styles.ItemBody
	switch {
	case selected:
		titleStyle, bodyStyle = styles.SelectedItem, styles.SelectedBody
	case row.Urgent:
		titleStyle = styles.Urgent
	case row.Low:
		titleStyle, bodyStyle = styles.Low, styles.Low
	}
	return []string{
		prefix + render(titleStyle, m.fit(row.Title)),
		rowIndent + render(bodyStyle, m.fit(row.Body)),
	}
}

func (m *Model) footer() string {
	parts := make([]string, 0, 6)
	parts = append(parts, fmt.Sprintf("%d/%d", len(m.level.Items), m.total))
	for _, ab := range keys.actionBindings() {
		help := ab.binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return render(styles.Footer, m.fit(strings.Join(parts, " · ")))
}

// fit truncates text to the terminal width, leaving room for the row prefix.
func (m *Model) fit(text string) string {
	if m.width <= 0 {
		return text
	}
	width := m.width - len(rowIndent)
	if width < 1 {
		width = 1
	}
	return ansi.Truncate(text, width, "…")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
