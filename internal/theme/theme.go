package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles for the terminal picker.
type Styles struct {
	Prompt       *lipgloss.Style
	Filter       *lipgloss.Style
	Item         *lipgloss.Style
	ItemBody     *lipgloss.Style
	SelectedItem *lipgloss.Style
	SelectedBody *lipgloss.Style
	Indicator    *lipgloss.Style
	Urgent       *lipgloss.Style
	Low          *lipgloss.Style
	Empty        *lipgloss.Style
	Footer       *lipgloss.Style
}

var defaultStyles = Styles{
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	),
	ItemBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Urgent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Low: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
