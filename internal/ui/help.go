package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	theme := m.theme()
	styles := theme.Styles()

	sections := []helpSection{
		{
			title: "Calculator",
			items: []helpItem{
				{"0-9 .", "Enter digits"},
				{"+ - * /", "Operators"},
				{"enter/=", "Equals"},
				{"backspace", "Delete last digit"},
				{"%", "Percent"},
				{"esc", "Clear all"},
			},
		},
		{
			title: "Memory",
			items: []helpItem{
				{"alt+c/r", "Clear/recall"},
				{"alt+p/m", "Add/subtract"},
				{"alt+s", "Store"},
				{"alt+d", "Memory list"},
			},
		},
		{
			title: "Lists",
			items: []helpItem{
				{"h", "Toggle history"},
				{"j/k", "Move down/up"},
				{"enter", "Use item"},
				{"x", "Delete item"},
				{"+/-", "Adjust memory slot"},
				{"C/P", "Clear/pin history"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"ctrl+c/v", "Copy/paste"},
				{"s", "Settings"},
				{"?", "Toggle help"},
				{"q/ctrl+q", "Quit"},
			},
		},
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
