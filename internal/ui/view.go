package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain composes the calculator, any open panels and the footer.
func (m Model) renderMain() string {
	theme := m.theme()
	styles := theme.Styles()

	body := m.renderCalculator(styles)
	if m.historyVisible() {
		body = m.attach(body, m.renderHistory(styles))
	}
	switch m.panel {
	case PanelMemory:
		body = m.attach(body, m.renderMemory(styles))
	case PanelSettings:
		body = m.attach(body, m.renderSettings(styles))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter(theme, styles))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Background)).
		Width(m.width).
		Height(m.height).
		Render(content)
}

// attach places panel beside body, or below it on narrow terminals.
func (m Model) attach(body, panel string) string {
	if m.width < SidePanelMinTerminal {
		return lipgloss.JoinVertical(lipgloss.Left, body, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, " ", panel)
}

func (m Model) renderCalculator(styles Styles) string {
	var b strings.Builder

	// Memory indicator
	if m.ctrl.HasMemory() {
		b.WriteString(styles.AccentText.Render("M"))
	}
	b.WriteString("\n")

	// Operation line
	b.WriteString(styles.MutedText.Width(CalculatorWidth).Align(lipgloss.Right).Render(m.ctrl.OperationString()))
	b.WriteString("\n")

	// Display
	display := styles.Display.Width(CalculatorWidth)
	if m.ctrl.IsError() {
		display = display.Foreground(styles.DangerText.GetForeground())
	}
	b.WriteString(display.Render(m.ctrl.Display()))
	b.WriteString("\n\n")

	b.WriteString(m.renderMemoryRow(styles))
	b.WriteString("\n\n")
	b.WriteString(m.renderKeypad(styles))

	panel := styles.Panel
	if m.panel == PanelNone {
		panel = styles.FocusedPanel
	}
	return panel.Width(CalculatorWidth + 2).Render(b.String())
}

func (m Model) renderMemoryRow(styles Styles) string {
	enabled := m.ctrl.HasMemory()
	labels := []struct {
		text      string
		needsItem bool
	}{
		{"MC", true}, {"MR", true}, {"M+", false}, {"M-", false}, {"MS", false}, {"M▾", true},
	}

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		style := styles.AccentText
		if l.needsItem && !enabled {
			style = styles.FaintText
		}
		parts = append(parts, style.Render(l.text))
	}
	return strings.Join(parts, "  ")
}

var keypadRows = [][]string{
	{"%", "CE", "⌫", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "−"},
	{"1", "2", "3", "+"},
	{"", "0", ".", "="},
}

func (m Model) renderKeypad(styles Styles) string {
	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for i, label := range row {
			style := styles.Key
			if i == len(row)-1 {
				style = styles.OperatorKey
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHistory(styles Styles) string {
	entries := m.ctrl.History()
	focused := m.panel == PanelHistory

	var b strings.Builder
	title := "History"
	if m.ctrl.Preferences().HistoryPinned {
		title += " (pinned)"
	}
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", SidePanelWidth)))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(styles.MutedText.Render("There's no history yet"))
	}

	start, end := listWindow(m.historyCursor, len(entries))
	for i := start; i < end; i++ {
		e := entries[i]
		expr := styles.MutedText.Width(SidePanelWidth).Align(lipgloss.Right).Render(e.Expression)
		result := styles.Text.Bold(true).Width(SidePanelWidth).Align(lipgloss.Right).Render(m.ctrl.FormatValue(e.Result))
		item := expr + "\n" + result
		if focused && i == m.historyCursor {
			item = styles.Selected.Render(e.Expression) + "\n" + styles.Selected.Bold(true).Render(m.ctrl.FormatValue(e.Result))
			item = lipgloss.NewStyle().Width(SidePanelWidth).Align(lipgloss.Right).Render(item)
		}
		b.WriteString(item)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(entries) {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("… %d more", len(entries)-end)))
	}

	return m.panelStyle(styles, focused).Render(b.String())
}

func (m Model) renderMemory(styles Styles) string {
	items := m.ctrl.MemoryItems()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Memory"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", SidePanelWidth)))
	b.WriteString("\n")

	start, end := listWindow(m.memoryCursor, len(items))
	for i := start; i < end; i++ {
		value := m.ctrl.FormatNumber(items[i])
		line := styles.Text.Width(SidePanelWidth).Align(lipgloss.Right).Render(value)
		if i == m.memoryCursor {
			line = styles.Selected.Width(SidePanelWidth).Align(lipgloss.Right).Render(value)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return m.panelStyle(styles, true).Render(b.String())
}

func (m Model) renderSettings(styles Styles) string {
	p := m.ctrl.Preferences()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Settings"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", SidePanelWidth)))
	b.WriteString("\n")

	for i, s := range settings {
		var label, value string
		switch s {
		case settingTheme:
			label, value = "Theme", "Light"
			if p.DarkTheme {
				value = "Dark"
			}
		case settingSeparator:
			label, value = "Digit grouping", onOff(p.UseSeparator)
		case settingKeepOnTop:
			label, value = "Always on top", onOff(p.KeepOnTop)
		case settingPinHistory:
			label, value = "Pin history", onOff(p.HistoryPinned)
		case settingPalette:
			label, value = "Palette", m.theme().Name
		}
		line := fmt.Sprintf("%-20s%s", label, value)
		if i == m.settingsCursor {
			b.WriteString(styles.Selected.Width(SidePanelWidth).Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	if m.version != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Version  " + m.version))
		b.WriteString("\n")
	}

	if len(m.diagnostics) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render("Recent problems"))
		for _, line := range m.diagnostics {
			b.WriteString("\n")
			b.WriteString(styles.FaintText.Width(SidePanelWidth).Render(truncate(line, SidePanelWidth*2)))
		}
	}

	return m.panelStyle(styles, true).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderFooter(theme Theme, styles Styles) string {
	if m.flash != "" {
		return styles.SuccessText.Render(m.flash)
	}

	keys := m.keys
	keys.MemoryList.SetEnabled(m.ctrl.HasMemory())

	h := m.help
	h.Width = m.width
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return h.View(keys)
}

func (m Model) panelStyle(styles Styles, focused bool) lipgloss.Style {
	if focused {
		return styles.FocusedPanel.Width(SidePanelWidth + 2)
	}
	return styles.Panel.Width(SidePanelWidth + 2)
}

// listWindow returns the visible [start, end) range that keeps cursor on
// screen.
func listWindow(cursor, n int) (int, int) {
	start := 0
	if cursor >= ListVisibleRows {
		start = cursor - ListVisibleRows + 1
	}
	end := start + ListVisibleRows
	if end > n {
		end = n
	}
	return start, end
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
