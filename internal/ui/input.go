package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/five82/hcalc/internal/calc"
	"github.com/five82/hcalc/internal/logtail"
)

// setting identifies a row in the settings panel.
type setting int

const (
	settingTheme setting = iota
	settingSeparator
	settingKeepOnTop
	settingPinHistory
	settingPalette
)

var settings = []setting{settingTheme, settingSeparator, settingKeepOnTop, settingPinHistory, settingPalette}

// handleKey processes keyboard input. Global keys run first, then the
// focused panel gets a chance, then the calculator keypad.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.ctrl.Clear()
		m.panel = PanelNone

	case key.Matches(msg, m.keys.Copy):
		cmd = m.copyDisplay()

	case key.Matches(msg, m.keys.Paste):
		cmd = m.pasteClipboard()

	default:
		handled := false
		switch m.panel {
		case PanelHistory:
			handled, cmd = m.handleHistoryKey(msg)
		case PanelMemory:
			handled, cmd = m.handleMemoryKey(msg)
		case PanelSettings:
			handled, cmd = m.handleSettingsKey(msg)
		}
		if !handled {
			cmd = m.handleCalculatorKey(msg)
		}
	}

	m.syncPanels()
	return m, cmd
}

// handleCalculatorKey maps keypad keys onto controller operations.
func (m *Model) handleCalculatorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Digit):
		m.ctrl.InputDigit(msg.String())

	case key.Matches(msg, m.keys.Operator):
		if op, ok := calc.ParseOperator(msg.String()); ok {
			m.ctrl.HandleOperator(op)
		}

	case key.Matches(msg, m.keys.Equals):
		m.ctrl.Calculate()

	case key.Matches(msg, m.keys.Backspace):
		m.ctrl.Backspace()

	case key.Matches(msg, m.keys.Percentage):
		m.ctrl.Percentage()

	case key.Matches(msg, m.keys.History):
		m.togglePanel(PanelHistory)

	case key.Matches(msg, m.keys.Settings):
		m.togglePanel(PanelSettings)
		if m.panel == PanelSettings {
			return loadDiagnosticsCmd(m.logFs, m.logPath)
		}

	case key.Matches(msg, m.keys.MemoryClear):
		m.ctrl.MemoryClear()

	case key.Matches(msg, m.keys.MemoryRecall):
		m.ctrl.MemoryRecall()

	case key.Matches(msg, m.keys.MemoryAdd):
		m.ctrl.MemoryAdd()

	case key.Matches(msg, m.keys.MemorySubtract):
		m.ctrl.MemorySubtract()

	case key.Matches(msg, m.keys.MemoryStore):
		m.ctrl.MemoryStore()

	case key.Matches(msg, m.keys.MemoryList):
		if !m.ctrl.HasMemory() {
			return m.setFlash("Memory is empty")
		}
		m.togglePanel(PanelMemory)
	}
	return nil
}

// handleHistoryKey handles keys while the history panel has focus.
func (m *Model) handleHistoryKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	n := len(m.ctrl.History())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.historyCursor = moveCursor(m.historyCursor, -1, n)

	case key.Matches(msg, m.keys.Down):
		m.historyCursor = moveCursor(m.historyCursor, 1, n)

	case key.Matches(msg, m.keys.Select):
		if !m.ctrl.HistoryRestore(m.historyCursor) {
			return true, nil
		}
		if !m.ctrl.Preferences().HistoryPinned {
			m.panel = PanelNone
		}

	case key.Matches(msg, m.keys.Delete):
		m.ctrl.HistoryDeleteAt(m.historyCursor)

	case key.Matches(msg, m.keys.ClearAll):
		if n == 0 {
			return true, nil
		}
		m.ctrl.HistoryClear()
		return true, m.setFlash("History cleared")

	case key.Matches(msg, m.keys.PinHistory):
		if m.ctrl.ToggleHistoryPinned() {
			return true, m.setFlash("History pinned")
		}
		return true, m.setFlash("History unpinned")

	default:
		return false, nil
	}
	return true, nil
}

// handleMemoryKey handles keys while the memory list has focus.
func (m *Model) handleMemoryKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	n := len(m.ctrl.MemoryItems())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.memoryCursor = moveCursor(m.memoryCursor, -1, n)

	case key.Matches(msg, m.keys.Down):
		m.memoryCursor = moveCursor(m.memoryCursor, 1, n)

	case key.Matches(msg, m.keys.Select):
		if m.ctrl.MemoryRecallAt(m.memoryCursor) {
			m.panel = PanelNone
		}

	case key.Matches(msg, m.keys.Delete):
		m.ctrl.MemoryDeleteAt(m.memoryCursor)

	case key.Matches(msg, m.keys.ItemAdd):
		m.ctrl.MemoryAddAt(m.memoryCursor)

	case key.Matches(msg, m.keys.ItemSub):
		m.ctrl.MemorySubtractAt(m.memoryCursor)

	default:
		return false, nil
	}
	return true, nil
}

// handleSettingsKey handles keys while the settings panel has focus.
func (m *Model) handleSettingsKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.settingsCursor = moveCursor(m.settingsCursor, -1, len(settings))

	case key.Matches(msg, m.keys.Down):
		m.settingsCursor = moveCursor(m.settingsCursor, 1, len(settings))

	case key.Matches(msg, m.keys.ToggleValue):
		m.toggleSetting(settings[m.settingsCursor])

	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) toggleSetting(s setting) {
	switch s {
	case settingTheme:
		m.ctrl.ToggleDarkTheme()
	case settingSeparator:
		m.ctrl.ToggleSeparator()
	case settingKeepOnTop:
		m.ctrl.ToggleKeepOnTop()
	case settingPinHistory:
		m.ctrl.ToggleHistoryPinned()
	case settingPalette:
		m.cyclePalette()
	}
}

// cyclePalette switches the active mode to its next palette for this
// session; the configured palettes apply again on the next start.
func (m *Model) cyclePalette() {
	if m.ctrl.Preferences().DarkTheme {
		m.darkPalette = NextPalette(m.darkPalette, true)
		return
	}
	m.lightPalette = NextPalette(m.lightPalette, false)
}

// togglePanel focuses p, or returns focus to the keypad when p already has it.
func (m *Model) togglePanel(p Panel) {
	if m.panel == p {
		m.panel = PanelNone
		return
	}
	m.panel = p
	switch p {
	case PanelHistory:
		m.historyCursor = 0
	case PanelMemory:
		m.memoryCursor = 0
	case PanelSettings:
		m.settingsCursor = 0
	}
}

// syncPanels keeps cursors in range after list mutations and closes the
// memory list once it is empty.
func (m *Model) syncPanels() {
	if m.panel == PanelMemory && !m.ctrl.HasMemory() {
		m.panel = PanelNone
	}
	m.historyCursor = clampCursor(m.historyCursor, len(m.ctrl.History()))
	m.memoryCursor = clampCursor(m.memoryCursor, len(m.ctrl.MemoryItems()))
}

func (m *Model) copyDisplay() tea.Cmd {
	if err := m.clipboard.WriteAll(m.ctrl.CopyValue()); err != nil {
		log.Printf("copy to clipboard failed: %v", err)
		return m.setFlash("Clipboard unavailable")
	}
	return m.setFlash("Copied " + m.ctrl.Display())
}

func (m *Model) pasteClipboard() tea.Cmd {
	text, err := m.clipboard.ReadAll()
	if err != nil {
		log.Printf("read clipboard failed: %v", err)
		return m.setFlash("Clipboard unavailable")
	}
	if !m.ctrl.Paste(text) {
		return m.setFlash("Clipboard does not hold a number")
	}
	return nil
}

// loadDiagnosticsCmd scans the tail of the log file for recent problems.
func loadDiagnosticsCmd(fs afero.Fs, path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(fs, path, DiagnosticsTailLines)
		if err != nil {
			return diagnosticsMsg{"read log failed: " + err.Error()}
		}
		problems := logtail.Problems(lines)
		if len(problems) > DiagnosticsShown {
			problems = problems[len(problems)-DiagnosticsShown:]
		}
		return diagnosticsMsg(problems)
	}
}

func moveCursor(cur, delta, n int) int {
	return clampCursor(cur+delta, n)
}

func clampCursor(cur, n int) int {
	if cur >= n {
		cur = n - 1
	}
	if cur < 0 {
		cur = 0
	}
	return cur
}
