package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit     key.Binding
	Help     key.Binding
	Escape   key.Binding
	Copy     key.Binding
	Paste    key.Binding
	History  key.Binding
	Settings key.Binding

	// Calculator
	Digit      key.Binding
	Operator   key.Binding
	Equals     key.Binding
	Backspace  key.Binding
	Percentage key.Binding

	// Memory
	MemoryClear    key.Binding
	MemoryRecall   key.Binding
	MemoryAdd      key.Binding
	MemorySubtract key.Binding
	MemoryStore    key.Binding
	MemoryList     key.Binding

	// Panels
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Delete      key.Binding
	ItemAdd     key.Binding
	ItemSub     key.Binding
	ClearAll    key.Binding
	PinHistory  key.Binding
	ToggleValue key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Copy"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "Paste"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "History"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Settings"),
		),

		// Calculator
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "Digits"),
		),
		Operator: key.NewBinding(
			key.WithKeys("+", "-", "*", "/"),
			key.WithHelp("+-*/", "Operators"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "Equals"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "Delete digit"),
		),
		Percentage: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "Percent"),
		),

		// Memory
		MemoryClear: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "MC"),
		),
		MemoryRecall: key.NewBinding(
			key.WithKeys("alt+r"),
			key.WithHelp("alt+r", "MR"),
		),
		MemoryAdd: key.NewBinding(
			key.WithKeys("alt+p"),
			key.WithHelp("alt+p", "M+"),
		),
		MemorySubtract: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "M-"),
		),
		MemoryStore: key.NewBinding(
			key.WithKeys("alt+s"),
			key.WithHelp("alt+s", "MS"),
		),
		MemoryList: key.NewBinding(
			key.WithKeys("alt+d"),
			key.WithHelp("alt+d", "Memory list"),
		),

		// Panels
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Use item"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Delete item"),
		),
		ItemAdd: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "Add display to slot"),
		),
		ItemSub: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Subtract display from slot"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear history"),
		),
		PinHistory: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "Pin history"),
		),
		ToggleValue: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "Toggle"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.History, k.MemoryList, k.Settings, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Operator, k.Equals, k.Backspace, k.Percentage, k.Escape},
		{k.MemoryClear, k.MemoryRecall, k.MemoryAdd, k.MemorySubtract, k.MemoryStore, k.MemoryList},
		{k.History, k.PinHistory, k.ClearAll, k.Delete},
		{k.Copy, k.Paste, k.Settings, k.Help, k.Quit},
	}
}
