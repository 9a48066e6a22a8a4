// Package ui provides the terminal user interface for hcalc.
//
// The interface is a single Bubble Tea model that renders the calculator
// body, a history panel, a memory list and a settings panel. All state
// changes go through controller.Controller; the model only tracks focus,
// cursors and transient status text.
//
// # Focus
//
// Keys are routed in three steps:
//
//  1. Global keys: quit, help, escape (clear), copy and paste
//  2. The focused panel (history, memory or settings), if any
//  3. The calculator keypad
//
// Keys a panel does not consume fall through to the keypad, so digits and
// operators keep working while a list is open.
//
// # Themes
//
// Two palettes are configured, one light and one dark. The dark-theme
// preference selects which is active.
//
// # Usage Example
//
//	err := ui.Run(ctx, ui.Options{
//		Controller:   ctrl,
//		LightPalette: cfg.LightPalette,
//		DarkPalette:  cfg.DarkPalette,
//		LogPath:      cfg.LogPath,
//	})
package ui
