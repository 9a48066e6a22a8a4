package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/five82/hcalc/internal/controller"
	"github.com/five82/hcalc/internal/store"
)

// Panel identifies which side panel has keyboard focus.
type Panel int

const (
	PanelNone Panel = iota
	PanelHistory
	PanelMemory
	PanelSettings
)

// Options configures the UI.
type Options struct {
	Controller   *controller.Controller
	LightPalette string
	DarkPalette  string

	// Bounds is the terminal size used until the first resize event.
	Bounds store.WindowBounds
	// SaveBounds receives the final terminal size when the program exits.
	SaveBounds func(store.WindowBounds)

	Clipboard Clipboard
	LogFs     afero.Fs
	LogPath   string
	Version   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctrl         *controller.Controller
	keys         keyMap
	help         help.Model
	lightPalette string
	darkPalette  string
	clipboard    Clipboard
	logFs        afero.Fs
	logPath      string
	version      string

	// UI state
	width    int
	height   int
	panel    Panel
	showHelp bool

	// Panel cursors
	historyCursor  int
	memoryCursor   int
	settingsCursor int

	// Transient status line
	flash    string
	flashSeq int

	// Settings diagnostics
	diagnostics []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	bounds := opts.Bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = store.DefaultWindowBounds
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard()
	}

	logFs := opts.LogFs
	if logFs == nil {
		logFs = afero.NewOsFs()
	}

	return Model{
		ctrl:         opts.Controller,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		lightPalette: opts.LightPalette,
		darkPalette:  opts.DarkPalette,
		clipboard:    clip,
		logFs:        logFs,
		logPath:      opts.LogPath,
		version:      opts.Version,
		width:        bounds.Width,
		height:       bounds.Height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case flashExpiredMsg:
		if int(msg) == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case diagnosticsMsg:
		m.diagnostics = []string(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// Bounds returns the current terminal size.
func (m Model) Bounds() store.WindowBounds {
	return store.WindowBounds{Width: m.width, Height: m.height}
}

// ActivePanel returns the panel that currently has focus.
func (m Model) ActivePanel() Panel {
	return m.panel
}

// Flash returns the transient status message, if any.
func (m Model) Flash() string {
	return m.flash
}

// theme returns the palette for the current dark-theme preference.
func (m Model) theme() Theme {
	if m.ctrl.Preferences().DarkTheme {
		return ThemeFor(m.darkPalette, true)
	}
	return ThemeFor(m.lightPalette, false)
}

// historyVisible reports whether the history panel is drawn.
func (m Model) historyVisible() bool {
	return m.panel == PanelHistory || m.ctrl.Preferences().HistoryPinned
}

type flashExpiredMsg int

type diagnosticsMsg []string

// setFlash shows text on the status line until flashDuration passes or a
// newer message replaces it.
func (m *Model) setFlash(text string) tea.Cmd {
	m.flashSeq++
	seq := m.flashSeq
	m.flash = text
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg(seq)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok && opts.SaveBounds != nil {
		opts.SaveBounds(fm.Bounds())
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Printf("ui stopped: %v", ctx.Err())
		return nil
	}
	return err
}
