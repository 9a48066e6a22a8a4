package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/hcalc/internal/calc"
	"github.com/five82/hcalc/internal/controller"
	"github.com/five82/hcalc/internal/store"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.text, f.err }

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type inlineSubmitter struct{}

func (inlineSubmitter) Submit(_ string, write func() error) { _ = write() }

func newTestModel(t *testing.T) (Model, *store.Store, *fakeClipboard) {
	t.Helper()
	fs := afero.NewMemMapFs()
	st, err := store.Open(fs, "/state/state.toml")
	require.NoError(t, err)

	clip := &fakeClipboard{}
	m := New(Options{
		Controller: controller.New(st, inlineSubmitter{}),
		Clipboard:  clip,
		LogFs:      fs,
		LogPath:    "/state/hcalc.log",
		Version:    "test",
	})
	return m, st, clip
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeKeys(m Model, keys string) Model {
	for _, r := range keys {
		m = send(m, runes(string(r)))
	}
	return m
}

func TestModel_BasicCalculation(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeKeys(m, "12+8")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "20", m.ctrl.Display())
	assert.Equal(t, "12 + 8 =", m.ctrl.OperationString())
	require.Len(t, st.History(), 1)
	assert.Contains(t, m.View(), "20")
}

func TestModel_DivideByZeroShowsError(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeKeys(m, "5/0=")

	assert.Equal(t, calc.ErrorDisplay, m.ctrl.Display())
	assert.Contains(t, m.View(), calc.ErrorDisplay)
}

func TestModel_EscapeClearsAndClosesPanels(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeKeys(m, "7+h")
	require.Equal(t, PanelHistory, m.ActivePanel())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, PanelNone, m.ActivePanel())
	assert.Equal(t, "0", m.ctrl.Display())
	assert.Empty(t, m.ctrl.OperationString())
}

func TestModel_BackspaceAndPercent(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeKeys(m, "123")
	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.ctrl.Display())

	m = typeKeys(m, "%")
	assert.Equal(t, "0.12", m.ctrl.Display())
}

func TestModel_MemoryKeys(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeKeys(m, "10")
	m = send(m, alt("s"))
	assert.Equal(t, []float64{10}, m.ctrl.MemoryItems())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = typeKeys(m, "5")
	m = send(m, alt("p"))
	assert.Equal(t, []float64{15}, m.ctrl.MemoryItems())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc}, alt("r"))
	assert.Equal(t, "15", m.ctrl.Display())

	m = send(m, alt("c"))
	assert.False(t, m.ctrl.HasMemory())
	assert.Empty(t, st.Preferences().MemoryItems)
}

func TestModel_MemoryListRequiresItems(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = send(m, alt("d"))
	assert.Equal(t, PanelNone, m.ActivePanel())
	assert.Equal(t, "Memory is empty", m.Flash())
}

func TestModel_MemoryListActions(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeKeys(m, "3")
	m = send(m, alt("s"))
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = typeKeys(m, "4")
	m = send(m, alt("s"))
	require.Equal(t, []float64{4, 3}, m.ctrl.MemoryItems())

	m = send(m, alt("d"))
	require.Equal(t, PanelMemory, m.ActivePanel())

	// "+" adds the display to the selected slot instead of acting as an operator.
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, runes("+"))
	assert.Equal(t, []float64{4, 7}, m.ctrl.MemoryItems())
	assert.Empty(t, m.ctrl.OperationString())

	m = send(m, runes("x"))
	assert.Equal(t, []float64{4}, m.ctrl.MemoryItems())

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, PanelNone, m.ActivePanel())
	assert.Equal(t, "4", m.ctrl.Display())
}

func TestModel_MemoryListClosesWhenEmptied(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeKeys(m, "9")
	m = send(m, alt("s"), alt("d"))
	require.Equal(t, PanelMemory, m.ActivePanel())

	m = send(m, runes("x"))
	assert.False(t, m.ctrl.HasMemory())
	assert.Equal(t, PanelNone, m.ActivePanel())
}

func TestModel_HistoryPanel(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeKeys(m, "1+1=")
	m = typeKeys(m, "*3=")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	m = typeKeys(m, "h")
	require.Equal(t, PanelHistory, m.ActivePanel())
	assert.Contains(t, m.View(), "2 × 3 =")

	m = send(m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "2", m.ctrl.Display())
	assert.Equal(t, "1 + 1 =", m.ctrl.OperationString())
	assert.Equal(t, PanelNone, m.ActivePanel(), "unpinned history closes after restore")

	m = typeKeys(m, "hx")
	require.Len(t, st.History(), 1)
	assert.Equal(t, "1 + 1 =", st.History()[0].Expression)

	m = typeKeys(m, "C")
	assert.Empty(t, st.History())
	assert.Equal(t, "History cleared", m.Flash())
}

func TestModel_PinnedHistoryStaysOpen(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeKeys(m, "2+2=hP")
	require.True(t, st.Preferences().HistoryPinned)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, PanelHistory, m.ActivePanel())

	m = typeKeys(m, "h")
	assert.Equal(t, PanelNone, m.ActivePanel())
	assert.True(t, m.historyVisible())
	assert.Contains(t, m.View(), "History (pinned)")
}

func TestModel_SettingsToggles(t *testing.T) {
	m, st, _ := newTestModel(t)

	m = typeKeys(m, "s")
	require.Equal(t, PanelSettings, m.ActivePanel())

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, st.Preferences().DarkTheme)
	assert.Equal(t, "Nightfox", m.theme().Name)

	m = send(m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, st.Preferences().UseSeparator)

	m = send(m, runes("j"), runes(" "))
	assert.True(t, st.Preferences().KeepOnTop)

	m = typeKeys(m, "s")
	assert.Equal(t, PanelNone, m.ActivePanel())
}

func TestModel_SettingsCyclesPalette(t *testing.T) {
	m, st, _ := newTestModel(t)
	require.Equal(t, "Dawnfox", m.theme().Name)

	m = typeKeys(m, "sjjjj")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Lotus", m.theme().Name)
	assert.Contains(t, m.View(), "Lotus")

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Dawnfox", m.theme().Name)

	// Dark mode cycles its own palette and leaves the light choice alone.
	m = send(m, runes("k"), runes("k"), runes("k"), runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, st.Preferences().DarkTheme)
	m = typeKeys(m, "jjjj")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Kanagawa", m.theme().Name)
	assert.Equal(t, "Dawnfox", m.lightPalette)
}

func TestModel_SettingsLoadsDiagnostics(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.NoError(t, afero.WriteFile(m.logFs, m.logPath, []byte("started\npersist preferences failed: disk full\n"), 0o644))

	next, cmd := m.Update(runes("s"))
	m = next.(Model)
	require.NotNil(t, cmd)

	m = send(m, cmd())
	assert.Equal(t, []string{"persist preferences failed: disk full"}, m.diagnostics)
	assert.Contains(t, m.View(), "Recent problems")
}

func TestModel_CopyAndPaste(t *testing.T) {
	m, _, clip := newTestModel(t)

	m = typeKeys(m, "1234")
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, "1234", clip.text)
	assert.True(t, strings.HasPrefix(m.Flash(), "Copied"))

	clip.text = "-2.5"
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, "-2.5", m.ctrl.Display())

	clip.text = "hello"
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, "-2.5", m.ctrl.Display())
	assert.Equal(t, "Clipboard does not hold a number", m.Flash())
}

func TestModel_ClipboardFailure(t *testing.T) {
	m, _, clip := newTestModel(t)
	clip.err = errors.New("no clipboard utility")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, "Clipboard unavailable", m.Flash())
}

func TestModel_FlashExpires(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = send(m, alt("d"))
	require.NotEmpty(t, m.Flash())

	// A stale expiry does not clear a newer message.
	m = send(m, flashExpiredMsg(m.flashSeq-1))
	assert.NotEmpty(t, m.Flash())

	m = send(m, flashExpiredMsg(m.flashSeq))
	assert.Empty(t, m.Flash())
}

func TestModel_HelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeKeys(m, "?")
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = typeKeys(m, "5")
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")
	assert.Equal(t, "0", m.ctrl.Display(), "key that closes help is not forwarded")
}

func TestModel_QuitAndBounds(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, store.DefaultWindowBounds, m.Bounds())

	m = send(m, tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.Equal(t, store.WindowBounds{Width: 90, Height: 30}, m.Bounds())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
