package controller

import (
	"strings"

	"github.com/five82/hcalc/internal/calc"
	"github.com/five82/hcalc/internal/history"
	"github.com/five82/hcalc/internal/memory"
	"github.com/five82/hcalc/internal/prefs"
	"github.com/five82/hcalc/internal/store"
)

// Store is the persistence capability the controller needs. *store.Store
// implements it.
type Store interface {
	Preferences() prefs.Preferences
	SetPreferences(prefs.Preferences) error
	History() []history.Entry
	SetHistory([]history.Entry) error
}

var _ Store = (*store.Store)(nil)

// Submitter queues a write without blocking the caller. *Syncer implements it.
type Submitter interface {
	Submit(key string, write func() error)
}

// Controller owns one calculator's state: the machine, the memory bank, the
// history log and the preferences. It is not safe for concurrent use; the
// UI drives it from a single goroutine.
type Controller struct {
	store   Store
	submit  Submitter
	machine *calc.Machine
	memory  *memory.Bank
	history *history.Log
	prefs   prefs.Preferences
}

// New loads preferences, memory and history from st and returns a controller
// that persists every mutation through submit.
func New(st Store, submit Submitter) *Controller {
	p := st.Preferences()
	return &Controller{
		store:   st,
		submit:  submit,
		machine: calc.NewMachine(),
		memory:  memory.New(p.MemoryItems),
		history: history.New(st.History()),
		prefs:   p.Clone(),
	}
}

// Display returns the display text, digit-grouped when enabled.
func (c *Controller) Display() string {
	return calc.Format(c.machine.Display(), c.prefs.UseSeparator)
}

// RawDisplay returns the unformatted display text.
func (c *Controller) RawDisplay() string { return c.machine.Display() }

// OperationString returns the running expression.
func (c *Controller) OperationString() string { return c.machine.OperationString() }

// Completed reports whether the operation string is a finished calculation.
func (c *Controller) Completed() bool { return c.machine.Completed() }

// IsError reports whether the display shows the error sentinel.
func (c *Controller) IsError() bool { return c.machine.IsError() }

// FormatValue applies the digit-grouping preference to an unformatted value.
func (c *Controller) FormatValue(v string) string {
	return calc.Format(v, c.prefs.UseSeparator)
}

// FormatNumber renders v with the digit-grouping preference applied.
func (c *Controller) FormatNumber(v float64) string {
	return c.FormatValue(calc.FormatNumber(v))
}

// InputDigit forwards a digit or "." to the machine.
func (c *Controller) InputDigit(d string) { c.machine.InputDigit(d) }

// HandleOperator forwards an operator key to the machine.
func (c *Controller) HandleOperator(op calc.Operator) { c.machine.HandleOperator(op) }

// Calculate performs "=" and records a successful result in the history.
func (c *Controller) Calculate() {
	result, ok := c.machine.PerformCalculation()
	if !ok {
		return
	}
	c.RecordHistory(history.Entry{Expression: result.Expression, Result: result.Result})
}

// Backspace removes the last typed character.
func (c *Controller) Backspace() { c.machine.Backspace() }

// Percentage divides the display by 100.
func (c *Controller) Percentage() { c.machine.Percentage() }

// Clear resets the calculator.
func (c *Controller) Clear() { c.machine.Reset() }

// CopyValue returns the display value for the clipboard, without separators.
func (c *Controller) CopyValue() string {
	return strings.ReplaceAll(c.machine.Display(), ",", "")
}

// Paste replaces the display with text when it is a plain decimal literal.
func (c *Controller) Paste(text string) bool {
	return c.machine.SetDisplay(text)
}

// Preferences returns a copy of the current preferences.
func (c *Controller) Preferences() prefs.Preferences {
	p := c.prefs.Clone()
	p.MemoryItems = c.memory.Items()
	return p
}

// ToggleDarkTheme flips the theme preference.
func (c *Controller) ToggleDarkTheme() bool {
	c.prefs.DarkTheme = !c.prefs.DarkTheme
	c.savePreferences()
	return c.prefs.DarkTheme
}

// ToggleSeparator flips digit grouping.
func (c *Controller) ToggleSeparator() bool {
	c.prefs.UseSeparator = !c.prefs.UseSeparator
	c.savePreferences()
	return c.prefs.UseSeparator
}

// ToggleKeepOnTop flips the always-on-top preference.
func (c *Controller) ToggleKeepOnTop() bool {
	c.prefs.KeepOnTop = !c.prefs.KeepOnTop
	c.savePreferences()
	return c.prefs.KeepOnTop
}

// ToggleHistoryPinned flips whether the history panel stays open.
func (c *Controller) ToggleHistoryPinned() bool {
	c.prefs.HistoryPinned = !c.prefs.HistoryPinned
	c.savePreferences()
	return c.prefs.HistoryPinned
}

// savePreferences submits the full preferences value, memory included.
func (c *Controller) savePreferences() {
	if c.submit == nil {
		return
	}
	snapshot := c.Preferences()
	c.submit.Submit(store.KeyPreferences, func() error {
		return c.store.SetPreferences(snapshot)
	})
}
