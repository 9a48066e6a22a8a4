package controller

import (
	"github.com/five82/hcalc/internal/history"
	"github.com/five82/hcalc/internal/store"
)

// History returns the calculation log, newest first.
func (c *Controller) History() []history.Entry { return c.history.List() }

// RecordHistory prepends e to the log and persists it.
func (c *Controller) RecordHistory(e history.Entry) []history.Entry {
	entries := c.history.Record(e)
	c.saveHistory(entries)
	return entries
}

// HistoryDeleteAt removes the entry at index. Out-of-range indexes change
// nothing and write nothing.
func (c *Controller) HistoryDeleteAt(index int) []history.Entry {
	entries, ok := c.history.DeleteAt(index)
	if ok {
		c.saveHistory(entries)
	}
	return entries
}

// HistoryClear empties the log.
func (c *Controller) HistoryClear() []history.Entry {
	entries := c.history.Clear()
	c.saveHistory(entries)
	return entries
}

// HistoryRestore puts the entry at index back on the display.
func (c *Controller) HistoryRestore(index int) bool {
	e, ok := c.history.At(index)
	if !ok {
		return false
	}
	c.machine.Restore(e.Expression, e.Result)
	return true
}

func (c *Controller) saveHistory(entries []history.Entry) {
	if c.submit == nil {
		return
	}
	c.submit.Submit(store.KeyCalculationHistory, func() error {
		return c.store.SetHistory(entries)
	})
}
