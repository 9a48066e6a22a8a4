package controller

// Memory operations. The plain variants act on the display value and slot 0;
// none of them run while the display shows the error sentinel. Every
// mutation persists the full memory list.

// MemoryItems returns a copy of the memory slots, most recent first.
func (c *Controller) MemoryItems() []float64 { return c.memory.Items() }

// HasMemory reports whether any slot is stored.
func (c *Controller) HasMemory() bool { return c.memory.Len() > 0 }

// MemoryValue returns the canonical memory value (slot 0, or 0 when empty).
func (c *Controller) MemoryValue() float64 { return c.memory.Current() }

// MemoryStore pushes the display value as a new slot 0.
func (c *Controller) MemoryStore() bool {
	if c.machine.IsError() {
		return false
	}
	c.memory.Store(c.machine.Value())
	c.savePreferences()
	return true
}

// MemoryAdd adds the display value to slot 0.
func (c *Controller) MemoryAdd() bool {
	if c.machine.IsError() {
		return false
	}
	c.memory.Add(c.machine.Value())
	c.savePreferences()
	return true
}

// MemorySubtract subtracts the display value from slot 0.
func (c *Controller) MemorySubtract() bool {
	if c.machine.IsError() {
		return false
	}
	c.memory.Subtract(c.machine.Value())
	c.savePreferences()
	return true
}

// MemoryRecall shows slot 0 on the display.
func (c *Controller) MemoryRecall() bool {
	if c.machine.IsError() {
		return false
	}
	v, ok := c.memory.Recall()
	if !ok {
		return false
	}
	c.machine.SetValue(v)
	return true
}

// MemoryRecallAt shows the slot at index on the display.
func (c *Controller) MemoryRecallAt(index int) bool {
	v, ok := c.memory.RecallAt(index)
	if !ok {
		return false
	}
	c.machine.SetValue(v)
	return true
}

// MemoryClear empties every slot.
func (c *Controller) MemoryClear() bool {
	if !c.memory.Clear() {
		return false
	}
	c.savePreferences()
	return true
}

// MemoryDeleteAt removes the slot at index.
func (c *Controller) MemoryDeleteAt(index int) bool {
	if !c.memory.DeleteAt(index) {
		return false
	}
	c.savePreferences()
	return true
}

// MemoryAddAt adds the display value to the slot at index.
func (c *Controller) MemoryAddAt(index int) bool {
	if c.machine.IsError() || !c.memory.AddAt(index, c.machine.Value()) {
		return false
	}
	c.savePreferences()
	return true
}

// MemorySubtractAt subtracts the display value from the slot at index.
func (c *Controller) MemorySubtractAt(index int) bool {
	if c.machine.IsError() || !c.memory.SubtractAt(index, c.machine.Value()) {
		return false
	}
	c.savePreferences()
	return true
}
