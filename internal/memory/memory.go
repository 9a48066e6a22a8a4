package memory

// Bank is an ordered list of memory slots, most recently stored first.
type Bank struct {
	slots []float64
}

// New returns a bank holding a copy of items.
func New(items []float64) *Bank {
	return &Bank{slots: clone(items)}
}

// Len returns the number of slots.
func (b *Bank) Len() int { return len(b.slots) }

// Items returns a copy of the slots.
func (b *Bank) Items() []float64 { return clone(b.slots) }

// Current returns slot 0, or 0 when the bank is empty.
func (b *Bank) Current() float64 {
	if len(b.slots) == 0 {
		return 0
	}
	return b.slots[0]
}

// Store inserts v as the new slot 0.
func (b *Bank) Store(v float64) {
	b.slots = append([]float64{v}, b.slots...)
}

// Add adds v to slot 0, creating it when the bank is empty.
func (b *Bank) Add(v float64) {
	if len(b.slots) == 0 {
		b.slots = []float64{v}
		return
	}
	b.slots[0] += v
}

// Subtract subtracts v from slot 0, creating it as -v when the bank is empty.
func (b *Bank) Subtract(v float64) {
	if len(b.slots) == 0 {
		b.slots = []float64{-v}
		return
	}
	b.slots[0] -= v
}

// Recall returns slot 0.
func (b *Bank) Recall() (float64, bool) {
	return b.RecallAt(0)
}

// RecallAt returns the slot at index.
func (b *Bank) RecallAt(index int) (float64, bool) {
	if !b.inRange(index) {
		return 0, false
	}
	return b.slots[index], true
}

// Clear empties the bank. It reports whether anything was removed.
func (b *Bank) Clear() bool {
	if len(b.slots) == 0 {
		return false
	}
	b.slots = nil
	return true
}

// DeleteAt removes the slot at index, shifting later slots left.
func (b *Bank) DeleteAt(index int) bool {
	if !b.inRange(index) {
		return false
	}
	b.slots = append(b.slots[:index:index], b.slots[index+1:]...)
	return true
}

// AddAt adds v to the slot at index.
func (b *Bank) AddAt(index int, v float64) bool {
	if !b.inRange(index) {
		return false
	}
	b.slots[index] += v
	return true
}

// SubtractAt subtracts v from the slot at index.
func (b *Bank) SubtractAt(index int, v float64) bool {
	if !b.inRange(index) {
		return false
	}
	b.slots[index] -= v
	return true
}

func (b *Bank) inRange(index int) bool {
	return index >= 0 && index < len(b.slots)
}

func clone(items []float64) []float64 {
	if len(items) == 0 {
		return nil
	}
	dup := make([]float64, len(items))
	copy(dup, items)
	return dup
}
