// Package prefs defines the user preferences hcalc persists between runs.
package prefs

// Preferences holds user preferences for hcalc.
type Preferences struct {
	DarkTheme     bool
	UseSeparator  bool
	HistoryPinned bool
	KeepOnTop     bool
	MemoryItems   []float64
}

// Default returns the preferences used when nothing has been stored yet.
func Default() Preferences {
	return Preferences{
		UseSeparator: true,
	}
}

// Stored is the on-disk shape of Preferences. Pointer fields distinguish a
// key that is missing (falls back to the default) from an explicit false.
type Stored struct {
	DarkTheme     *bool     `toml:"darkTheme,omitempty"`
	UseSeparator  *bool     `toml:"useSeparator,omitempty"`
	HistoryPinned *bool     `toml:"historyPinned,omitempty"`
	KeepOnTop     *bool     `toml:"keepOnTop,omitempty"`
	MemoryItems   []float64 `toml:"memoryItems"`
}

// Resolve merges the stored keys over Default.
func (s Stored) Resolve() Preferences {
	p := Default()
	if s.DarkTheme != nil {
		p.DarkTheme = *s.DarkTheme
	}
	if s.UseSeparator != nil {
		p.UseSeparator = *s.UseSeparator
	}
	if s.HistoryPinned != nil {
		p.HistoryPinned = *s.HistoryPinned
	}
	if s.KeepOnTop != nil {
		p.KeepOnTop = *s.KeepOnTop
	}
	p.MemoryItems = cloneItems(s.MemoryItems)
	return p
}

// Store converts p to its on-disk shape with every key present.
func (p Preferences) Store() Stored {
	return Stored{
		DarkTheme:     boolPtr(p.DarkTheme),
		UseSeparator:  boolPtr(p.UseSeparator),
		HistoryPinned: boolPtr(p.HistoryPinned),
		KeepOnTop:     boolPtr(p.KeepOnTop),
		MemoryItems:   nonNil(p.MemoryItems),
	}
}

// Clone returns a deep copy of p.
func (p Preferences) Clone() Preferences {
	p.MemoryItems = cloneItems(p.MemoryItems)
	return p
}

func boolPtr(v bool) *bool { return &v }

func nonNil(items []float64) []float64 {
	if items == nil {
		return []float64{}
	}
	return cloneItems(items)
}

func cloneItems(items []float64) []float64 {
	if len(items) == 0 {
		return nil
	}
	dup := make([]float64, len(items))
	copy(dup, items)
	return dup
}
