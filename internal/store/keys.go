package store

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/hcalc/internal/history"
	"github.com/five82/hcalc/internal/prefs"
)

// Get reads key into a value of type T, returning def when the key has
// never been written. The stored value is converted through its TOML form,
// so T may be the schema type or any shape with matching field names.
func Get[T any](s *Store, key string, def T) (T, error) {
	s.mu.RLock()
	var (
		raw     any
		present bool
	)
	switch key {
	case KeyWindowBounds:
		if s.doc.WindowBounds != nil {
			raw, present = *s.doc.WindowBounds, true
		}
	case KeyPreferences:
		if s.doc.Preferences != nil {
			raw, present = *s.doc.Preferences, true
		}
	case KeyCalculationHistory:
		if s.doc.CalculationHistory != nil {
			raw, present = cloneEntries(s.doc.CalculationHistory), true
		}
	default:
		s.mu.RUnlock()
		return def, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	s.mu.RUnlock()

	if !present {
		return def, nil
	}
	v, err := convert[T](raw)
	if err != nil {
		return def, fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}

// Set replaces key with value and persists the document.
func Set[T any](s *Store, key string, value T) error {
	switch key {
	case KeyWindowBounds:
		b, err := convert[WindowBounds](value)
		if err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
		return s.SetWindowBounds(b)
	case KeyPreferences:
		p, err := convert[prefs.Stored](value)
		if err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
		return s.update(func(doc *document) { doc.Preferences = &p })
	case KeyCalculationHistory:
		entries, err := convert[[]history.Entry](value)
		if err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
		return s.SetHistory(entries)
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

type wrapped[T any] struct {
	Value T `toml:"value"`
}

// convert round-trips src through TOML into T.
func convert[T any](src any) (T, error) {
	var out wrapped[T]
	data, err := toml.Marshal(wrapped[any]{Value: src})
	if err != nil {
		return out.Value, fmt.Errorf("encode value: %w", err)
	}
	if err := toml.Unmarshal(data, &out); err != nil {
		return out.Value, fmt.Errorf("decode value: %w", err)
	}
	return out.Value, nil
}
