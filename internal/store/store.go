package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/five82/hcalc/internal/history"
	"github.com/five82/hcalc/internal/prefs"
)

// Keys of the persisted document.
const (
	KeyWindowBounds       = "windowBounds"
	KeyPreferences        = "preferences"
	KeyCalculationHistory = "calculationHistory"
)

// WindowBounds records the last known terminal size.
type WindowBounds struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// DefaultWindowBounds is returned when no bounds have been saved.
var DefaultWindowBounds = WindowBounds{Width: 44, Height: 24}

type document struct {
	WindowBounds       *WindowBounds   `toml:"windowBounds,omitempty"`
	Preferences        *prefs.Stored   `toml:"preferences,omitempty"`
	CalculationHistory []history.Entry `toml:"calculationHistory"`
}

// Store is the persistent key/value document backing preferences, history
// and window bounds. Every write rewrites the whole file. Safe for
// concurrent use.
type Store struct {
	fs   afero.Fs
	path string

	mu  sync.RWMutex
	doc document
	sum uint64 // xxhash of the bytes last read or written
}

// Open loads the document at path. A missing file yields an empty store; an
// unreadable or corrupt file is logged and treated as empty so the calculator
// still starts.
func Open(fs afero.Fs, path string) (*Store, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is empty")
	}

	s := &Store{fs: fs, path: path}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("read state %s failed, using defaults: %v", path, err)
		}
		return s, nil
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		log.Printf("parse state %s failed, using defaults: %v", path, err)
		return s, nil
	}
	doc.CalculationHistory = history.Clamp(doc.CalculationHistory)
	s.doc = doc
	s.sum = xxhash.Sum64(data)
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Preferences returns the stored preferences merged over the defaults.
func (s *Store) Preferences() prefs.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.Preferences == nil {
		return prefs.Default()
	}
	return s.doc.Preferences.Resolve()
}

// SetPreferences replaces the preferences key and persists the document.
func (s *Store) SetPreferences(p prefs.Preferences) error {
	stored := p.Store()
	return s.update(func(doc *document) {
		doc.Preferences = &stored
	})
}

// History returns a copy of the calculation history, newest first.
func (s *Store) History() []history.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneEntries(s.doc.CalculationHistory)
}

// SetHistory replaces the calculation history, keeping at most history.Limit
// entries.
func (s *Store) SetHistory(entries []history.Entry) error {
	entries = history.Clamp(cloneEntries(entries))
	return s.update(func(doc *document) {
		doc.CalculationHistory = entries
	})
}

// WindowBounds returns the saved bounds or def when none were saved.
func (s *Store) WindowBounds(def WindowBounds) WindowBounds {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.WindowBounds == nil {
		return def
	}
	return *s.doc.WindowBounds
}

// SetWindowBounds replaces the window bounds key.
func (s *Store) SetWindowBounds(b WindowBounds) error {
	return s.update(func(doc *document) {
		doc.WindowBounds = &b
	})
}

// Delete removes key from the document.
func (s *Store) Delete(key string) error {
	switch key {
	case KeyWindowBounds:
		return s.update(func(doc *document) { doc.WindowBounds = nil })
	case KeyPreferences:
		return s.update(func(doc *document) { doc.Preferences = nil })
	case KeyCalculationHistory:
		return s.update(func(doc *document) { doc.CalculationHistory = nil })
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// ErrUnknownKey is returned for keys outside the document schema.
var ErrUnknownKey = errors.New("unknown store key")

func (s *Store) update(mutate func(doc *document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc
	mutate(&next)
	if err := s.write(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

// write encodes doc to a sibling temp file and renames it over the target so
// a crash never leaves a half-written document. An encoding identical to the
// last one read or written is skipped. Callers hold s.mu.
func (s *Store) write(doc document) error {
	bytes, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	sum := xxhash.Sum64(bytes)
	if sum == s.sum {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace state: %w", err)
	}
	s.sum = sum
	return nil
}

func cloneEntries(entries []history.Entry) []history.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]history.Entry, len(entries))
	copy(dup, entries)
	return dup
}
