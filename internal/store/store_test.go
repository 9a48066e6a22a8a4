package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/five82/hcalc/internal/history"
	"github.com/five82/hcalc/internal/prefs"
)

const statePath = "/home/user/.local/state/hcalc/state.toml"

func TestOpen_MissingFileUsesDefaults(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), statePath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if got := s.Preferences(); !reflect.DeepEqual(got, prefs.Default()) {
		t.Fatalf("Preferences = %+v, want defaults", got)
	}
	if got := s.History(); len(got) != 0 {
		t.Fatalf("History = %v, want empty", got)
	}
	if got := s.WindowBounds(DefaultWindowBounds); got != DefaultWindowBounds {
		t.Fatalf("WindowBounds = %+v, want %+v", got, DefaultWindowBounds)
	}
}

func TestOpen_EmptyPathErrors(t *testing.T) {
	if _, err := Open(afero.NewMemMapFs(), "  "); err == nil {
		t.Fatalf("Open returned nil error, want error")
	}
}

func TestOpen_CorruptFileFallsBackToDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, statePath, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Open(fs, statePath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if got := s.Preferences(); !reflect.DeepEqual(got, prefs.Default()) {
		t.Fatalf("Preferences = %+v, want defaults", got)
	}
}

func TestOpen_MergesPartialPreferences(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `
[preferences]
darkTheme = true
memoryItems = [5.0, 10.0]

[[calculationHistory]]
expression = "12 + 8 ="
result = "20"
`
	if err := afero.WriteFile(fs, statePath, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Open(fs, statePath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	p := s.Preferences()
	if !p.DarkTheme || !p.UseSeparator {
		t.Fatalf("Preferences = %+v, want dark theme with default separator", p)
	}
	if !reflect.DeepEqual(p.MemoryItems, []float64{5, 10}) {
		t.Fatalf("MemoryItems = %v, want [5 10]", p.MemoryItems)
	}
	want := []history.Entry{{Expression: "12 + 8 =", Result: "20"}}
	if got := s.History(); !reflect.DeepEqual(got, want) {
		t.Fatalf("History = %v, want %v", got, want)
	}
}

func TestSetters_PersistAcrossOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Open(fs, statePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	p := prefs.Preferences{KeepOnTop: true, MemoryItems: []float64{3}}
	if err := s.SetPreferences(p); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}
	entries := []history.Entry{{Expression: "1 + 1 =", Result: "2"}}
	if err := s.SetHistory(entries); err != nil {
		t.Fatalf("SetHistory: %v", err)
	}
	if err := s.SetWindowBounds(WindowBounds{Width: 80, Height: 30}); err != nil {
		t.Fatalf("SetWindowBounds: %v", err)
	}

	reopened, err := Open(fs, statePath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.Preferences(); !reflect.DeepEqual(got, p) {
		t.Fatalf("Preferences = %+v, want %+v", got, p)
	}
	if got := reopened.History(); !reflect.DeepEqual(got, entries) {
		t.Fatalf("History = %v, want %v", got, entries)
	}
	if got := reopened.WindowBounds(DefaultWindowBounds); got != (WindowBounds{Width: 80, Height: 30}) {
		t.Fatalf("WindowBounds = %+v", got)
	}

	if exists, _ := afero.Exists(fs, statePath+".tmp"); exists {
		t.Fatalf("temp file left behind")
	}
}

func TestSetHistory_ClampsToLimit(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), statePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	entries := make([]history.Entry, history.Limit+20)
	for i := range entries {
		entries[i] = history.Entry{Expression: fmt.Sprintf("%d =", i), Result: fmt.Sprint(i)}
	}
	if err := s.SetHistory(entries); err != nil {
		t.Fatalf("SetHistory: %v", err)
	}
	got := s.History()
	if len(got) != history.Limit {
		t.Fatalf("len(History) = %d, want %d", len(got), history.Limit)
	}
	if got[0].Result != "0" {
		t.Fatalf("History[0] = %+v, want newest entry kept", got[0])
	}
}

func TestSetPreferences_WriteFailureKeepsMemoryState(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s, err := Open(fs, statePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	err = s.SetPreferences(prefs.Preferences{DarkTheme: true})
	if err == nil {
		t.Fatalf("SetPreferences returned nil error on read-only fs")
	}
	if !strings.Contains(err.Error(), "state") {
		t.Fatalf("error = %q, want it to mention state", err)
	}
	if s.Preferences().DarkTheme {
		t.Fatalf("failed write should not change stored preferences")
	}
}

func TestDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Open(fs, filepath.FromSlash(statePath))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetPreferences(prefs.Preferences{DarkTheme: true}); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}
	if err := s.Delete(KeyPreferences); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := s.Preferences(); !reflect.DeepEqual(got, prefs.Default()) {
		t.Fatalf("Preferences after delete = %+v, want defaults", got)
	}
	if err := s.Delete("nope"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Delete(nope) = %v, want ErrUnknownKey", err)
	}
}

func TestHistory_ReturnsCopy(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), statePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetHistory([]history.Entry{{Expression: "a", Result: "1"}}); err != nil {
		t.Fatalf("SetHistory: %v", err)
	}
	got := s.History()
	got[0].Result = "tampered"
	if s.History()[0].Result != "1" {
		t.Fatalf("History aliased internal state")
	}
}

func TestGet_ReturnsDefaultUntilWritten(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), statePath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	def := WindowBounds{Width: 1, Height: 2}
	got, err := Get(s, KeyWindowBounds, def)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != def {
		t.Fatalf("Get = %+v, want default %+v", got, def)
	}

	if err := Set(s, KeyWindowBounds, map[string]int{"width": 80, "height": 30}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err = Get(s, KeyWindowBounds, def)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if want := (WindowBounds{Width: 80, Height: 30}); got != want {
		t.Fatalf("Get = %+v, want %+v", got, want)
	}
}

func TestSet_HistoryIsClamped(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), statePath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	entries := make([]history.Entry, history.Limit+5)
	for i := range entries {
		entries[i] = history.Entry{Expression: fmt.Sprintf("%d + 0 =", i), Result: fmt.Sprint(i)}
	}
	if err := Set(s, KeyCalculationHistory, entries); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := Get[[]history.Entry](s, KeyCalculationHistory, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got) != history.Limit {
		t.Fatalf("len(history) = %d, want %d", len(got), history.Limit)
	}
}

func TestSet_PartialPreferencesMergeOverDefaults(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), statePath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	if err := Set(s, KeyPreferences, map[string]any{"darkTheme": true}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got := s.Preferences()
	if !got.DarkTheme || !got.UseSeparator {
		t.Fatalf("Preferences = %+v, want darkTheme and default useSeparator", got)
	}
}

func TestGetSet_UnknownKey(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), statePath)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := Get(s, "zoom", 0); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Get unknown key error = %v, want ErrUnknownKey", err)
	}
	if err := Set(s, "zoom", 2); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Set unknown key error = %v, want ErrUnknownKey", err)
	}
}

func TestWrite_SkipsUnchangedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Open(fs, statePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	b := WindowBounds{Width: 100, Height: 40}
	if err := s.SetWindowBounds(b); err != nil {
		t.Fatalf("SetWindowBounds: %v", err)
	}
	if err := fs.Remove(statePath); err != nil {
		t.Fatalf("remove state: %v", err)
	}

	if err := s.SetWindowBounds(b); err != nil {
		t.Fatalf("SetWindowBounds: %v", err)
	}
	if ok, _ := afero.Exists(fs, statePath); ok {
		t.Fatalf("identical document was rewritten")
	}

	if err := s.SetWindowBounds(WindowBounds{Width: 101, Height: 40}); err != nil {
		t.Fatalf("SetWindowBounds: %v", err)
	}
	if ok, _ := afero.Exists(fs, statePath); !ok {
		t.Fatalf("changed document was not written")
	}
}
