package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/five82/hcalc/internal/config"
	"github.com/five82/hcalc/internal/controller"
	"github.com/five82/hcalc/internal/store"
	"github.com/five82/hcalc/internal/ui"
)

// shutdownTimeout bounds how long queued writes may take after the UI exits.
const shutdownTimeout = 3 * time.Second

// Options configure the hcalc application.
type Options struct {
	ConfigPath string
	StatePath  string // empty uses the config value
	Version    string
}

// Run boots the calculator TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.StatePath != "" {
		path, err := config.ExpandPath(opts.StatePath)
		if err != nil {
			return fmt.Errorf("resolve state path: %w", err)
		}
		cfg.StatePath = path
	}

	closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	fs := afero.NewOsFs()
	st, err := store.Open(fs, cfg.StatePath)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	log.Printf("state file %s", st.Path())

	syncer := controller.NewSyncer()
	ctrl := controller.New(st, syncer)

	uiErr := ui.Run(ctx, ui.Options{
		Controller:   ctrl,
		LightPalette: cfg.LightPalette,
		DarkPalette:  cfg.DarkPalette,
		Bounds:       loadBounds(st),
		SaveBounds:   saveBounds(st, syncer),
		LogFs:        fs,
		LogPath:      cfg.LogPath,
		Version:      opts.Version,
	})

	// The parent context may already be cancelled; queued writes still get a
	// bounded window to land.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := syncer.Close(shutdownCtx); err != nil {
		log.Printf("flush state failed: %v", err)
	}

	if uiErr != nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}
	return nil
}

// loadBounds returns the saved terminal size. Unreadable or degenerate
// bounds are dropped from the state file so the default applies.
func loadBounds(st *store.Store) store.WindowBounds {
	b, err := store.Get(st, store.KeyWindowBounds, store.DefaultWindowBounds)
	if err == nil && b.Width > 0 && b.Height > 0 {
		return b
	}
	if err != nil {
		log.Printf("load window bounds failed: %v", err)
	}
	if err := st.Delete(store.KeyWindowBounds); err != nil {
		log.Printf("reset window bounds failed: %v", err)
	}
	return store.DefaultWindowBounds
}

// saveBounds queues the final terminal size behind any pending writes.
func saveBounds(st *store.Store, sub controller.Submitter) func(store.WindowBounds) {
	return func(b store.WindowBounds) {
		sub.Submit(store.KeyWindowBounds, func() error {
			return store.Set(st, store.KeyWindowBounds, b)
		})
	}
}

// openLog points the standard logger at path so log output never lands on
// the terminal the UI owns. Each run tags its lines with a short session id
// so interleaved runs stay distinguishable in the shared file.
func openLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	session := uuid.NewString()[:8]
	f, err := tea.LogToFile(path, "hcalc "+session)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
