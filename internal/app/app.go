package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/accordion/internal/catalog"
	"github.com/five82/accordion/internal/config"
	"github.com/five82/accordion/internal/prefs"
	"github.com/five82/accordion/internal/state"
	"github.com/five82/accordion/internal/ui"
)

// Options configure the accordion application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/accordion/prefs.toml
	DataPath    string
	ReloadEvery time.Duration
	Filter      string
}

// Run boots the accordion TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	filter, err := catalog.CompileFilter(cfg.Filter)
	if err != nil {
		return fmt.Errorf("compile filter: %w", err)
	}

	source := catalog.NewSource(cfg.DataPath, filter)
	store := &state.Store{}

	// Populate the store before the UI starts; a broken data file is fatal
	// only on this first load.
	if err := refresh(store, source, false); err != nil {
		if cfg.DataPath != "" {
			return fmt.Errorf("load catalog: %w", err)
		}
	} else {
		log.Printf("catalog loaded from %s", sourceName(cfg.DataPath))
	}

	StartPoller(ctx, store, source, cfg.ReloadEvery)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Source:    source,
		Animation: cfg.Animation,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
	})
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if data := strings.TrimSpace(opts.DataPath); data != "" {
		expanded, err := config.ExpandPath(data)
		if err != nil {
			return fmt.Errorf("data path: %w", err)
		}
		cfg.DataPath = expanded
	}
	if opts.ReloadEvery > 0 {
		cfg.ReloadEvery = opts.ReloadEvery
	}
	if filter := strings.TrimSpace(opts.Filter); filter != "" {
		cfg.Filter = filter
	}
	return nil
}

// openLog routes the standard logger to path; the alternate screen owns
// stdout while the UI runs.
func openLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "accordion")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func sourceName(path string) string {
	if path == "" {
		return "builtin catalog"
	}
	return path
}
