package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/storage"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the Marquee application.
type Options struct {
	ConfigPath string
	Catalog    string // overrides config.catalog
	DataDir    string // overrides config.data_dir
	Ephemeral  bool   // keep preferences in memory only
}

// Run boots the Marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Catalog != "" {
		cfg.SetCatalog(opts.Catalog)
	}
	if opts.DataDir != "" {
		cfg.SetDataDir(opts.DataDir)
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	kv, closeKV, err := openStorage(cfg.DataDir, opts.Ephemeral)
	if err != nil {
		return err
	}
	defer closeKV()

	source, err := catalog.NewSource(cfg.Catalog, cfg.FetchAttempts)
	if err != nil {
		return fmt.Errorf("init catalog source: %w", err)
	}
	log.Printf("marquee starting: catalog=%s data=%s", source.Location(), cfg.DataDir)

	a := New(source, prefs.Open(kv), Config{
		DefaultCategory: cfg.DefaultCategory,
		TrendingLimit:   cfg.TrendingLimit,
		Player:          cfg.Player,
	})
	return ui.Run(ui.Options{Context: ctx, Commands: a})
}

// openLog routes the standard logger to path; the terminal belongs to the UI.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "marquee")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func openStorage(dataDir string, ephemeral bool) (storage.KV, func(), error) {
	if ephemeral {
		return storage.NewMemory(), func() {}, nil
	}
	db, err := storage.Open(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return db, func() {
		if err := db.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}, nil
}
