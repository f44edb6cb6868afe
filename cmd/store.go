package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/config"
	"codeberg.org/miketth/ezoverlay/pkg/exportsource"
	"codeberg.org/miketth/ezoverlay/pkg/oryx"
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"codeberg.org/miketth/ezoverlay/pkg/settingsstore/json"
	"codeberg.org/miketth/ezoverlay/pkg/settingsstore/memory"
	"codeberg.org/miketth/ezoverlay/pkg/settingsstore/sqlite"
	"context"
	"fmt"
	"go.uber.org/zap"
	"os"
)

// settingsBackend is the configured settings store together with its
// lifecycle hooks.
type settingsBackend struct {
	overlay.SettingsStore
	close func() error
	loop  func(ctx context.Context) error
}

func (b *settingsBackend) Close() error {
	return b.close()
}

func openSettings(cfg *config.Config, log *zap.SugaredLogger) (*settingsBackend, error) {
	if cfg.Store == config.StoreMemory {
		return &settingsBackend{
			SettingsStore: memory.NewSettingsStore(),
			close:         func() error { return nil },
		}, nil
	}

	if err := os.MkdirAll(config.DataDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := config.SettingsPath(cfg.Store)
	log.Debugw("opening settings store", "store", cfg.Store, "path", path)

	switch cfg.Store {
	case config.StoreJSON:
		store, err := json.NewSettingsStore(path)
		if err != nil {
			return nil, fmt.Errorf("create json settings store: %w", err)
		}
		return &settingsBackend{SettingsStore: store, close: store.Close, loop: store.SaveLooper}, nil

	default:
		store, err := sqlite.NewSettingsStore(path, log)
		if err != nil {
			return nil, fmt.Errorf("create sqlite settings store: %w", err)
		}
		return &settingsBackend{SettingsStore: store, close: store.Close}, nil
	}
}

func newStore(cfg *config.Config, settings overlay.SettingsStore, log *zap.SugaredLogger) *overlay.Store {
	return overlay.NewStore(
		exportsource.New(),
		settings,
		oryx.Parse,
		log,
		overlay.WithExportPaths(cfg.ExportPaths...),
	)
}
