package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/config"
	"codeberg.org/miketth/ezoverlay/pkg/exportsource"
	"codeberg.org/miketth/ezoverlay/pkg/logging"
	"codeberg.org/miketth/ezoverlay/pkg/oryx"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <keymap.json>",
		Short: "Import an Oryx keymap export",
		Long: `Import an Oryx keymap export.

The export is checked, translated and stored as the active keymap. A running
overlay picks it up on its own when watching is enabled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Debug, "stderr")
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer log.Sync()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}

			export, err := oryx.Decode(data)
			if err != nil {
				return err
			}

			settings, err := openSettings(cfg, log)
			if err != nil {
				return err
			}
			defer settings.Close()

			store := newStore(cfg, settings, log)
			if err := store.Import(data); err != nil {
				return err
			}

			target := config.ImportPath()
			if err := exportsource.Save(target, data); err != nil {
				return fmt.Errorf("save export: %w", err)
			}

			if path, ok := shadowingExport(cfg.ExportPaths, target); ok {
				log.Warnw("another export is read before the imported one", "path", path, "imported", target)
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is read before %s, remove it or reorder export_paths\n", path, target)
			}

			log.Infow("imported keymap",
				"keyboard", export.Keyboard,
				"keymap", export.Keymap,
				"version", export.Version,
				"author", export.Author,
				"layers", len(export.Layers),
				"path", target,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d layers to %s\n", len(store.Layers()), target)

			return nil
		},
	}
}

// shadowingExport returns an existing candidate that is searched before
// target and so hides it.
func shadowingExport(candidates []string, target string) (string, bool) {
	for _, path := range candidates {
		if filepath.Clean(path) == filepath.Clean(target) {
			return "", false
		}
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
