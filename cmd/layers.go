package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/config"
	"codeberg.org/miketth/ezoverlay/pkg/logging"
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"codeberg.org/miketth/ezoverlay/pkg/render"
	"fmt"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

// withStore opens the configured store for a one-shot command.
func withStore(fn func(cfg *config.Config, store *overlay.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Debug, "stderr")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	settings, err := openSettings(cfg, log)
	if err != nil {
		return err
	}
	defer settings.Close()

	store := newStore(cfg, settings, log)
	store.Init()

	return fn(cfg, store)
}

func newLayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List the known layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(_ *config.Config, store *overlay.Store) error {
				current := store.CurrentIndex()

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "\tINDEX\tID\tTITLE\tKEYS")
				for i, layer := range store.Layers() {
					marker := ""
					if i == current {
						marker = "*"
					}
					keys := "template"
					if layer.HasLayout() {
						keys = fmt.Sprint(len(layer.Layout))
					}
					fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", marker, i, layer.ID, layer.Title, keys)
				}
				return w.Flush()
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show [layer-id]",
		Short: "Print a layer, the current one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) > 0 {
					return fmt.Errorf("--file and a layer id are mutually exclusive")
				}
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				layer, err := overlay.LoadLayerFile(file)
				if err != nil {
					return fmt.Errorf("load layer: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), render.New(render.WithOpacity(cfg.Opacity)).Render(layer))
				return nil
			}

			return withStore(func(cfg *config.Config, store *overlay.Store) error {
				layer, ok := store.Current()
				if len(args) == 1 {
					layer, ok = store.LoadLayer(args[0])
				}
				if !ok {
					return fmt.Errorf("layer not found")
				}

				fmt.Fprintln(cmd.OutOrStdout(), render.New(render.WithOpacity(cfg.Opacity)).Render(layer))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "print a layer written by export-layer instead")

	return cmd
}

func newExportLayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-layer <layer-id> <file>",
		Short: "Write one translated layer as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(_ *config.Config, store *overlay.Store) error {
				layer, ok := store.LoadLayer(args[0])
				if !ok {
					return fmt.Errorf("layer %q not found", args[0])
				}

				if err := overlay.SaveLayer(args[1], layer); err != nil {
					return fmt.Errorf("save layer: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", layer.ID, args[1])
				return nil
			})
		},
	}
}
