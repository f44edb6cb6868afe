package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/config"
	"fmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"path/filepath"
)

// configView is the YAML shape of the effective config.
type configView struct {
	Debug        bool     `yaml:"debug"`
	Opacity      float64  `yaml:"opacity"`
	ClickThrough bool     `yaml:"click_through"`
	ToggleHotkey string   `yaml:"toggle_hotkey"`
	LayerHotkeys bool     `yaml:"layer_hotkeys"`
	Store        string   `yaml:"store"`
	ExportPaths  []string `yaml:"export_paths"`
	Watch        bool     `yaml:"watch"`
}

func newConfigCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if save {
				path := ""
				if flags.configDir != "" {
					path = filepath.Join(flags.configDir, "config.yaml")
				}
				if err := config.Save(cfg, path); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()

			return enc.Encode(configView(*cfg))
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the effective configuration to config.yaml")

	return cmd
}
