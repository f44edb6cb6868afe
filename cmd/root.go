// Package cmd is the ezoverlay command line.
package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/config"
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
)

type globalFlags struct {
	debug     bool
	configDir string
}

var flags globalFlags

func NewRootCmd() *cobra.Command {
	flags = globalFlags{}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Keyboard layer overlay for the ErgoDox EZ",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "directory holding config.yaml")

	root.AddCommand(
		newRunCmd(),
		newImportCmd(),
		newLayersCmd(),
		newShowCmd(),
		newExportLayerCmd(),
		newSchemaCmd(),
		newConfigCmd(),
	)
	root.AddCommand(newEventCmds()...)

	return root
}

// Execute runs the command line until it finishes or the process is told
// to stop.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

func loadConfig() (*config.Config, error) {
	var dirs []string
	if flags.configDir != "" {
		dirs = []string{flags.configDir}
	}

	cfg, err := config.Load(dirs...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.debug {
		cfg.Debug = true
	}

	return cfg, nil
}
