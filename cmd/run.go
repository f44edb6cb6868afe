package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/config"
	"codeberg.org/miketth/ezoverlay/pkg/control"
	"codeberg.org/miketth/ezoverlay/pkg/hotkeys"
	"codeberg.org/miketth/ezoverlay/pkg/logging"
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"codeberg.org/miketth/ezoverlay/pkg/render"
	"codeberg.org/miketth/ezoverlay/pkg/tui"
	"codeberg.org/miketth/ezoverlay/pkg/watch"
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"io"
	"sync"
)

func newRunCmd() *cobra.Command {
	var headless bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the overlay and listen for hotkeys and control events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlay(cmd.Context(), headless)
		},
	}
	cmd.Flags().BoolVar(&headless, "headless", false, "skip the terminal overlay and log to stdout")

	return cmd
}

func runOverlay(ctx context.Context, headless bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var log *zap.SugaredLogger
	if headless {
		log, err = logging.New(cfg.Debug)
	} else {
		var logPath string
		logPath, err = config.LogPath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		log, err = logging.New(cfg.Debug, logPath)
	}
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	settings, err := openSettings(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := settings.Close(); err != nil {
			log.Warnw("close settings store", "error", err)
		}
	}()

	store := newStore(cfg, settings, log)
	store.Init()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		toggler overlay.Toggler
		ui      *tui.Overlay
	)
	if headless {
		toggler = &visibility{log: log}
	} else {
		renderer := render.New(render.WithOpacity(cfg.Opacity))
		ui = tui.New(ctx, store, renderer, log, tui.WithClickThrough(cfg.ClickThrough))
		toggler = ui
	}
	dispatcher := overlay.NewDispatcher(store, toggler, log)

	binding, err := hotkeys.ParseBinding(cfg.ToggleHotkey)
	if err != nil {
		return fmt.Errorf("parse toggle hotkey: %w", err)
	}
	keys := hotkeys.NewSource(binding, cfg.LayerHotkeys, log)

	socketPath, err := control.SocketPath()
	if err != nil {
		return fmt.Errorf("get socket path: %w", err)
	}
	server, err := control.Listen(socketPath, log)
	if err != nil {
		return fmt.Errorf("listen on control socket: %w", err)
	}
	defer server.Close()

	log.Infow("started ezoverlay", "layers", len(store.Layers()), "socket", socketPath, "headless", headless)

	errChan := make(chan error, 8)
	var wg sync.WaitGroup

	wg.Add(4)

	go func() {
		defer wg.Done()
		err := server.Serve(ctx, dispatcher.Handle)
		if err != nil {
			errChan <- fmt.Errorf("serve control socket: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := keys.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			// the overlay stays usable through the control socket
			log.Warnw("global hotkeys unavailable", "error", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := dispatcher.ProcessLines(ctx, keys)
		switch {
		case errors.Is(err, io.EOF):
			log.Debug("hotkey source closed")
		case err != nil:
			errChan <- fmt.Errorf("process hotkeys: %w", err)
		}
	}()

	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()
	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx, updates)
		if err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	if cfg.Watch {
		watcher := watch.New(config.ImportPath(), store, watch.DefaultDebounce, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := watcher.Run(ctx)
			if err != nil {
				errChan <- fmt.Errorf("watch export: %w", err)
			}
		}()
	}

	if settings.loop != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := settings.loop(ctx)
			if err != nil {
				errChan <- fmt.Errorf("save settings: %w", err)
			}
		}()
	}

	if ui != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ui.Run(ctx)
			if err == nil {
				// the user quit
				err = context.Canceled
			}
			errChan <- fmt.Errorf("overlay: %w", err)
		}()
	}

	err = <-errChan
	cancel()
	wg.Wait()

	if errors.Is(err, context.Canceled) {
		log.Info("shutting down")
		return nil
	}

	return err
}

// visibility stands in for the overlay when running headless.
type visibility struct {
	lock   sync.Mutex
	hidden bool
	log    *zap.SugaredLogger
}

func (v *visibility) Toggle() {
	v.lock.Lock()
	v.hidden = !v.hidden
	visible := !v.hidden
	v.lock.Unlock()

	v.log.Infow("toggled overlay", "visible", visible)
}
