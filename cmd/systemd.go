package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"context"
	"fmt"
	"github.com/coreos/go-systemd/v22/daemon"
	"time"
)

func systemdNotifyLoop(ctx context.Context, updates <-chan overlay.Change) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}

	// a nil channel never fires, so without a watchdog only status updates remain
	var watchdog <-chan time.Time
	if t > 0 {
		ticker := time.NewTicker(t / 2)
		defer ticker.Stop()
		watchdog = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case change, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			_, _ = daemon.SdNotify(false, status(change))

		case <-watchdog:
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}

func status(change overlay.Change) string {
	if !change.OK {
		return "STATUS=No layers loaded"
	}
	return "STATUS=Showing " + change.Layer.Title
}
