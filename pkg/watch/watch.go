// Package watch re-imports the keymap export when it changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const DefaultDebounce = 250 * time.Millisecond

type Importer interface {
	Import(data []byte) error
}

type Watcher struct {
	path     string
	importer Importer
	debounce time.Duration
	log      *zap.SugaredLogger
}

func New(path string, importer Importer, debounce time.Duration, log *zap.SugaredLogger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		importer: importer,
		debounce: debounce,
		log:      log,
	}
}

// Run watches the export's directory, so the file may be created, replaced
// or removed while the watcher runs.
func (w *Watcher) Run(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.log.Debugw("watching keymap export", "path", w.path)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			w.log.Warnw("watch keymap export", "error", err)

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return
	case err != nil:
		w.log.Warnw("read keymap export", "path", w.path, "error", err)
		return
	}

	if err := w.importer.Import(data); err != nil {
		w.log.Warnw("reload keymap export", "path", w.path, "error", err)
		return
	}

	w.log.Infow("reloaded keymap export", "path", w.path)
}
