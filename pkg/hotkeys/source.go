//go:build windows || ((darwin || linux) && cgo)

package hotkeys

import (
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"context"
	"fmt"
	"go.uber.org/zap"
	"golang.design/x/hotkey"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Source registers the toggle hotkey and, optionally, the F13-F20 layer keys.
// Presses are read back as event lines through ReadLine.
type Source struct {
	toggle    Binding
	layerKeys bool
	lines     chan string
	closeOnce sync.Once
	log       *zap.SugaredLogger
}

func NewSource(toggle Binding, layerKeys bool, log *zap.SugaredLogger) *Source {
	return &Source{
		toggle:    toggle,
		layerKeys: layerKeys,
		lines:     make(chan string, 16),
		log:       log,
	}
}

type registration struct {
	hk   *hotkey.Hotkey
	name string
	line string
}

// Run registers the hotkeys and forwards presses until ctx is done.
func (s *Source) Run(ctx context.Context) error {
	defer s.closeOnce.Do(func() { close(s.lines) })

	regs, err := s.register()
	if err != nil {
		return err
	}
	defer func() {
		for _, r := range regs {
			if err := r.hk.Unregister(); err != nil {
				s.log.Debugw("unregister hotkey", "hotkey", r.name, "error", err)
			}
		}
	}()

	var wg sync.WaitGroup
	for _, r := range regs {
		wg.Add(1)
		go func(r registration) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case <-r.hk.Keydown():
					s.log.Debugw("hotkey pressed", "hotkey", r.name)
					select {
					case s.lines <- r.line:
					case <-ctx.Done():
						return
					}
				}
			}
		}(r)
	}

	<-ctx.Done()
	wg.Wait()
	return ctx.Err()
}

func (s *Source) register() ([]registration, error) {
	toggle, err := newHotkey(s.toggle)
	if err != nil {
		return nil, fmt.Errorf("toggle hotkey: %w", err)
	}

	regs := []registration{{hk: toggle, name: s.toggle.String(), line: overlay.FormatEvent(overlay.EventToggle, "")}}

	if s.layerKeys {
		for idx, name := range LayerKeys {
			regs = append(regs, registration{
				hk:   hotkey.New(nil, keyMap[name]),
				name: name,
				line: overlay.FormatEvent(overlay.EventLayer, strconv.Itoa(idx)),
			})
		}
	}

	for i, r := range regs {
		if err := r.hk.Register(); err != nil {
			for _, done := range regs[:i] {
				_ = done.hk.Unregister()
			}
			return nil, fmt.Errorf("register %s: %w", r.name, err)
		}
	}

	s.log.Infow("registered hotkeys", "toggle", s.toggle.String(), "layer_keys", s.layerKeys)
	return regs, nil
}

func (s *Source) ReadLine() (string, error) {
	line, ok := <-s.lines
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

func newHotkey(b Binding) (*hotkey.Hotkey, error) {
	mods := make([]hotkey.Modifier, 0, len(b.Modifiers))
	for _, name := range b.Modifiers {
		m, ok := modMap[name]
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", name)
		}
		mods = append(mods, m)
	}

	key, ok := keyMap[strings.ToLower(b.Key)]
	if !ok {
		return nil, fmt.Errorf("unknown key %q", b.Key)
	}

	return hotkey.New(mods, key), nil
}
