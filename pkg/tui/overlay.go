package tui

import (
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"context"
	"errors"
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Store is what the overlay needs from overlay.Store: driving it and
// following its changes.
type Store interface {
	LayerStore
	Subscribe() (<-chan overlay.Change, func())
}

// Overlay runs the terminal overlay. It implements overlay.Toggler, so
// hotkeys and the control socket can show and hide it.
type Overlay struct {
	program *tea.Program
	store   Store
	log     *zap.SugaredLogger
}

type options struct {
	clickThrough bool
	programOpts  []tea.ProgramOption
}

type Option func(*options)

// WithClickThrough leaves mouse events to the terminal. When disabled,
// clicks on the overlay step through the layers.
func WithClickThrough(clickThrough bool) Option {
	return func(o *options) {
		o.clickThrough = clickThrough
	}
}

func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(o *options) {
		o.programOpts = append(o.programOpts, opts...)
	}
}

func New(ctx context.Context, store Store, renderer overlay.Renderer, log *zap.SugaredLogger, opts ...Option) *Overlay {
	o := options{clickThrough: true}
	for _, opt := range opts {
		opt(&o)
	}

	model := NewModel(store, renderer)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if !o.clickThrough {
		model.mouse = true
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	programOpts = append(programOpts, o.programOpts...)

	return &Overlay{
		program: tea.NewProgram(model, programOpts...),
		store:   store,
		log:     log,
	}
}

func (o *Overlay) Toggle() {
	o.program.Send(toggleMsg{})
}

// Run shows the overlay until the user quits or ctx is cancelled.
func (o *Overlay) Run(ctx context.Context) error {
	updates, cancel := o.store.Subscribe()
	defer cancel()

	go func() {
		for change := range updates {
			o.log.Debugw("layer changed", "id", change.Layer.ID, "current", change.OK)
			o.program.Send(changeMsg(change))
		}
	}()

	_, err := o.program.Run()
	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, tea.ErrProgramKilled):
		return nil
	case err != nil:
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
