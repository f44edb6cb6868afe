package overlay

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"strconv"
	"strings"
)

const (
	EventLayer  = "layer"
	EventID     = "id"
	EventNext   = "next"
	EventPrev   = "prev"
	EventToggle = "toggle"
)

var ErrUnknownEvent = errors.New("unknown event")

type LayerSwitcher interface {
	SwitchToLayer(index int)
	SwitchToID(id string) bool
	Next()
	Previous()
}

// Dispatcher applies "event>>data" lines from input sources to the layer
// store and the overlay visibility.
type Dispatcher struct {
	switcher LayerSwitcher
	toggler  Toggler
	log      *zap.SugaredLogger
}

func NewDispatcher(switcher LayerSwitcher, toggler Toggler, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		switcher: switcher,
		toggler:  toggler,
		log:      log,
	}
}

func FormatEvent(event, data string) string {
	return event + ">>" + data
}

// ProcessLines handles lines from listener until ctx is done or the listener
// fails. Bad lines are logged and skipped.
func (d *Dispatcher) ProcessLines(ctx context.Context, listener EventListener) error {
	for {
		resultCh := make(chan string, 1)
		errCh := make(chan error, 1)
		go func() {
			line, err := listener.ReadLine()
			if err != nil {
				errCh <- err
				return
			}
			resultCh <- line
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-resultCh:
			if err := d.Handle(line); err != nil {
				d.log.Warnw("process line", "line", line, "error", err)
			}
		case err := <-errCh:
			return fmt.Errorf("get line: %w", err)
		}
	}
}

func (d *Dispatcher) Handle(line string) error {
	evType, evData, found := strings.Cut(strings.TrimSpace(line), ">>")
	if !found {
		return fmt.Errorf("invalid line: %q", line)
	}

	switch evType {
	case EventLayer:
		return d.processLayer(evData)
	case EventID:
		if !d.switcher.SwitchToID(evData) {
			return fmt.Errorf("layer %q not found", evData)
		}
	case EventNext:
		d.switcher.Next()
	case EventPrev:
		d.switcher.Previous()
	case EventToggle:
		if d.toggler != nil {
			d.toggler.Toggle()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, evType)
	}

	return nil
}

func (d *Dispatcher) processLayer(data string) error {
	idx, err := strconv.Atoi(strings.TrimSpace(data))
	if err != nil {
		return fmt.Errorf("invalid layer index %q: %w", data, err)
	}

	d.log.Debugw("switching layer", "index", idx)
	d.switcher.SwitchToLayer(idx)
	return nil
}
