package cmd

import (
	"codeberg.org/miketth/ezoverlay/pkg/control"
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"fmt"
	"github.com/spf13/cobra"
	"strconv"
)

func sendEvent(line string) error {
	socketPath, err := control.SocketPath()
	if err != nil {
		return fmt.Errorf("get socket path: %w", err)
	}

	if err := control.Send(socketPath, line); err != nil {
		return fmt.Errorf("send %q: %w", line, err)
	}

	return nil
}

// layerEvent selects by index when given a number and by id otherwise.
func layerEvent(arg string) string {
	if _, err := strconv.Atoi(arg); err == nil {
		return overlay.FormatEvent(overlay.EventLayer, arg)
	}
	return overlay.FormatEvent(overlay.EventID, arg)
}

func newEventCmds() []*cobra.Command {
	simple := func(use, short, event string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendEvent(overlay.FormatEvent(event, ""))
			},
		}
	}

	return []*cobra.Command{
		{
			Use:   "layer <index|id>",
			Short: "Switch the running overlay to a layer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return sendEvent(layerEvent(args[0]))
			},
		},
		simple("toggle", "Show or hide the running overlay", overlay.EventToggle),
		simple("next", "Switch the running overlay to the next layer", overlay.EventNext),
		simple("prev", "Switch the running overlay to the previous layer", overlay.EventPrev),
	}
}
