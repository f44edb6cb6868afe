// Package control carries overlay events over a unix socket, so window
// manager key bindings and the CLI can drive a running overlay.
package control

import (
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"os"
)

const (
	socketEnv  = "EZOVERLAY_SOCKET"
	socketFile = "ezoverlay/control.sock"

	replyOK     = "ok"
	replyPrefix = "error: "
)

var (
	ErrNotRunning = errors.New("ezoverlay might not be running")
	ErrRejected   = errors.New("event rejected")
)

// SocketPath returns the control socket location, creating its directory.
func SocketPath() (string, error) {
	if path := os.Getenv(socketEnv); path != "" {
		return path, nil
	}

	path, err := xdg.RuntimeFile(socketFile)
	if err != nil {
		return "", fmt.Errorf("resolve runtime dir: %w", err)
	}

	return path, nil
}
