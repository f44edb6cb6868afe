// Package hotkeys registers the global overlay hotkeys and turns key presses
// into overlay event lines.
package hotkeys

import (
	"errors"
	"fmt"
	"strings"
)

// LayerKeys are the dedicated layer keys; F13 selects layer 0.
var LayerKeys = []string{"f13", "f14", "f15", "f16", "f17", "f18", "f19", "f20"}

var ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

// Binding is a parsed "mod+mod+key" combination.
type Binding struct {
	Modifiers []string
	Key       string
}

func (b Binding) String() string {
	return strings.Join(append(append([]string(nil), b.Modifiers...), b.Key), "+")
}

// ParseBinding reads bindings such as "ctrl+alt+super+l". Names are case
// insensitive; "cmd" and "option" are accepted for super and alt.
func ParseBinding(binding string) (Binding, error) {
	parts := strings.Split(binding, "+")
	if len(parts) < 2 {
		return Binding{}, fmt.Errorf("invalid binding %q: need modifier+key", binding)
	}

	key := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	if key == "" {
		return Binding{}, fmt.Errorf("invalid binding %q: empty key", binding)
	}

	mods := make([]string, 0, len(parts)-1)
	seen := make(map[string]bool)
	for _, m := range parts[:len(parts)-1] {
		name, err := canonicalModifier(m)
		if err != nil {
			return Binding{}, fmt.Errorf("invalid binding %q: %w", binding, err)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		mods = append(mods, name)
	}

	return Binding{Modifiers: mods, Key: key}, nil
}

func canonicalModifier(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ctrl", "control":
		return "ctrl", nil
	case "shift":
		return "shift", nil
	case "alt", "option", "opt":
		return "alt", nil
	case "super", "cmd", "command", "win", "meta":
		return "super", nil
	}
	return "", fmt.Errorf("unknown modifier %q (available: ctrl, shift, alt, super)", name)
}
