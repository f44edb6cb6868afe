//go:build windows || ((darwin || linux) && cgo)

package hotkeys

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestKeyMapCoversBindings(t *testing.T) {
	for _, name := range LayerKeys {
		_, ok := keyMap[name]
		assert.True(t, ok, "layer key %s", name)
	}

	for _, name := range []string{"ctrl", "shift", "alt", "super"} {
		_, ok := modMap[name]
		assert.True(t, ok, "modifier %s", name)
	}
}

func TestNewHotkey(t *testing.T) {
	b, err := ParseBinding("ctrl+alt+super+l")
	require.NoError(t, err)

	hk, err := newHotkey(b)
	require.NoError(t, err)
	assert.NotNil(t, hk)

	_, err = newHotkey(Binding{Modifiers: []string{"ctrl"}, Key: "pause"})
	assert.Error(t, err)
}
