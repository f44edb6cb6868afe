package hotkeys

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in   string
		want Binding
	}{
		{"ctrl+alt+super+l", Binding{Modifiers: []string{"ctrl", "alt", "super"}, Key: "l"}},
		{"Cmd+Option+Control+L", Binding{Modifiers: []string{"super", "alt", "ctrl"}, Key: "l"}},
		{"shift + F13", Binding{Modifiers: []string{"shift"}, Key: "f13"}},
		{"ctrl+ctrl+space", Binding{Modifiers: []string{"ctrl"}, Key: "space"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBinding(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBindingErrors(t *testing.T) {
	for _, in := range []string{"", "l", "ctrl+", "hyper+l"} {
		_, err := ParseBinding(in)
		assert.Error(t, err, "binding %q", in)
	}
}

func TestBindingString(t *testing.T) {
	b, err := ParseBinding("cmd+opt+ctrl+l")
	require.NoError(t, err)
	assert.Equal(t, "super+alt+ctrl+l", b.String())
}

func TestLayerKeys(t *testing.T) {
	assert.Len(t, LayerKeys, 8)
	assert.Equal(t, "f13", LayerKeys[0])
	assert.Equal(t, "f20", LayerKeys[7])
}
