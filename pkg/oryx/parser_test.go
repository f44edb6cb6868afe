package oryx

import (
	"codeberg.org/miketth/ezoverlay/pkg/geometry"
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestParseTwoKeys(t *testing.T) {
	layers, err := ParseString(`{"layers": [["KC_A","KC_B"]]}`)
	require.NoError(t, err)
	require.Len(t, layers, 1)

	assert.Equal(t, overlay.Layer{
		ID:    "oryx_layer_0",
		Title: "Layer 0",
		Layout: []overlay.KeyLabel{
			{Row: 0, Column: 0, Text: "A"},
			{Row: 0, Column: 1, Text: "B"},
		},
	}, layers[0])
}

func TestParseEmptyLayers(t *testing.T) {
	layers, err := ParseString(`{"keyboard": "ergodox_ez", "layers": []}`)
	require.NoError(t, err)
	assert.NotNil(t, layers)
	assert.Empty(t, layers)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "invalid json content"},
		{"empty input", ""},
		{"missing layers", `{"keyboard": "ergodox_ez", "keymap": "default"}`},
		{"null layers", `{"layers": null}`},
		{"layers not an array", `{"layers": "KC_A"}`},
		{"layer not an array", `{"layers": ["KC_A"]}`},
		{"codes not strings", `{"layers": [[1, 2]]}`},
		{"top level array", `[["KC_A"]]`},
		{"trailing data", `{"layers": []} {}`},
		{"null layer", `{"layers": [["KC_A"], null]}`},
		{"null code", `{"layers": [["KC_A", null]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layers, err := ParseString(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.Nil(t, layers)
		})
	}
}

func TestParseSkipsKeysWithoutPosition(t *testing.T) {
	codes := make([]string, geometry.Count+4)
	for i := range codes {
		codes[i] = "KC_X"
	}
	input := `{"layers": [["` + strings.Join(codes, `","`) + `"]]}`

	layers, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, layers, 1)
	assert.Len(t, layers[0].Layout, geometry.Count)
}

func TestParseShortLayer(t *testing.T) {
	layers, err := ParseString(`{"layers": [[], ["KC_A"]]}`)
	require.NoError(t, err)
	require.Len(t, layers, 2)

	assert.NotNil(t, layers[0].Layout)
	assert.Empty(t, layers[0].Layout)
	assert.Equal(t, []overlay.KeyLabel{{Row: 0, Column: 0, Text: "A"}}, layers[1].Layout)
	assert.Equal(t, "oryx_layer_1", layers[1].ID)
}

func TestParseFile(t *testing.T) {
	layers, err := ParseFile("testdata/keymap.json")
	require.NoError(t, err)
	require.Len(t, layers, 2)

	base := layers[0]
	assert.Equal(t, "oryx_layer_0", base.ID)
	assert.Equal(t, "Layer 0", base.Title)
	assert.Empty(t, base.ImageName)
	require.Len(t, base.Layout, geometry.Count)
	assert.Equal(t, overlay.KeyLabel{Row: 0, Column: 0, Text: "="}, base.Layout[0])
	assert.Equal(t, overlay.KeyLabel{Row: 1, Column: 6, Text: "⇄L1"}, base.Layout[13])
	assert.Equal(t, overlay.KeyLabel{Row: 5, Column: 13, Text: "Enter"}, base.Layout[75])

	symbols := layers[1]
	assert.Equal(t, "Layer 1", symbols.Title)
	assert.Equal(t, overlay.KeyLabel{Row: 1, Column: 1, Text: "!"}, symbols.Layout[8])
	assert.Equal(t, overlay.KeyLabel{Row: 0, Column: 6, Text: "▽"}, symbols.Layout[6])

	seen := make(map[[2]int]bool)
	for _, label := range base.Layout {
		key := [2]int{label.Row, label.Column}
		assert.False(t, seen[key], "duplicate position %v", key)
		seen[key] = true
		assert.NotEmpty(t, label.Text)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeKeepsMetadata(t *testing.T) {
	export, err := Decode([]byte(`{"keyboard":"ergodox_ez","keymap":"km","version":"3","author":"me","notes":"n","layout":"L","layers":[["KC_A"]]}`))
	require.NoError(t, err)

	assert.Equal(t, "ergodox_ez", export.Keyboard)
	assert.Equal(t, "km", export.Keymap)
	assert.Equal(t, "3", export.Version)
	assert.Equal(t, "me", export.Author)
	assert.Equal(t, "n", export.Notes)
	assert.Equal(t, "L", export.Layout)
	assert.Equal(t, [][]string{{"KC_A"}}, export.Layers)
}

func TestLayerJSONRoundTrip(t *testing.T) {
	layers, err := ParseFile("testdata/keymap.json")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, overlay.EncodeLayer(&buf, layers[1]))

	decoded, err := overlay.DecodeLayer(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, layers[1].ID, decoded.ID)
	assert.Equal(t, layers[1].Title, decoded.Title)
	assert.Equal(t, layers[1].Layout, decoded.Layout)
}
