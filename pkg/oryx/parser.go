// Package oryx reads keymap exports from ZSA's Oryx configurator.
package oryx

import (
	"codeberg.org/miketth/ezoverlay/pkg/geometry"
	"codeberg.org/miketth/ezoverlay/pkg/keycodes"
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrMalformedInput = errors.New("malformed keymap export")
	errMissingLayers  = errors.New(`missing "layers" field`)
)

const (
	layerIDPrefix    = "oryx_layer_"
	layerTitlePrefix = "Layer "
)

// Decode reads an export without translating it.
func Decode(data []byte) (*Export, error) {
	var raw rawExport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrMalformedInput, err)
	}
	if raw.Layers == nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, errMissingLayers)
	}

	layers, err := layerCodes(*raw.Layers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return &Export{
		Keyboard: raw.Keyboard,
		Keymap:   raw.Keymap,
		Version:  raw.Version,
		Author:   raw.Author,
		Notes:    raw.Notes,
		Layout:   raw.Layout,
		Layers:   layers,
	}, nil
}

func layerCodes(raw [][]*string) ([][]string, error) {
	layers := make([][]string, 0, len(raw))
	for i, entry := range raw {
		if entry == nil {
			return nil, fmt.Errorf("layer %d is null", i)
		}

		codes := make([]string, 0, len(entry))
		for j, code := range entry {
			if code == nil {
				return nil, fmt.Errorf("layer %d key %d is null", i, j)
			}
			codes = append(codes, *code)
		}
		layers = append(layers, codes)
	}

	return layers, nil
}

// Parse turns an export into one layer per exported layer, in export order.
// Keys beyond the physical board are skipped.
func Parse(data []byte) ([]overlay.Layer, error) {
	export, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return export.ToLayers(), nil
}

func ParseString(s string) ([]overlay.Layer, error) {
	return Parse([]byte(s))
}

func ParseFile(path string) ([]overlay.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return Parse(data)
}

func (e *Export) ToLayers() []overlay.Layer {
	layers := make([]overlay.Layer, 0, len(e.Layers))
	for i, codes := range e.Layers {
		layers = append(layers, overlay.Layer{
			ID:     LayerID(i),
			Title:  fmt.Sprintf("%s%d", layerTitlePrefix, i),
			Layout: translate(codes),
		})
	}

	return layers
}

func LayerID(index int) string {
	return fmt.Sprintf("%s%d", layerIDPrefix, index)
}

func translate(codes []string) []overlay.KeyLabel {
	labels := make([]overlay.KeyLabel, 0, len(codes))
	for idx, code := range codes {
		pos, ok := geometry.Lookup(idx)
		if !ok {
			continue
		}

		labels = append(labels, overlay.KeyLabel{
			Row:    pos.Row,
			Column: pos.Column,
			Text:   keycodes.DisplayText(code),
		})
	}

	return labels
}
