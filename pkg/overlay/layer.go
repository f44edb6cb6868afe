package overlay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type Layer struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ImageName string     `json:"imageName,omitempty"`
	Layout    []KeyLabel `json:"layout,omitempty"`
}

type KeyLabel struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

// HasLayout reports whether the layer carries its own key grid. Layers
// without one are drawn from a template keyed by title.
func (l Layer) HasLayout() bool {
	return l.Layout != nil
}

func (l Layer) clone() Layer {
	if l.Layout != nil {
		layout := make([]KeyLabel, len(l.Layout))
		copy(layout, l.Layout)
		l.Layout = layout
	}
	return l
}

// DefaultLayers are used until a keymap export has been imported.
func DefaultLayers() []Layer {
	return []Layer{
		{ID: "base", Title: "Base Layer", ImageName: "layer_base"},
		{ID: "symbols", Title: "Symbols", ImageName: "layer_symbols"},
		{ID: "numbers", Title: "Numbers", ImageName: "layer_numbers"},
		{ID: "function", Title: "Function", ImageName: "layer_function"},
		{ID: "navigation", Title: "Navigation", ImageName: "layer_navigation"},
	}
}

func EncodeLayer(w io.Writer, layer Layer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(layer); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func DecodeLayer(r io.Reader) (Layer, error) {
	var layer Layer
	if err := json.NewDecoder(r).Decode(&layer); err != nil {
		return Layer{}, fmt.Errorf("decode json: %w", err)
	}
	return layer, nil
}

func SaveLayer(filename string, layer Layer) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if err := EncodeLayer(file, layer); err != nil {
		return err
	}

	return file.Close()
}

func LoadLayerFile(filename string) (Layer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Layer{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return DecodeLayer(file)
}
