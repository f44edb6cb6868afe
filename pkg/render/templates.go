package render

import (
	_ "embed"
	"fmt"
	"gopkg.in/yaml.v3"
	"strings"
)

//go:embed templates.yaml
var templatesYAML []byte

// Template is a hand drawn keyboard used for layers without a key grid.
type Template struct {
	Titles []string   `yaml:"titles"`
	Left   [][]string `yaml:"left"`
	Right  [][]string `yaml:"right"`
}

type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// Templates maps lower-cased layer titles to templates.
type Templates struct {
	byTitle  map[string]Template
	fallback Template
}

func LoadTemplates(data []byte) (*Templates, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("no templates defined")
	}

	t := &Templates{
		byTitle:  make(map[string]Template),
		fallback: file.Templates[0],
	}
	for _, tmpl := range file.Templates {
		for _, title := range tmpl.Titles {
			t.byTitle[strings.ToLower(title)] = tmpl
		}
	}

	return t, nil
}

// DefaultTemplates returns the templates built into the binary.
func DefaultTemplates() *Templates {
	t, err := LoadTemplates(templatesYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in templates: %v", err))
	}
	return t
}

func (t *Templates) ForTitle(title string) Template {
	if tmpl, ok := t.byTitle[strings.ToLower(strings.TrimSpace(title))]; ok {
		return tmpl
	}
	return t.fallback
}
