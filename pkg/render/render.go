// Package render draws layers as text key caps.
package render

import (
	"codeberg.org/miketth/ezoverlay/pkg/geometry"
	"codeberg.org/miketth/ezoverlay/pkg/keycodes"
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"github.com/charmbracelet/lipgloss"
)

const handGap = "    "

type Renderer struct {
	templates *Templates
	keyStyle  lipgloss.Style
	gapStyle  lipgloss.Style
	title     lipgloss.Style
}

type Option func(*Renderer)

// WithOpacity dims the key caps for low opacity settings, the closest a
// terminal gets to a translucent overlay.
func WithOpacity(opacity float64) Option {
	return func(r *Renderer) {
		if opacity < 0.6 {
			r.keyStyle = r.keyStyle.Faint(true)
			r.title = r.title.Faint(true)
		}
	}
}

func WithTemplates(t *Templates) Option {
	return func(r *Renderer) {
		r.templates = t
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		templates: DefaultTemplates(),
		keyStyle: lipgloss.NewStyle().
			Width(keycodes.MaxLabelLen).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")),
		gapStyle: lipgloss.NewStyle().
			Width(keycodes.MaxLabelLen).
			Border(lipgloss.HiddenBorder()),
		title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render draws the layer's own key grid, or the template for its title when
// the layer has none.
func (r *Renderer) Render(layer overlay.Layer) string {
	var body string
	if layer.HasLayout() {
		body = r.renderGrid(layer.Layout)
	} else {
		body = r.renderTemplate(r.templates.ForTitle(layer.Title))
	}

	return lipgloss.JoinVertical(lipgloss.Left, r.title.Render(layer.Title), body)
}

func (r *Renderer) renderGrid(labels []overlay.KeyLabel) string {
	var grid [geometry.Rows][geometry.Columns]*string
	for i := range labels {
		l := labels[i]
		if l.Row < 0 || l.Row >= geometry.Rows || l.Column < 0 || l.Column >= geometry.Columns {
			continue
		}
		grid[l.Row][l.Column] = &labels[i].Text
	}

	rows := make([]string, 0, geometry.Rows)
	for _, row := range grid {
		caps := make([]string, 0, geometry.Columns+1)
		for col, text := range row {
			if col == geometry.Columns/2 {
				caps = append(caps, handGap)
			}
			if text == nil {
				caps = append(caps, r.gapStyle.Render(""))
				continue
			}
			caps = append(caps, r.keyStyle.Render(*text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, caps...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) renderTemplate(t Template) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderHalf(t.Left), handGap, r.renderHalf(t.Right))
}

func (r *Renderer) renderHalf(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		caps := make([]string, 0, len(row))
		for _, text := range row {
			caps = append(caps, r.keyStyle.Render(text))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, caps...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
