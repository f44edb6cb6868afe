// Package tui shows the current layer in the terminal.
package tui

import (
	"codeberg.org/miketth/ezoverlay/pkg/overlay"
	"fmt"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LayerStore is the part of overlay.Store the overlay drives.
type LayerStore interface {
	Current() (overlay.Layer, bool)
	Layers() []overlay.Layer
	CurrentIndex() int
	SwitchToLayer(index int)
	Next()
	Previous()
}

type changeMsg overlay.Change

type toggleMsg struct{}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Model struct {
	store    LayerStore
	renderer overlay.Renderer
	keys     KeyMap
	help     help.Model

	layer  overlay.Layer
	hasAny bool
	hidden bool
	mouse  bool
}

func NewModel(store LayerStore, renderer overlay.Renderer) Model {
	m := Model{
		store:    store,
		renderer: renderer,
		keys:     DefaultKeyMap,
		help:     help.New(),
	}
	m.layer, m.hasAny = store.Current()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changeMsg:
		m.layer, m.hasAny = msg.Layer, msg.OK
		return m, nil

	case toggleMsg:
		m.hidden = !m.hidden
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if !m.mouse || msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.store.Next()
		case tea.MouseButtonRight:
			m.store.Previous()
		default:
			return m, nil
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Toggle):
			m.hidden = !m.hidden
		case key.Matches(msg, m.keys.Layer):
			m.store.SwitchToLayer(int(msg.Runes[0] - '1'))
			m.refresh()
		case key.Matches(msg, m.keys.Next):
			m.store.Next()
			m.refresh()
		case key.Matches(msg, m.keys.Prev):
			m.store.Previous()
			m.refresh()
		}
	}

	return m, nil
}

func (m *Model) refresh() {
	if layer, ok := m.store.Current(); ok {
		m.layer, m.hasAny = layer, true
	}
}

func (m Model) View() string {
	footer := m.help.View(m.keys)

	if m.hidden {
		return dimStyle.Render("overlay hidden") + "\n\n" + footer
	}
	if !m.hasAny {
		return dimStyle.Render("no layers loaded") + "\n\n" + footer
	}

	header := headerStyle.Render(fmt.Sprintf("Layer %d/%d", m.store.CurrentIndex()+1, len(m.store.Layers())))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderer.Render(m.layer),
		footer,
	)
}

// Hidden reports whether the key caps are currently hidden.
func (m Model) Hidden() bool {
	return m.hidden
}

func (m Model) Layer() (overlay.Layer, bool) {
	return m.layer, m.hasAny
}
