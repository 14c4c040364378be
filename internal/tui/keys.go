package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/humbench/internal/bench"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	React    key.Binding
	Restart  key.Binding
	Cell     key.Binding
	Conclude key.Binding
	Next     key.Binding
	Prev     key.Binding
	Reset    key.Binding
	Clear    key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		React:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "click")),
		Restart:  key.NewBinding(key.WithKeys("r", "s"), key.WithHelp("r", "restart")),
		Cell:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "cell")),
		Conclude: key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "finish")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next sample")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev sample")),
		Reset:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear scores")),
		Confirm:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}

// viewKeys adapts keyMap to help.KeyMap for a single view.
type viewKeys struct {
	bindings []key.Binding
}

func (v viewKeys) ShortHelp() []key.Binding {
	return v.bindings
}

func (v viewKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{v.bindings}
}

func (k keyMap) forView(view bench.View, confirming bool) viewKeys {
	switch view {
	case bench.ViewReaction:
		return viewKeys{[]key.Binding{k.React, k.Restart, k.Back, k.Quit}}
	case bench.ViewChimp:
		return viewKeys{[]key.Binding{k.Cell, k.Select, k.Restart, k.Back, k.Quit}}
	case bench.ViewTyping:
		quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
		return viewKeys{[]key.Binding{k.Conclude, k.Next, k.Prev, k.Reset, k.Back, quit}}
	case bench.ViewDashboard:
		if confirming {
			return viewKeys{[]key.Binding{k.Confirm, k.Cancel}}
		}
		return viewKeys{[]key.Binding{k.Clear, k.Back, k.Quit}}
	default:
		return viewKeys{[]key.Binding{k.Up, k.Down, k.Select, k.Quit}}
	}
}
