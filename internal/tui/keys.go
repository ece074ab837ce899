package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
	ContentUp key.Binding
	ContentDn key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "prev section"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("dn/j", "next section"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ContentUp: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "scroll up"),
	),
	ContentDn: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
}
