package mindmap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mattsolo1/grove-core/tui/keymap"
)

// KeyMap defines the keybindings for the mindmap TUI
type KeyMap struct {
	keymap.Base
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	AddChild   key.Binding
	AddSibling key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Duplicate  key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Save       key.Binding
	Search     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.AddChild, k.Edit, k.Delete, k.Undo, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	baseHelp := k.Base.FullHelp()
	return append(baseHelp,
		[]key.Binding{k.Left, k.Right, k.Toggle, k.Search},
		[]key.Binding{k.AddChild, k.AddSibling, k.Edit, k.Delete, k.Duplicate},
		[]key.Binding{k.Undo, k.Redo, k.Save},
	)
}

var keys = KeyMap{
	Base: keymap.NewBase(),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "expand/collapse"),
	),
	AddChild: key.NewBinding(
		key.WithKeys("n", "tab"),
		key.WithHelp("n", "add child"),
	),
	AddSibling: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "add sibling"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit title"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete", "backspace"),
		key.WithHelp("d", "delete"),
	),
	Duplicate: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "duplicate"),
	),
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z", "u"),
		key.WithHelp("u/ctrl+z", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+y", "ctrl+r"),
		key.WithHelp("ctrl+y", "redo"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
}
