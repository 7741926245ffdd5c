package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Jump      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	LearnMore key.Binding
	NextFact  key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "jump to tab"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab/←", "prev tab"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "prev card"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next card"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open/close card"),
	),
	LearnMore: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "learn how to help"),
	),
	NextFact: key.NewBinding(
		key.WithKeys("f", "n"),
		key.WithHelp("f", "next fun fact"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy fact"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Down, k.Toggle, k.LearnMore, k.NextFact, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.Toggle, k.LearnMore},
		{k.NextFact, k.Copy},
		{k.Help, k.Quit},
	}
}
