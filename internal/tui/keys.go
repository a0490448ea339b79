package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
	Theme   key.Binding
	Style   key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "slide back")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "slide forward")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Style:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "fade/roll")),
		History: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "history")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Right, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Left, k.Right},
		{k.Theme, k.Style, k.History},
		{k.Help, k.Quit},
	}
}
