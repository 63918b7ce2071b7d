package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play      key.Binding
	Toggle    key.Binding
	Next      key.Binding
	Previous  key.Binding
	LoadMore  key.Binding
	Selection key.Binding
	Mark      key.Binding
	SelectAll key.Binding
	Menu      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next track"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous track"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		Selection: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "selection mode"),
		),
		Mark: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "select/deselect"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		Menu: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "song menu"),
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
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Toggle, k.LoadMore, k.Selection, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Toggle, k.Next, k.Previous},
		{k.LoadMore, k.Selection, k.Mark, k.SelectAll},
		{k.Menu, k.Help, k.Quit},
	}
}
