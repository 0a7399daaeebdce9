package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	oldest   key.Binding
	newest   key.Binding
	search   key.Binding
	next     key.Binding
	diag     key.Binding
	help     key.Binding
	quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.search, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.pageUp, k.pageDown},
		{k.oldest, k.newest, k.search, k.next},
		{k.diag, k.help, k.quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "older")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "newer")),
		pageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page older")),
		pageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn/f", "page newer")),
		oldest:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "oldest loaded")),
		newest:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "newest")),
		search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		diag:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diagnostics")),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
