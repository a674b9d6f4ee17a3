package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	left   key.Binding
	right  key.Binding
	enter  key.Binding
	back   key.Binding
	tab    key.Binding
	save   key.Binding
	remove key.Binding
	open   key.Binding
	yes    key.Binding
	no     key.Binding
	search key.Binding
	logout key.Binding
	quit   key.Binding

	dashboard key.Binding
	tvShows   key.Binding
	movies    key.Binding
	continued key.Binding
	find      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		remove: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove")),
		open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open image")),
		yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		logout: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
		quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
		tvShows:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "tv shows")),
		movies:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "movies")),
		continued: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "continue")),
		find:      key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "search")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.dashboard, k.tvShows, k.movies, k.continued, k.find, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.enter, k.back, k.tab, k.search},
		{k.save, k.remove, k.logout, k.quit},
	}
}
