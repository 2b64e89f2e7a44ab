package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings shared by every widget.
type KeyMap struct {
	First       key.Binding
	Previous    key.Binding
	Next        key.Binding
	Last        key.Binding
	MoreRows    key.Binding
	FewerRows   key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	SortColumn  key.Binding
	ToggleHelp  key.Binding
	Quit        key.Binding
	searchable  bool
	rowsEnabled bool
	firstLast   bool
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		First:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first page")),
		Previous:    key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous")),
		Next:        key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
		Last:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last page")),
		MoreRows:    key.NewBinding(key.WithKeys("+", "]"), key.WithHelp("+", "more rows")),
		FewerRows:   key.NewBinding(key.WithKeys("-", "["), key.WithHelp("-", "fewer rows")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		SortColumn: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "sort column"),
		),
		ToggleHelp:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		rowsEnabled: true,
		firstLast:   true,
	}
}

// forWidget enables only the bindings the widget configuration exposes.
func (k KeyMap) forWidget(showFirstLast, showSelector, searchable bool) KeyMap {
	k.firstLast = showFirstLast
	k.rowsEnabled = showSelector
	k.searchable = searchable
	k.First.SetEnabled(showFirstLast)
	k.Last.SetEnabled(showFirstLast)
	k.MoreRows.SetEnabled(showSelector)
	k.FewerRows.SetEnabled(showSelector)
	k.Search.SetEnabled(searchable)
	k.ClearSearch.SetEnabled(searchable)
	k.SortColumn.SetEnabled(searchable)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Previous, k.Next}
	if k.firstLast {
		bindings = append(bindings, k.First, k.Last)
	}
	if k.rowsEnabled {
		bindings = append(bindings, k.MoreRows, k.FewerRows)
	}
	if k.searchable {
		bindings = append(bindings, k.Search, k.SortColumn)
	}
	return append(bindings, k.ToggleHelp, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.First, k.Previous, k.Next, k.Last},
		{k.MoreRows, k.FewerRows},
		{k.Search, k.ClearSearch, k.SortColumn},
		{k.ToggleHelp, k.Quit},
	}
}
