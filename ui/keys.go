package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left        key.Binding
	Right       key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Home        key.Binding
	End         key.Binding
	Enter       key.Binding
	Back        key.Binding
	Close       key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	Filter      key.Binding
	Search      key.Binding
	Prev        key.Binding
	Next        key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	ScrollLeft:  key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("[", "scroll left")),
	ScrollRight: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("]", "scroll right")),
	Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view project")),
	Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	Close:       key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	Tab:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
	ShiftTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev filter")),
	Filter:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "filter")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Prev:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy image url")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Enter, k.Tab, k.Search, k.Help, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.ScrollLeft, k.ScrollRight, k.Home, k.End},
		{k.Enter, k.Close, k.Prev, k.Next, k.Copy},
		{k.Tab, k.ShiftTab, k.Filter, k.Search, k.Back},
		{k.Help, k.Quit},
	}
}

// modalKeyMap is the help shown while the detail modal is open.
type modalKeyMap struct {
	keyMap
	navigation bool
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	if !k.navigation {
		return []key.Binding{k.Close, k.Copy, k.Filter}
	}
	return []key.Binding{k.Prev, k.Next, k.Close, k.Copy, k.Filter}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
