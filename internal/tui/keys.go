package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Today     key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	AddDeliv  key.Binding
	AddRate   key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Reconcile key.Binding
	Share     key.Binding
	Copy      key.Binding
	Settings  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open day")),
		AddDeliv:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add delivery")),
		AddRate:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add daily rate")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Reconcile: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "correct total")),
		Share:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "share report")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy report")),
		Settings:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddDeliv, k.AddRate, k.Reconcile, k.Share, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.PrevDay, k.NextDay, k.Today, k.Up, k.Down, k.Open},
		{k.AddDeliv, k.AddRate, k.Edit, k.Delete, k.Reconcile},
		{k.Share, k.Copy, k.Settings, k.Help, k.Quit},
	}
}
