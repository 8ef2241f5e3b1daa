package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard bindings. It implements help.KeyMap.
type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Tab1      key.Binding
	Tab2      key.Binding
	Help      key.Binding
	Palette   key.Binding
	Theme     key.Binding
	Focus     key.Binding
	Blur      key.Binding
	Complete  key.Binding
	InstallUV key.Binding
	List      key.Binding
	Refresh   key.Binding
	Install   key.Binding
	Uninstall key.Binding
	Find      key.Binding
	Pin       key.Binding
	Check     key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev tab")),
		Tab1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "installation")),
		Tab2:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "python")),
		Help:      key.NewBinding(key.WithKeys("h", "3", "?"), key.WithHelp("h", "help")),
		Palette:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "commands")),
		Theme:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark/light")),
		Focus:     key.NewBinding(key.WithKeys("/", "v"), key.WithHelp("/", "version input")),
		Blur:      key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "leave input")),
		Complete:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		InstallUV: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install uv")),
		List:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "list available")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Install:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install")),
		Uninstall: key.NewBinding(key.WithKeys("u", "x"), key.WithHelp("u", "uninstall")),
		Find:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "find")),
		Pin:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
		Check:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check uv")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel/quit")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+q"), key.WithHelp("q", "quit")),
	}
}

// contextKeys narrows the short help to what applies on the current tab.
type contextKeys struct {
	k     keyMap
	tab   tabKind
	input bool
}

func (c contextKeys) ShortHelp() []key.Binding {
	if c.input {
		return []key.Binding{c.k.Complete, c.k.Blur, c.k.Cancel}
	}
	switch c.tab {
	case tabInstall:
		return []key.Binding{c.k.InstallUV, c.k.Check, c.k.NextTab, c.k.Palette, c.k.Help, c.k.Quit}
	case tabPython:
		return []key.Binding{c.k.Focus, c.k.List, c.k.Refresh, c.k.Install, c.k.Uninstall, c.k.Find, c.k.Pin, c.k.Palette, c.k.Quit}
	}
	return []key.Binding{c.k.NextTab, c.k.Theme, c.k.Palette, c.k.Quit}
}

func (c contextKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{c.k.Tab1, c.k.Tab2, c.k.Help, c.k.NextTab, c.k.PrevTab},
		{c.k.InstallUV, c.k.Check, c.k.List, c.k.Refresh},
		{c.k.Install, c.k.Uninstall, c.k.Find, c.k.Pin},
		{c.k.Focus, c.k.Complete, c.k.Palette, c.k.Theme, c.k.Cancel, c.k.Quit},
	}
}
