package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	switchForm key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	login      key.Binding
	register   key.Binding
	reconnect  key.Binding
	logout     key.Binding
	copy       key.Binding
	version    key.Binding
}

var keys = keyMap{
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	switchForm: key.NewBinding(key.WithKeys("ctrl+t")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	login:      key.NewBinding(key.WithKeys("l")),
	register:   key.NewBinding(key.WithKeys("n")),
	reconnect:  key.NewBinding(key.WithKeys("r")),
	logout:     key.NewBinding(key.WithKeys("o")),
	copy:       key.NewBinding(key.WithKeys("c")),
	version:    key.NewBinding(key.WithKeys("v")),
}
