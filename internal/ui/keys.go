package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tada/internal/config"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Copy    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:    key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Add:     key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Toggle:  key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(keyLabel(k.Toggle), "toggle")),
		Delete:  key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		Copy:    key.NewBinding(key.WithKeys(k.Copy), key.WithHelp(k.Copy, "copy title")),
		Confirm: key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "save")),
		Cancel:  key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
		Quit:    key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
	}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.Delete, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Confirm, k.Cancel},
		{k.Toggle, k.Delete, k.Copy},
		{k.Quit},
	}
}

// formKeys is shown while the add form has focus.
type formKeys struct {
	keyMap
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
