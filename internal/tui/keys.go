package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the demo.
type KeyMap struct {
	// Bars
	Info       key.Binding
	Warning    key.Binding
	Error      key.Binding
	Success    key.Binding
	Burst      key.Binding
	Persistent key.Binding
	Tap        key.Binding
	DetachAll  key.Binding

	// Screens
	NextScreen  key.Binding
	NewScreen   key.Binding
	CloseScreen key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Info, k.Warning, k.Error, k.Success, k.Tap, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Info, k.Warning, k.Error, k.Success},
		{k.Burst, k.Persistent, k.Tap, k.DetachAll},
		{k.NextScreen, k.NewScreen, k.CloseScreen},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		Warning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warning"),
		),
		Error: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error"),
		),
		Success: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "success"),
		),
		Burst: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "burst of three"),
		),
		Persistent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "persistent"),
		),
		Tap: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "tap top bar"),
		),
		DetachAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss all"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next screen"),
		),
		NewScreen: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new screen"),
		),
		CloseScreen: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close screen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
