package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/style"
)

type keymap struct {
	quit, forceQuit,
	toggleTheme, toggleColors,
	up, down, top, bottom,
	showHelp key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		toggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp(style.Fg(color.Yellow)("t"), style.Fg(color.Yellow)("toggle theme")),
		),
		toggleColors: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle colors"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggleTheme, k.toggleColors, k.quit, k.showHelp}
}

// FullHelp implements help.KeyMap.
func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.top, k.bottom},
		{k.toggleTheme, k.toggleColors},
		{k.quit, k.forceQuit, k.showHelp},
	}
}
