package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/timefighter/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Tap     key.Binding
	Reset   key.Binding
	About   key.Binding
	Back    key.Binding
	Suspend key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Reset, k.About, k.Suspend, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Reset},
		{k.About, k.Back},
		{k.Suspend, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "space", "enter", "t"),
			key.WithHelp("space", "tap"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		About: key.NewBinding(
			key.WithKeys("a", "?"),
			key.WithHelp("a", "about"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "close"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Quit and suspend are handled by the model and map to ActionNone here.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Tap):
		return core.ActionTap
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.About):
		return core.ActionAbout
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
