package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/timefighter/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space taps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTap},
		{"enter taps", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionTap},
		{"t taps", runeKey("t"), core.ActionTap},
		{"r resets", runeKey("r"), core.ActionReset},
		{"a opens about", runeKey("a"), core.ActionAbout},
		{"? opens about", runeKey("?"), core.ActionAbout},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b goes back", runeKey("b"), core.ActionBack},
		{"q is handled by the model", runeKey("q"), core.ActionNone},
		{"unbound key", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	for i, col := range keys.FullHelp() {
		if len(col) == 0 {
			t.Errorf("FullHelp column %d is empty", i)
		}
	}
}
