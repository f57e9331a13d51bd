// Package tui provides the Bubble Tea shell for the game.
// It maps keys to actions, feeds frame time into the game session, renders the
// screen and runs the same model for local terminals and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/timefighter/internal/core"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one frame.
func tickCmd(rt core.RuntimeConfig) tea.Cmd {
	return tea.Tick(rt.FrameDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
