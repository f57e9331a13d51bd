package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/timefighter/internal/storage"
)

var (
	scoreTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	scoreStatsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// scoreColumns returns the column layout of the high score table.
func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}
}

// newScoreTable creates a styled, unfocused table holding the given entries.
func newScoreTable(entries []storage.ScoreEntry) table.Model {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		player := e.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(scoreColumns()),
		table.WithRows(rows),
		table.WithHeight(max(len(rows), 1)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Static output, nothing is selected.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// ScoreTable renders the high score list and game stats for printing.
func ScoreTable(title string, entries []storage.ScoreEntry, stats *storage.GameStats) string {
	var b strings.Builder

	b.WriteString(scoreTitleStyle.Render(title))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString("No scores yet. Play a round!\n")
		return b.String()
	}

	b.WriteString(newScoreTable(entries).View())
	b.WriteString("\n")

	if stats != nil && stats.GamesCount > 0 {
		line := fmt.Sprintf("Rounds: %d | Best: %d | Average: %.1f | Last played: %s",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("Jan 02 15:04"))
		b.WriteString(scoreStatsStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
