package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/letterfall/internal/storage"
)

// Scoreboard layout constants
const (
	rankWidth  = 6
	scoreWidth = 10
	nameWidth  = storage.MaxNameLen + 2
	maxScores  = 100 // Max scores to load
)

// newScoreTable creates the leaderboard table sized for a height-row terminal.
func newScoreTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)), // Leave room for title, result and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// scoreRows converts leaderboard entries to table rows.
func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}
	return rows
}

// highlightRow returns the index of the entry matching the just-saved result, or -1.
func highlightRow(entries []storage.ScoreEntry, name string, score int) int {
	for i, e := range entries {
		if e.Name == name && e.Score == score {
			return i
		}
	}
	return -1
}

// renderScoreTable renders the table or an empty message.
func renderScoreTable(t table.Model, entries []storage.ScoreEntry) string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return tableStyle.Render(emptyStyle.Render("No scores recorded yet."))
	}
	return tableStyle.Render(t.View())
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
