// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/raphi011/dot/internal/stats"
	"github.com/raphi011/dot/internal/ui/styles"
)

// WorshipperHeaders are the columns of WorshipperTableRow.
var WorshipperHeaders = []string{"#", "NAME", "WORSHIPS", "LAST"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if row == table.HeaderRow && styles.ColorEnabled() {
				return s.Bold(true)
			}
			return s
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// WorshipperTableRow returns the cells for one ranked worshipper.
func WorshipperTableRow(rank int, w stats.Worshipper) []string {
	last := ""
	if !w.Last.IsZero() {
		last = w.Last.Format(time.DateOnly)
	}
	return []string{strconv.Itoa(rank), w.Name, strconv.Itoa(w.Count), last}
}
