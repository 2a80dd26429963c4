package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for section headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for labels and rules
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// barFilledStyle for the populated part of a completeness bar
	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// barEmptyStyle for the rest of the bar
	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	// boxStyle for the report frame
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

const barWidth = 20

// Render writes the quality report to w as a styled terminal summary:
// totals, a completeness bar per tracked field, and the per-service and
// per-position-type breakdowns sorted by descending count.
func Render(w io.Writer, rep Report) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Data Quality Report"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d\n", dimStyle.Render("Total Records:"), rep.TotalRecords)
	fmt.Fprintf(&b, "%s %d\n", dimStyle.Render("Total Relationships:"), rep.TotalRelationships)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Field Completeness"))
	b.WriteString("\n")
	for _, field := range CompletenessFields {
		stat := rep.FieldCompleteness[field]
		fmt.Fprintf(&b, "  %-20s %s %5.1f%% (%d)\n",
			field, completenessBar(stat.Percentage), stat.Percentage, stat.Count)
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Records by Service/Agency"))
	b.WriteString("\n")
	writeCounts(&b, rep.RecordsByService)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Records by Position Type"))
	b.WriteString("\n")
	writeCounts(&b, rep.RecordsByPositionType)

	fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func completenessBar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

// writeCounts prints a count map sorted by descending count, name ascending
// on ties so the output is stable.
func writeCounts(b *strings.Builder, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(b, "  %-25s %5d\n", name, counts[name])
	}
}
