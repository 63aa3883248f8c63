// Package report renders evaluation results: a styled terminal table, JSON
// export, and bar-chart images.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"facet/internal/domain"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleRow    = lipgloss.NewStyle()
	styleUnit   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleFrame  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// Table renders one row per measure and one column per dataset.
func Table(results []domain.Result, datasets []string) string {
	cols := make([][]string, 0, len(datasets)+2)

	titleCol := []string{"Measure"}
	unitCol := []string{"Unit"}
	for _, r := range results {
		titleCol = append(titleCol, r.Title)
		unitCol = append(unitCol, r.Unit)
	}
	cols = append(cols, titleCol, unitCol)

	for i, name := range datasets {
		col := []string{name}
		for _, r := range results {
			if i < len(r.Values) {
				col = append(col, FormatValue(r.Values[i]))
			} else {
				col = append(col, "-")
			}
		}
		cols = append(cols, col)
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		for _, cell := range col {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	rows := len(results) + 1
	for row := 0; row < rows; row++ {
		cells := make([]string, len(cols))
		for i, col := range cols {
			style := styleRow
			switch {
			case row == 0:
				style = styleHeader
			case i == 1:
				style = styleUnit
			}
			cells[i] = style.Width(widths[i]).Render(col[row])
		}
		b.WriteString(strings.Join(cells, "  "))
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return styleFrame.Render(b.String())
}

// FormatValue renders a measure value compactly.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}

// Summary renders a one-line run description for listings.
func Summary(run domain.RunSummary) string {
	measures := make([]string, len(run.Measures))
	for i, m := range run.Measures {
		measures[i] = string(m)
	}
	return fmt.Sprintf("%s  %s  datasets=[%s]  measures=[%s]",
		run.ID,
		run.CreatedAt.Format("2006-01-02 15:04:05"),
		strings.Join(run.Datasets, ", "),
		strings.Join(measures, ", "))
}
