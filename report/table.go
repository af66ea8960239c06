// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/embedding"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("82"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241")))
}

// GapsTable renders the ranked per-embedding gaps and the effective summary.
func GapsTable(out calculi.Output) string {
	ranked := out.Ranked()
	t := newTable().
		Headers("rank", "embedding", "kind", "gap").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return bestStyle
			}
			return cellStyle
		})
	for i, g := range ranked {
		t.Row(strconv.Itoa(i+1), g.Name, string(g.Kind), formatGap(g.Gap))
	}

	var sb strings.Builder
	sb.WriteString(t.Render())
	sb.WriteByte('\n')
	sb.WriteString(titleStyle.Render("effective gap"))
	sb.WriteString(" " + formatGap(out.EffectiveGap))
	sb.WriteString(" (" + string(out.Method) + ", max single " + formatGap(out.MaxSingleGap))
	sb.WriteString(", " + FormatPct(out.ImprovementPct) + "%)")
	if out.Exact != nil {
		sb.WriteString("\nexact composed gap " + formatGap(*out.Exact))
	}
	sb.WriteByte('\n')

	return sb.String()
}

// SweepTable renders one row per σ with a column per embedding kind.
func SweepTable(sw calculi.SweepResult) string {
	var kinds []embedding.Kind
	if len(sw) > 0 {
		for _, g := range sw[0].Result.PerEmbedding {
			kinds = append(kinds, g.Kind)
		}
	}
	headers := []string{"sigma"}
	for _, k := range kinds {
		headers = append(headers, string(k))
	}
	headers = append(headers, "effective")

	t := newTable().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, p := range sw {
		cells := []string{strconv.FormatFloat(p.Sigma, 'g', -1, 64)}
		for _, k := range kinds {
			cells = append(cells, formatGap(gapOf(p.Result, k)))
		}
		cells = append(cells, formatGap(p.Result.Effective.EffectiveGap))
		t.Row(cells...)
	}

	return t.Render() + "\n"
}

func gapOf(r calculi.Result, k embedding.Kind) float64 {
	for _, g := range r.PerEmbedding {
		if g.Kind == k {
			return g.Gap
		}
	}

	return 0
}
