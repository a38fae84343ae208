// Package term renders a colorized table for a terminal.
package term

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
	"github.com/icubam/bedmap-colorize/pkg/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// textColors maps the colorizer's readable text choice to terminal colors.
var textColors = map[string]lipgloss.Color{
	colorize.TextBlack: lipgloss.Color("#000000"),
	colorize.TextWhite: lipgloss.Color("#FFFFFF"),
}

// Render returns the table with computed styles applied as cell backgrounds.
func Render(v *table.View, grid table.Grid) string {
	rows := make([][]string, len(v.Table.Rows))
	for row := range v.Table.Rows {
		rows[row] = make([]string, len(v.Table.Header))
		for col := range v.Table.Header {
			rows[row][col] = v.Display(row, col)
		}
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(v.Table.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle
			}
			return styleFor(grid.At(row, col))
		})
	return t.String()
}

// Write renders the table to w followed by a newline.
func Write(w io.Writer, v *table.View, grid table.Grid) error {
	_, err := io.WriteString(w, Render(v, grid)+"\n")
	return err
}

func styleFor(s *table.Style) lipgloss.Style {
	if s == nil {
		return cellStyle
	}
	st := cellStyle.Background(lipgloss.Color(s.Background))
	if fg, ok := textColors[s.Text]; ok {
		st = st.Foreground(fg)
	}
	return st
}
