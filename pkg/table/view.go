package table

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
)

// View is the state a rendered table needs: the data, the columns that are
// heat-mapped and the colorizer options. It replaces page-level globals.
type View struct {
	Table   *Table
	Columns []string
	Options colorize.Options
	Format  Formatter
}

// Style is the applied color of one cell. A nil *Style means unstyled.
type Style struct {
	Background string
	Text       string
}

// Grid holds a style per data cell, aligned with Table.Rows and Table.Header.
type Grid [][]*Style

// At returns the style at row, col or nil.
func (g Grid) At(row, col int) *Style {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return nil
	}
	return g[row][col]
}

// CellID is the identifier routed through the colorizer for a table cell.
func CellID(row, col int) string {
	return fmt.Sprintf("%d:%d", row, col)
}

func parseCellID(id string) (int, int, error) {
	r, c, ok := strings.Cut(id, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed cell id %q", id)
	}
	row, err := strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cell id %q: %w", id, err)
	}
	col, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cell id %q: %w", id, err)
	}
	return row, col, nil
}

// ColumnCells returns the value set of one column.
func (t *Table) ColumnCells(col int) []colorize.Cell {
	cells := make([]colorize.Cell, 0, len(t.Rows))
	for row := range t.Rows {
		cells = append(cells, colorize.Cell{ID: CellID(row, col), Text: t.Cell(row, col)})
	}
	return cells
}

// Colorize styles every selected column independently. A column that fails
// stays unstyled; its error is joined into the returned error while the grid
// still carries the other columns.
func (v *View) Colorize() (Grid, error) {
	if v.Table == nil {
		return nil, ErrEmptyTable
	}
	grid := make(Grid, len(v.Table.Rows))
	for i := range grid {
		grid[i] = make([]*Style, len(v.Table.Header))
	}

	var errs []error
	for _, name := range v.Columns {
		if err := v.colorizeColumn(grid, name); err != nil {
			slog.Warn("Column left uncolored", "column", name, "error", err)
			errs = append(errs, fmt.Errorf("column %q: %w", name, err))
		}
	}
	return grid, errors.Join(errs...)
}

func (v *View) colorizeColumn(grid Grid, name string) error {
	col, err := v.Table.Column(name)
	if err != nil {
		return err
	}
	results, err := colorize.Colorize(v.Table.ColumnCells(col), v.Options)
	if err != nil {
		return err
	}
	for _, res := range results {
		row, c, err := parseCellID(res.ID)
		if err != nil {
			return err
		}
		if row < len(grid) && c < len(grid[row]) {
			grid[row][c] = &Style{Background: res.Background, Text: res.Text}
		}
	}
	slog.Debug("Colorized column", "column", name, "cells", len(results))
	return nil
}

// Display returns the formatted text of a cell.
func (v *View) Display(row, col int) string {
	f := v.Format
	if f == nil {
		f = FormatNumber
	}
	return f(v.Table.Cell(row, col))
}
