package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
	"github.com/icubam/bedmap-colorize/pkg/config"
	"github.com/icubam/bedmap-colorize/pkg/table"
)

// colorFlags are the colorizer options shared by values, table and serve.
type colorFlags struct {
	theme        string
	themesFile   string
	min          float64
	max          float64
	center       float64
	percent      bool
	readable     bool
	noZeroAnchor bool
}

func (f *colorFlags) register(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	fl.StringVar(&f.theme, "theme", cfg.Theme, "Color theme name")
	fl.StringVar(&f.themesFile, "themes-file", cfg.ThemesFile, "YAML file with additional themes")
	fl.Float64Var(&f.min, "min", 0, "Values at or below this get solid color_min")
	fl.Float64Var(&f.max, "max", 0, "Values at or above this get solid color_max")
	fl.Float64Var(&f.center, "center", 0, "Center value (default: mean of the values)")
	fl.BoolVar(&f.percent, "percent", cfg.Percent, "Compare --min/--max against the ratio to the center")
	fl.BoolVar(&f.readable, "readable", cfg.Readable, "Compute a readable text color")
	fl.BoolVar(&f.noZeroAnchor, "no-zero-anchor", !cfg.ZeroAnchored, "Do not start the min/max range at 0")
}

// options merges config and flags. Only flags set on the command line
// override the optional numeric bounds from the config.
func (f *colorFlags) options(cmd *cobra.Command, cfg *config.Config) (colorize.Options, error) {
	c := *cfg
	c.Theme = f.theme
	c.ThemesFile = f.themesFile
	c.Percent = f.percent
	c.Readable = f.readable
	c.ZeroAnchored = !f.noZeroAnchor

	fl := cmd.Flags()
	if fl.Changed("min") {
		c.Min = colorize.Float(f.min)
	}
	if fl.Changed("max") {
		c.Max = colorize.Float(f.max)
	}
	if fl.Changed("center") {
		c.Center = colorize.Float(f.center)
	}

	opts, err := c.Options()
	if err != nil {
		return opts, err
	}
	// fail fast on a theme that does not resolve
	if _, err := colorize.Colorize(nil, opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func argsToCells(args []string) []colorize.Cell {
	cells := make([]colorize.Cell, len(args))
	for i, a := range args {
		cells[i] = colorize.Cell{ID: strconv.Itoa(i), Text: a}
	}
	return cells
}

func splitColumns(s string) []string {
	var cols []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// shortWidth is the cell width, in runes, of the "short" display format.
const shortWidth = 12

func formatterFor(name string) (table.Formatter, error) {
	switch name {
	case "", "number":
		return table.FormatNumber, nil
	case "percent":
		return table.FormatPercent, nil
	case "short":
		return table.Truncate(shortWidth), nil
	}
	return nil, fmt.Errorf("unknown format %q (number, percent, short)", name)
}

// styledCell is one colored cell in the JSON output of the table command.
type styledCell struct {
	Row        int    `json:"row"`
	Column     string `json:"column"`
	Value      string `json:"value"`
	Background string `json:"backgroundColor"`
	Text       string `json:"textColor,omitempty"`
}

func styledCells(v *table.View, grid table.Grid) []styledCell {
	out := []styledCell{}
	for row := range v.Table.Rows {
		for col, name := range v.Table.Header {
			s := grid.At(row, col)
			if s == nil {
				continue
			}
			out = append(out, styledCell{
				Row:        row,
				Column:     name,
				Value:      v.Table.Cell(row, col),
				Background: s.Background,
				Text:       s.Text,
			})
		}
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
