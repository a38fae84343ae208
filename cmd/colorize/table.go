package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/icubam/bedmap-colorize/pkg/config"
	"github.com/icubam/bedmap-colorize/pkg/svg"
	"github.com/icubam/bedmap-colorize/pkg/table"
	"github.com/icubam/bedmap-colorize/pkg/term"
)

func newTableCmd(cfg *config.Config) *cobra.Command {
	var flags colorFlags
	var columns string
	var sheet string
	var output string
	var outFile string
	var title string
	var format string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "table FILE",
		Short: "Colorize columns of a CSV or XLSX table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}
			formatter, err := formatterFor(format)
			if err != nil {
				return err
			}
			cols := splitColumns(columns)
			if len(cols) == 0 {
				return fmt.Errorf("no columns selected, use --column")
			}

			var s *spinner.Spinner
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Reading %s...", filepath.Base(args[0]))
				s.Start()
			}

			tbl, err := table.ReadFile(args[0], sheet)
			var grid table.Grid
			var colorErr error
			view := &table.View{Table: tbl, Columns: cols, Options: opts, Format: formatter}
			if err == nil {
				grid, colorErr = view.Colorize()
			}

			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			if err := render(view, grid, output, outFile, title, args[0]); err != nil {
				return err
			}
			if colorErr != nil {
				return fmt.Errorf("some columns were left uncolored: %w", colorErr)
			}
			return nil
		},
	}
	flags.register(cmd, cfg)
	cmd.Flags().StringVarP(&columns, "column", "c", "", "Comma separated columns to colorize")
	cmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	cmd.Flags().StringVarP(&output, "output", "o", "term", "Output format: term, svg, json")
	cmd.Flags().StringVar(&outFile, "out", "", "Write output to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "SVG title (default: file name)")
	cmd.Flags().StringVar(&format, "format", "number", "Cell display format: number, percent, short")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}

func render(view *table.View, grid table.Grid, output, outFile, title, source string) error {
	output = strings.ToLower(output)
	switch output {
	case "term", "json", "svg":
	default:
		return fmt.Errorf("unknown output %q (term, svg, json)", output)
	}

	w := os.Stdout
	if outFile != "" {
		// #nosec G304 -- output path is supplied by the operator
		f, err := os.Create(filepath.Clean(outFile))
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	switch output {
	case "term":
		return term.Write(w, view, grid)
	case "json":
		return writeJSON(w, styledCells(view, grid))
	}

	if title == "" {
		title = filepath.Base(source)
	}
	out, err := svg.New(view, grid, title).Generate()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	if err == nil {
		slog.Debug("Wrote SVG", "bytes", len(out), "file", outFile)
	}
	return err
}
