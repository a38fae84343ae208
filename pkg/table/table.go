// Package table reads tabular bed counts and colorizes selected columns.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyTable = errors.New("table is empty")

// Table is a header row plus data rows. Rows may be shorter than the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the trimmed value at row, col or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Column returns the index of the named column, matched case-insensitively.
func (t *Table) Column(name string) (int, error) {
	want := normalizeHeader(name)
	for i, h := range t.Header {
		if normalizeHeader(h) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found", name)
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

// ReadFile loads a CSV or XLSX file, chosen by extension. sheet is only used
// for XLSX; empty means the first sheet.
func ReadFile(path, sheet string) (*Table, error) {
	// #nosec G304 -- path is supplied by the operator on the command line
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(bytes.NewReader(data), sheet)
	default:
		return ReadCSV(bytes.NewReader(data))
	}
}

// ReadCSV reads a CSV stream whose first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSX reads a workbook sheet whose first row is the header.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromRecords(rows)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}
