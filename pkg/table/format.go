package table

import (
	"strconv"
	"strings"
)

// Formatter turns a raw cell value into display text.
type Formatter func(raw string) string

// Placeholder is shown for empty cells.
const Placeholder = "-"

// FormatNumber prints whole numbers without a fraction and trims trailing
// zeros from the rest. Non-numeric text is returned unchanged.
func FormatNumber(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Placeholder
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatPercent renders a 0..1 ratio as a percentage with one decimal.
func FormatPercent(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Placeholder
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f*100, 'f', 1, 64) + "%"
}

// Truncate returns a formatter that shortens long text to max runes.
func Truncate(max int) Formatter {
	return func(raw string) string {
		s := FormatNumber(raw)
		r := []rune(s)
		if max <= 0 || len(r) <= max {
			return s
		}
		if max == 1 {
			return "…"
		}
		return string(r[:max-1]) + "…"
	}
}
