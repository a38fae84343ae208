package svg

import (
	"strings"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
	"github.com/icubam/bedmap-colorize/pkg/table"
)

const (
	unstyledFill = "#FFFFFF"
	stripeFill   = "#F9F9F9"
	defaultText  = "black"
)

// cellColors maps a computed style onto SVG fill and text colors. Rows
// without a style get the zebra striping of the dashboard table. Styles
// colored without readable text get one derived from their background.
func cellColors(s *table.Style, row int) (string, string) {
	if s == nil {
		if row%2 == 1 {
			return stripeFill, defaultText
		}
		return unstyledFill, defaultText
	}
	if s.Text != "" {
		return s.Background, s.Text
	}
	text, err := colorize.TextColorFor(s.Background)
	if err != nil {
		return s.Background, defaultText
	}
	return s.Background, text
}

// swatchFill accepts theme colors written without the leading '#'.
func swatchFill(hex string) string {
	hex = strings.TrimSpace(hex)
	if strings.HasPrefix(hex, "#") {
		return hex
	}
	return "#" + hex
}
