package svg

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"text/template"
	"unicode/utf8"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
	"github.com/icubam/bedmap-colorize/pkg/table"
)

const (
	rowHeight     = 28
	minColWidth   = 60
	charWidth     = 8
	cellPadding   = 16
	paddingTop    = 90
	paddingLeft   = 20
	paddingBottom = 60
	swatchGap     = 90
)

// New prepares an SVG rendering of a colorized table view.
func New(v *table.View, grid table.Grid, title string) *Heatmap {
	h := &Heatmap{
		view:  v,
		grid:  grid,
		title: title,
	}
	h.colWidths = h.calculateColumnWidths()
	h.dims = h.calculateDimensions()
	return h
}

func (h *Heatmap) calculateColumnWidths() []int {
	widths := make([]int, len(h.view.Table.Header))
	for col, name := range h.view.Table.Header {
		// Estimate text width (~8px/char at font-size 13)
		w := utf8.RuneCountInString(name)
		for row := range h.view.Table.Rows {
			if n := utf8.RuneCountInString(h.view.Display(row, col)); n > w {
				w = n
			}
		}
		widths[col] = w*charWidth + cellPadding
		if widths[col] < minColWidth {
			widths[col] = minColWidth
		}
	}
	return widths
}

func (h *Heatmap) calculateDimensions() heatmapDimensions {
	var dims heatmapDimensions

	tableW := 0
	for _, w := range h.colWidths {
		tableW += w
	}

	// Title: font-size 20, bold (~12px/char)
	titleW := utf8.RuneCountInString(h.title)*12 + 40
	legendW := 3*swatchGap + 40

	dims.paddingLeft = paddingLeft
	dims.width = paddingLeft*2 + tableW
	for _, reqW := range []int{titleW, legendW} {
		if reqW > dims.width {
			dims.paddingLeft += (reqW - dims.width) / 2
			dims.width = reqW
		}
	}

	dims.height = paddingTop + (len(h.view.Table.Rows)+1)*rowHeight + paddingBottom
	return dims
}

func (h *Heatmap) subtitleText() string {
	o := h.view.Options
	theme := o.Theme
	if theme == "" {
		theme = colorize.DefaultTheme
	}
	rows := "rows"
	if len(h.view.Table.Rows) == 1 {
		rows = "row"
	}
	return fmt.Sprintf("%d %s | theme: %s", len(h.view.Table.Rows), rows, theme)
}

func (h *Heatmap) legend() []svgSwatch {
	o := h.view.Options
	themes := o.Themes
	if themes == nil {
		themes = colorize.BuiltinThemes()
	}
	name := o.Theme
	if name == "" {
		name = colorize.DefaultTheme
	}
	t, ok := themes[name]
	if !ok {
		return nil
	}

	y := h.dims.height - paddingBottom + 20
	x := h.dims.width/2 - (3*swatchGap)/2
	var out []svgSwatch
	for i, s := range []struct{ fill, label string }{
		{t.Min, "low"},
		{t.Mid, "center"},
		{t.Max, "high"},
	} {
		out = append(out, svgSwatch{X: x + i*swatchGap, Y: y, Fill: swatchFill(s.fill), Label: s.label})
	}
	return out
}

// Generate renders the SVG document.
func (h *Heatmap) Generate() (string, error) {
	if len(h.view.Table.Header) == 0 {
		return "", fmt.Errorf("no table data available")
	}

	data := svgData{
		Width:    h.dims.width,
		Height:   h.dims.height,
		CenterX:  h.dims.width / 2,
		Title:    html.EscapeString(h.title),
		Subtitle: html.EscapeString(h.subtitleText()),
		Legend:   h.legend(),
	}

	tableW := 0
	x := h.dims.paddingLeft
	for col, name := range h.view.Table.Header {
		w := h.colWidths[col]
		data.ColLabels = append(data.ColLabels, svgLabel{
			X:    x + w/2,
			Y:    paddingTop + rowHeight/2,
			Text: html.EscapeString(name),
		})
		x += w
		tableW += w
	}

	headerLineY := paddingTop + rowHeight
	data.HLines = append(data.HLines, svgLine{
		X1: h.dims.paddingLeft,
		Y1: headerLineY,
		X2: h.dims.paddingLeft + tableW,
		Y2: headerLineY,
	})

	for row := range h.view.Table.Rows {
		y := paddingTop + (row+1)*rowHeight
		x := h.dims.paddingLeft
		for col := range h.view.Table.Header {
			w := h.colWidths[col]
			fill, textColor := cellColors(h.grid.At(row, col), row)
			data.Cells = append(data.Cells, svgCell{
				X:         x,
				Y:         y,
				Width:     w,
				Height:    rowHeight,
				Fill:      fill,
				TextColor: textColor,
				Text:      html.EscapeString(h.view.Display(row, col)),
				TextX:     x + w/2,
				TextY:     y + rowHeight/2,
			})
			x += w
		}
	}

	tmpl, err := template.New("svg").Parse(svgTemplateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse SVG template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute SVG template: %w", err)
	}

	return buf.String(), nil
}

//go:embed templates/table.svg.tmpl
var svgTemplateStr string
