package svg

import "github.com/icubam/bedmap-colorize/pkg/table"

type Heatmap struct {
	view  *table.View
	grid  table.Grid
	title string

	colWidths []int
	dims      heatmapDimensions
}

type svgLabel struct {
	X, Y int
	Text string
}

type svgLine struct {
	X1, Y1, X2, Y2 int
}

type svgCell struct {
	X, Y, Width, Height int
	Fill, TextColor     string
	Text                string
	TextX, TextY        int
}

type svgSwatch struct {
	X, Y  int
	Fill  string
	Label string
}

type svgData struct {
	Width, Height, CenterX int
	Title, Subtitle        string
	ColLabels              []svgLabel
	HLines                 []svgLine
	Cells                  []svgCell
	Legend                 []svgSwatch
}

type heatmapDimensions struct {
	width       int
	height      int
	paddingLeft int
}
