package svg

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
	"github.com/icubam/bedmap-colorize/pkg/table"
)

const bedsCSV = `icu_name,n_covid_occ,n_covid_free
Paris <Nord>,10,3
Lyon & Sud,20,5
Marseille,30,7
`

func newTestView(t *testing.T) (*table.View, table.Grid) {
	t.Helper()
	tbl, err := table.ReadCSV(strings.NewReader(bedsCSV))
	require.NoError(t, err)

	v := &table.View{
		Table:   tbl,
		Columns: []string{"n_covid_occ", "n_covid_free"},
		Options: colorize.DefaultOptions(),
	}
	grid, err := v.Colorize()
	require.NoError(t, err)
	return v, grid
}

func TestGenerate(t *testing.T) {
	v, grid := newTestView(t)

	out, err := New(v, grid, "ICU beds").Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "ICU beds")
	assert.Contains(t, out, "3 rows | theme: default")
	assert.Contains(t, out, `fill="#E48080"`)
	assert.Contains(t, out, `fill="#88D2A5"`)
	assert.Contains(t, out, "Paris &lt;Nord&gt;")
	assert.Contains(t, out, "Lyon &amp; Sud")

	// the document must be well-formed XML
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
}

func TestGenerate_Legend(t *testing.T) {
	v, grid := newTestView(t)
	v.Options.Theme = "blue-white-red"

	h := New(v, grid, "")
	legend := h.legend()
	require.Len(t, legend, 3)
	assert.Equal(t, "#312F9D", legend[0].Fill)
	assert.Equal(t, "#C80000", legend[2].Fill)

	v.Options.Theme = "unknown"
	assert.Nil(t, h.legend())
}

func TestGenerate_Empty(t *testing.T) {
	v := &table.View{Table: &table.Table{}}
	_, err := New(v, nil, "empty").Generate()
	assert.Error(t, err)
}

func TestCalculateDimensions(t *testing.T) {
	v, grid := newTestView(t)

	h := New(v, grid, "x")
	require.Len(t, h.colWidths, 3)
	for _, w := range h.colWidths {
		assert.GreaterOrEqual(t, w, minColWidth)
	}
	assert.Equal(t, paddingTop+4*rowHeight+paddingBottom, h.dims.height)

	long := New(v, grid, strings.Repeat("W", 80))
	assert.Equal(t, 80*12+40, long.dims.width)
	assert.Greater(t, long.dims.paddingLeft, paddingLeft)
}

func TestCellColors(t *testing.T) {
	tests := []struct {
		name     string
		style    *table.Style
		row      int
		wantFill string
		wantText string
	}{
		{"unstyled even row", nil, 0, unstyledFill, defaultText},
		{"unstyled odd row", nil, 1, stripeFill, defaultText},
		{"readable style", &table.Style{Background: "#000000", Text: "white"}, 1, "#000000", "white"},
		{"dark background without text", &table.Style{Background: "#000000"}, 0, "#000000", colorize.TextWhite},
		{"light background without text", &table.Style{Background: "#FFFFFF"}, 0, "#FFFFFF", colorize.TextBlack},
		{"invalid background without text", &table.Style{Background: "teal"}, 0, "teal", defaultText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fill, text := cellColors(tt.style, tt.row)
			assert.Equal(t, tt.wantFill, fill)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestSwatchFill(t *testing.T) {
	assert.Equal(t, "#C80000", swatchFill("C80000"))
	assert.Equal(t, "#C80000", swatchFill(" #C80000"))
}

func TestGenerateFile(t *testing.T) {
	t.Skip("Skipping svg file generation.")

	v, grid := newTestView(t)
	out, err := New(v, grid, "ICU beds").Generate()
	require.NoError(t, err)

	resultDir := "testresult"
	require.NoError(t, os.MkdirAll(resultDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(resultDir, "beds.svg"), []byte(out), 0644))
}
