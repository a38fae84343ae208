// Package colorize computes heat-map cell colors for a set of numeric values
// against a three-stop theme.
package colorize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseText reads the cell text as a float. Trailing non-numeric text is
// ignored, so "12 beds" is 12.
func ParseText(c Cell) (float64, error) {
	s := strings.TrimSpace(c.Text)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("not a number: %q", c.Text)
	}
	return strconv.ParseFloat(m, 64)
}

type parsed struct {
	id    string
	value float64
}

type stats struct {
	min, max, center float64
}

// Colorize returns one ColorResult per numeric cell, in input order. Cells
// that do not parse to a finite number are skipped.
func Colorize(cells []Cell, opts Options) ([]ColorResult, error) {
	p, err := opts.palette()
	if err != nil {
		return nil, err
	}

	parse := opts.Parse
	if parse == nil {
		parse = ParseText
	}

	values := make([]parsed, 0, len(cells))
	for _, c := range cells {
		v, err := parse(c)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, parsed{id: c.ID, value: v})
	}
	if len(values) == 0 {
		return []ColorResult{}, nil
	}

	st := summarize(values, opts)
	adj := st.center - st.min

	results := make([]ColorResult, 0, len(values))
	for _, pv := range values {
		c := p.colorFor(pv.value, st.center, adj, opts)
		res := ColorResult{ID: pv.id, Background: c.String()}
		if opts.Readable {
			res.Text = c.textColor()
		}
		results = append(results, res)
	}
	return results, nil
}

func (o Options) palette() (palette, error) {
	themes := o.Themes
	if themes == nil {
		themes = BuiltinThemes()
	}
	name := o.Theme
	if name == "" {
		name = DefaultTheme
	}
	t, ok := themes[name]
	if !ok {
		return palette{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	p, err := newPalette(t)
	if err != nil {
		return palette{}, fmt.Errorf("theme %q: %w", name, err)
	}
	return p, nil
}

func summarize(values []parsed, opts Options) stats {
	var st stats
	if !opts.ZeroAnchored {
		st.min, st.max = values[0].value, values[0].value
	}
	var sum float64
	for _, pv := range values {
		st.min = math.Min(st.min, pv.value)
		st.max = math.Max(st.max, pv.value)
		sum += pv.value
	}
	if opts.Center != nil {
		st.center = *opts.Center
	} else {
		st.center = sum / float64(len(values))
	}
	return st
}

func (p palette) colorFor(v, center, adj float64, opts Options) rgb {
	ratio := (center - v) / adj
	// 0/0 at the center lands on color_mid. With adj == 0 a cell above the
	// center gets an infinite ratio, which the max branch caps at 1.
	if v == center || math.IsNaN(ratio) {
		ratio = 0
	}

	bound := v
	if opts.Percent {
		bound = ratio
	}
	switch {
	case opts.Min != nil && bound <= *opts.Min:
		return p.min
	case opts.Max != nil && bound >= *opts.Max:
		return p.max
	case v < center:
		return blend(p.min, p.mid, math.Abs(ratio))
	default:
		return blend(p.max, p.mid, math.Min(math.Abs(ratio), 1))
	}
}
