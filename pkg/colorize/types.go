package colorize

import "errors"

var (
	// ErrUnknownTheme is returned when Options.Theme is not in Options.Themes.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidColor is returned when a theme color is not a 24-bit hex color.
	ErrInvalidColor = errors.New("invalid theme color")
)

const (
	TextBlack = "black"
	TextWhite = "white"
)

// Theme is a named triple of interpolation endpoints.
type Theme struct {
	Min string `json:"color_min" yaml:"color_min"`
	Mid string `json:"color_mid" yaml:"color_mid"`
	Max string `json:"color_max" yaml:"color_max"`
}

// Cell is one raw observation. ID is opaque and only routed back in the result.
type Cell struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ParseFunc extracts the numeric value of a cell.
type ParseFunc func(Cell) (float64, error)

// Options controls a single Colorize call.
type Options struct {
	Themes map[string]Theme
	Theme  string

	// Min and Max force solid color_min / color_max. Nil means unset.
	Min *float64
	Max *float64
	// Center overrides the mean of the value set.
	Center *float64

	// Percent compares Min and Max against the ratio instead of the value.
	Percent  bool
	Readable bool
	// ZeroAnchored starts the min/max accumulators at 0, so a set of
	// positive counts always has a minimum of 0.
	ZeroAnchored bool

	Parse ParseFunc
}

// ColorResult is the style computed for one numeric cell.
type ColorResult struct {
	ID         string `json:"id"`
	Background string `json:"backgroundColor"`
	Text       string `json:"textColor,omitempty"`
}

// DefaultOptions returns the options the dashboard uses when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Themes:       BuiltinThemes(),
		Theme:        DefaultTheme,
		Readable:     true,
		ZeroAnchored: true,
		Parse:        ParseText,
	}
}

// Float is a helper for setting the optional numeric fields of Options.
func Float(v float64) *float64 {
	return &v
}
