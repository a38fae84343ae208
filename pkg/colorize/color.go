package colorize

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type rgb struct {
	r, g, b uint8
}

func (c rgb) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// luma is the YIQ brightness of the color, 0..255.
func (c rgb) luma() float64 {
	return (float64(c.r)*299 + float64(c.g)*587 + float64(c.b)*114) / 1000
}

// textColor picks the foreground that stays readable on c.
func (c rgb) textColor() string {
	if c.luma() >= 128 {
		return TextBlack
	}
	return TextWhite
}

// parseHex accepts "#RRGGBB" or "RRGGBB".
func parseHex(s string) (rgb, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return rgb{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return rgb{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return rgb{r, g, b}, nil
}

// blend moves from c2 (ratio 0) to c1 (ratio 1), rounding every channel up.
func blend(c1, c2 rgb, ratio float64) rgb {
	mix := func(a, b uint8) uint8 {
		v := math.Ceil(float64(a)*ratio + float64(b)*(1-ratio))
		switch {
		case math.IsNaN(v):
			return b
		case v < 0:
			return 0
		case v > 255:
			return 255
		}
		return uint8(v)
	}
	return rgb{
		r: mix(c1.r, c2.r),
		g: mix(c1.g, c2.g),
		b: mix(c1.b, c2.b),
	}
}

type palette struct {
	min, mid, max rgb
}

func newPalette(t Theme) (palette, error) {
	var p palette
	var err error
	if p.min, err = parseHex(t.Min); err != nil {
		return p, fmt.Errorf("color_min: %w", err)
	}
	if p.mid, err = parseHex(t.Mid); err != nil {
		return p, fmt.Errorf("color_mid: %w", err)
	}
	if p.max, err = parseHex(t.Max); err != nil {
		return p, fmt.Errorf("color_max: %w", err)
	}
	return p, nil
}

// Validate reports whether every color of the theme parses.
func (t Theme) Validate() error {
	_, err := newPalette(t)
	return err
}

// TextColorFor returns the readable text color for a hex background.
func TextColorFor(background string) (string, error) {
	c, err := parseHex(background)
	if err != nil {
		return "", err
	}
	return c.textColor(), nil
}
