package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColour parses a colour string. Accepted forms:
//
//	#rgb, #rrggbb, #rrggbbaa   (leading # optional)
//	0xAARRGGBB                 (alpha first, as written in Flutter sources)
//	rgb(r, g, b)
//	rgba(r, g, b, a)           (a in [0, 1])
//
// Channels outside their domain are rejected with ErrInvalidChannelValue.
func ParseColour(s string) (Colour, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return Colour{}, fmt.Errorf("colour cannot be empty")
	}

	switch {
	case strings.HasPrefix(str, "rgba(") || strings.HasPrefix(str, "rgb("):
		return parseFunctional(str)
	case strings.HasPrefix(str, "0x"):
		return parseARGB(str[2:])
	}

	hex := strings.TrimPrefix(str, "#")
	switch len(hex) {
	case 3, 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return Opaque(r, g, b), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return Colour{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: float64(uint8(v)) / 255.0,
		}, nil
	default:
		return Colour{}, fmt.Errorf("invalid hex colour %q: expected 3, 6 or 8 hex digits", s)
	}
}

// MustParseColour is like ParseColour but panics on error.
func MustParseColour(s string) Colour {
	c, err := ParseColour(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseARGB(hex string) (Colour, error) {
	if len(hex) != 8 {
		return Colour{}, fmt.Errorf("invalid 0x colour %q: expected 8 hex digits (AARRGGBB)", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("invalid 0x colour %q: %w", hex, err)
	}
	return Colour{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: float64(uint8(v>>24)) / 255.0,
	}, nil
}

func parseFunctional(str string) (Colour, error) {
	open := strings.IndexByte(str, '(')
	if !strings.HasSuffix(str, ")") {
		return Colour{}, fmt.Errorf("invalid colour %q: missing closing parenthesis", str)
	}
	name := str[:open]
	parts := strings.Split(str[open+1:len(str)-1], ",")

	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return Colour{}, fmt.Errorf("invalid colour %q: %s() takes %d components, got %d", str, name, want, len(parts))
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Colour{}, fmt.Errorf("invalid colour %q: %w", str, err)
		}
		if v < 0 || v > 255 {
			return Colour{}, fmt.Errorf("channel %d of %q is %d, want 0-255: %w", i, str, v, ErrInvalidChannelValue)
		}
		channels[i] = v
	}

	a := 1.0
	if want == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid colour %q: %w", str, err)
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			return Colour{}, fmt.Errorf("opacity of %q is %g, want 0-1: %w", str, v, ErrInvalidChannelValue)
		}
		a = v
	}

	return NewColour(channels[0], channels[1], channels[2], a), nil
}

// HSL returns hue (0-360), saturation (0-1) and lightness (0-1) of the
// chromatic channels.
func (c Colour) HSL() (h, s, l float64) {
	return toColorful(c).Hsl()
}

// HSLString returns the colour in CSS hsl() notation.
func (c Colour) HSLString() string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}

func toColorful(c Colour) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
