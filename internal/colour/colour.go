// Package colour provides the colour value type and the channel-space
// primitives used to derive tonal shades from it.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidChannelValue is returned when a chromatic channel or the opacity
// is given outside its valid domain. Constructors clamp instead; only textual
// input is rejected with this error.
var ErrInvalidChannelValue = errors.New("invalid channel value")

// Colour is an immutable 4-channel colour: three chromatic channels in
// [0, 255] and an opacity in [0, 1].
//
// Two colours are equal (==) iff all four channels are equal.
type Colour struct {
	R, G, B uint8
	A       float64
}

var (
	// White is opaque white.
	White = Colour{R: 255, G: 255, B: 255, A: 1}
	// Black is opaque black.
	Black = Colour{R: 0, G: 0, B: 0, A: 1}
)

// NewColour builds a colour from integer channels and an opacity.
// Out-of-range values are clamped; a NaN opacity becomes 0.
func NewColour(r, g, b int, a float64) Colour {
	return Colour{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
		A: clampUnit(a),
	}
}

// Opaque builds a fully opaque colour.
func Opaque(r, g, b uint8) Colour {
	return Colour{R: r, G: g, B: b, A: 1}
}

// FromColor converts any image/color value into a Colour.
func FromColor(c color.Color) Colour {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Colour{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255.0}
}

// RGBA returns the colour as a non-premultiplied image/color value.
func (c Colour) RGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// Hex returns "#rrggbb", or "#rrggbbaa" when the colour is not fully opaque.
func (c Colour) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.RGBA().A)
}

// RGBAString returns the colour in CSS rgba() notation.
func (c Colour) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatOpacity(c.A))
}

// MarshalText encodes the colour as its Hex form, so it serialises as a
// plain string in JSON, YAML and TOML.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts any form understood by ParseColour.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return c.Hex()
}

// Luminance calculates the relative luminance of the chromatic channels
// according to WCAG 2.0. Opacity is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (c Colour) Luminance() float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// roundChannel rounds a real-valued channel to the nearest integer and clamps it.
func roundChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return clampChannel(int(math.Round(v)))
}

// formatOpacity prints an opacity with at most three decimals and no trailing zeros.
func formatOpacity(a float64) string {
	s := fmt.Sprintf("%.3f", a)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
