package colour

import "math"

// MixTowardWhiteOrBlack shifts the chromatic channels toward white when
// delta > 0 and toward black when delta < 0. Each channel moves by
// |delta|/255 of its remaining distance to the target, so delta is on the
// same scale as the channels and |delta| >= 255 reaches the target outright.
// Opacity is unchanged and delta == 0 is the identity.
func MixTowardWhiteOrBlack(c Colour, delta int) Colour {
	if delta == 0 {
		return c
	}

	target := 255.0
	if delta < 0 {
		target = 0
	}
	fraction := math.Min(math.Abs(float64(delta)), 255) / 255.0

	mix := func(v uint8) uint8 {
		f := float64(v)
		return roundChannel(f + (target-f)*fraction)
	}

	return Colour{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// AlphaComposite paints fg over an opaque bg using the "over" operator.
// Only fg's opacity takes part; the result is fully opaque.
func AlphaComposite(fg, bg Colour) Colour {
	a := fg.A
	over := func(f, b uint8) uint8 {
		return roundChannel(float64(f)*a + float64(b)*(1-a))
	}
	return Colour{
		R: over(fg.R, bg.R),
		G: over(fg.G, bg.G),
		B: over(fg.B, bg.B),
		A: 1,
	}
}

// WithOpacity returns c with its opacity replaced by o, clamped to [0, 1].
func WithOpacity(c Colour, o float64) Colour {
	c.A = clampUnit(o)
	return c
}
