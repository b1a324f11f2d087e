package shade

import "github.com/jmylchreest/tonal/internal/colour"

// Generator defaults.
const (
	DefaultRangeMin = -100
	DefaultRangeMax = 100
	DefaultStrength = 1.0
	DefaultAdd      = 0
)

// GenerateRangeSwatch ramps primary from white toward black across the
// standard keys. Shade i (0 = key 50) is mixed by truncate(rangeMax - i*step)
// with step = (rangeMax - rangeMin) / 10, so key 50 gets rangeMax and the
// delta shrinks by one step per key.
//
// A symmetric range (rangeMin == -rangeMax) puts delta 0 on key 500, which
// reproduces primary. Asymmetric and reversed ranges are allowed; key 500
// then no longer equals primary. Any int bounds are accepted; deltas beyond
// the channel scale saturate at white or black.
func GenerateRangeSwatch(primary colour.Colour, rangeMin, rangeMax int) Swatch {
	lo, hi := float64(rangeMin), float64(rangeMax)
	return newSwatch(StandardShadeKeys[:], func(i int, _ ShadeKey) colour.Colour {
		// hi - i*(hi-lo)/10, weighted so that a symmetric range is exactly 0
		// at key 500 even when the bounds are near the int limits.
		d := (hi*float64(StandardShadeCount-i) + lo*float64(i)) / StandardShadeCount
		return colour.MixTowardWhiteOrBlack(primary, truncateDelta(d))
	})
}

// truncateDelta truncates d toward zero after clamping it to the channel
// scale, where MixTowardWhiteOrBlack already saturates.
func truncateDelta(d float64) int {
	return int(max(-maxDelta, min(d, maxDelta)))
}

const maxDelta = 255

// backdropStop is one row of the Shade generator table.
type backdropStop struct {
	backdrop colour.Colour
	opacity  float64
	identity bool
}

var shadeStops = [StandardShadeCount]backdropStop{
	{backdrop: colour.White, opacity: 0.25},
	{backdrop: colour.White, opacity: 0.45},
	{backdrop: colour.White, opacity: 0.65},
	{backdrop: colour.White, opacity: 0.8},
	{backdrop: colour.White, opacity: 0.9},
	{identity: true},
	{backdrop: colour.Black, opacity: 0.75},
	{backdrop: colour.Black, opacity: 0.55},
	{backdrop: colour.Black, opacity: 0.4},
	{backdrop: colour.Black, opacity: 0.25},
}

// GenerateShadeSwatch composites primary over white for keys 50-400 and over
// black for keys 600-900, at a per-key opacity scaled by strength and clamped
// to [0, 1]. Key 500 is always primary itself, whatever the strength.
//
// strength 0 turns every other key into its backdrop; strength above 1
// saturates each opacity at 1.
func GenerateShadeSwatch(primary colour.Colour, strength float64) Swatch {
	return newSwatch(StandardShadeKeys[:], func(i int, _ ShadeKey) colour.Colour {
		stop := shadeStops[i]
		if stop.identity {
			return primary
		}
		fg := colour.WithOpacity(primary, stop.opacity*strength)
		return colour.AlphaComposite(fg, stop.backdrop)
	})
}

// GenerateOpacitySwatch shifts primary by add (see colour.MixTowardWhiteOrBlack)
// and then sets the opacity of shade i to (i+1)/10: 0.1 at key 50 up to 1.0
// at key 900.
//
// Key 500 always has opacity 0.6, so it equals primary only when primary
// already had that opacity and add is 0.
func GenerateOpacitySwatch(primary colour.Colour, add int) Swatch {
	shifted := colour.MixTowardWhiteOrBlack(primary, add)
	return newSwatch(StandardShadeKeys[:], func(i int, _ ShadeKey) colour.Colour {
		return colour.WithOpacity(shifted, float64(i+1)/10)
	})
}
