package shade

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// TonalPalette is a primary colour together with the swatch derived from it.
type TonalPalette struct {
	Primary colour.Colour `json:"primary"`
	Swatch  Swatch        `json:"swatch"`
}

// Shade returns the palette colour for key, or the zero colour if absent.
func (p TonalPalette) Shade(key ShadeKey) colour.Colour {
	return p.Swatch.At(key)
}

// Factor returns a pointer to v, for passing an explicit factor to
// BuildTonalPalette.
func Factor(v float64) *float64 {
	return &v
}

// maxFactor bounds factors before they are truncated to int. Past it every
// derived delta other than the symmetric zero already saturates.
const maxFactor = 1 << 53

// truncateFactor clamps f to [-maxFactor, maxFactor] and truncates it toward
// zero. NaN truncates to 0.
func truncateFactor(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(max(-maxFactor, min(f, maxFactor)))
}

// BuildTonalPalette runs the generator selected by mode. factor is optional:
//
//   - BlendRange: the range is [-trunc(factor/2), trunc(factor/2)], default [-100, 100].
//   - BlendShade: factor is the strength, default 1.0.
//   - BlendOpacity and any unknown mode: add = trunc(factor), default 0.
//
// Factors too large for an int are clamped, so huge values saturate toward
// white or black instead of wrapping.
func BuildTonalPalette(primary colour.Colour, mode BlendMode, factor *float64) TonalPalette {
	var swatch Swatch

	switch mode {
	case BlendRange:
		rangeMin, rangeMax := DefaultRangeMin, DefaultRangeMax
		if factor != nil {
			half := truncateFactor(*factor / 2)
			rangeMin, rangeMax = -half, half
		}
		swatch = GenerateRangeSwatch(primary, rangeMin, rangeMax)
	case BlendShade:
		strength := DefaultStrength
		if factor != nil {
			strength = *factor
		}
		swatch = GenerateShadeSwatch(primary, strength)
	default:
		add := DefaultAdd
		if factor != nil {
			add = truncateFactor(*factor)
		}
		swatch = GenerateOpacitySwatch(primary, add)
	}

	return TonalPalette{Primary: primary, Swatch: swatch}
}
