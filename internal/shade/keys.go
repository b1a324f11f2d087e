// Package shade derives tonal swatches (shade keys 50-900) from a single
// primary colour.
//
// Three interchangeable algorithms are provided, selected by BlendMode:
// a white/black range ramp, alpha compositing over white/black backdrops,
// and an opacity ramp. All of them are pure functions over colour values.
package shade

import "strconv"

// ShadeKey identifies a shade within a tonal scale (50, 100, ... 900).
// Keys are identifiers, not magnitudes.
type ShadeKey int

// Shade keys.
const (
	Shade50  ShadeKey = 50
	Shade100 ShadeKey = 100
	Shade200 ShadeKey = 200
	Shade300 ShadeKey = 300
	Shade400 ShadeKey = 400
	Shade500 ShadeKey = 500
	Shade600 ShadeKey = 600
	Shade700 ShadeKey = 700
	Shade800 ShadeKey = 800
	Shade900 ShadeKey = 900
)

const (
	// StandardShadeCount is the number of keys in the standard scale.
	StandardShadeCount = 10
	// AccentShadeCount is the number of keys in the accent scale.
	AccentShadeCount = 5
)

// StandardShadeKeys is the 10-key standard scale in ascending order.
var StandardShadeKeys = [StandardShadeCount]ShadeKey{
	Shade50, Shade100, Shade200, Shade300, Shade400,
	Shade500, Shade600, Shade700, Shade800, Shade900,
}

// AccentShadeKeys is the 5-key accent scale in ascending order.
// No generator produces it directly; use Swatch.Subset on a standard swatch.
var AccentShadeKeys = [AccentShadeCount]ShadeKey{
	Shade50, Shade100, Shade200, Shade400, Shade700,
}

// String returns the key as a decimal number.
func (k ShadeKey) String() string {
	return strconv.Itoa(int(k))
}

// IsStandard reports whether k is one of StandardShadeKeys.
func (k ShadeKey) IsStandard() bool {
	for _, s := range StandardShadeKeys {
		if s == k {
			return true
		}
	}
	return false
}

// IsAccent reports whether k is one of AccentShadeKeys.
func (k ShadeKey) IsAccent() bool {
	for _, a := range AccentShadeKeys {
		if a == k {
			return true
		}
	}
	return false
}
