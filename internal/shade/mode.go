package shade

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ErrUnknownBlendMode is returned when parsing an unrecognised blend mode name.
var ErrUnknownBlendMode = errors.New("unknown blend mode")

// BlendMode selects the swatch generation algorithm.
// The zero value is BlendOpacity, the default.
type BlendMode int

const (
	// BlendOpacity shifts the primary and ramps its opacity from 0.1 to 1.0.
	BlendOpacity BlendMode = iota
	// BlendRange mixes the primary toward white or black over a delta range.
	BlendRange
	// BlendShade composites the primary over white or black backdrops.
	BlendShade
)

var blendModeNames = map[BlendMode]string{
	BlendOpacity: "opacity",
	BlendRange:   "range",
	BlendShade:   "shade",
}

// BlendModes returns every blend mode in display order.
func BlendModes() []BlendMode {
	return []BlendMode{BlendRange, BlendShade, BlendOpacity}
}

// String returns the lower-case name of the mode.
func (m BlendMode) String() string {
	if name, ok := blendModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// Description explains what the mode does and how it reads the factor.
func (m BlendMode) Description() string {
	switch m {
	case BlendRange:
		return "mix toward white (50) and black (900); factor is the total delta range, default 200"
	case BlendShade:
		return "composite over white (50-400) and black (600-900); factor scales opacity, default 1.0"
	case BlendOpacity:
		return "opacity ramp 0.1-1.0; factor shifts toward white (+) or black (-), default 0"
	default:
		return ""
	}
}

// ParseBlendMode parses a mode name, case-insensitively.
func ParseBlendMode(s string) (BlendMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range blendModeNames {
		if n == name {
			return mode, nil
		}
	}
	return BlendOpacity, fmt.Errorf("%w: %q (valid: range, shade, opacity)", ErrUnknownBlendMode, s)
}

// Set implements pflag.Value.
func (m *BlendMode) Set(s string) error {
	parsed, err := ParseBlendMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *BlendMode) Type() string {
	return "mode"
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

var _ pflag.Value = (*BlendMode)(nil)
