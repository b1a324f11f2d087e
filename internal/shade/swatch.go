package shade

import (
	"bytes"
	"encoding/json"
	"iter"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Shade is one entry of a Swatch.
type Shade struct {
	Key    ShadeKey
	Colour colour.Colour
}

// Swatch maps shade keys to colours in fixed ascending key order.
// Its key set is always one of the constant key tables, or a caller-chosen
// subset of one. The zero Swatch is empty.
type Swatch struct {
	shades []Shade
}

// newSwatch builds a swatch over keys, computing each colour with fn.
func newSwatch(keys []ShadeKey, fn func(i int, key ShadeKey) colour.Colour) Swatch {
	shades := make([]Shade, len(keys))
	for i, k := range keys {
		shades[i] = Shade{Key: k, Colour: fn(i, k)}
	}
	return Swatch{shades: shades}
}

// Len returns the number of shades.
func (s Swatch) Len() int {
	return len(s.shades)
}

// Get returns the colour for key and whether the key is present.
func (s Swatch) Get(key ShadeKey) (colour.Colour, bool) {
	for _, sh := range s.shades {
		if sh.Key == key {
			return sh.Colour, true
		}
	}
	return colour.Colour{}, false
}

// At returns the colour for key, or the zero colour if it is absent.
func (s Swatch) At(key ShadeKey) colour.Colour {
	c, _ := s.Get(key)
	return c
}

// Keys returns the swatch keys in order.
func (s Swatch) Keys() []ShadeKey {
	keys := make([]ShadeKey, len(s.shades))
	for i, sh := range s.shades {
		keys[i] = sh.Key
	}
	return keys
}

// Shades returns a copy of the ordered entries.
func (s Swatch) Shades() []Shade {
	out := make([]Shade, len(s.shades))
	copy(out, s.shades)
	return out
}

// All iterates over the swatch in key order.
func (s Swatch) All() iter.Seq2[ShadeKey, colour.Colour] {
	return func(yield func(ShadeKey, colour.Colour) bool) {
		for _, sh := range s.shades {
			if !yield(sh.Key, sh.Colour) {
				return
			}
		}
	}
}

// Subset returns a swatch holding only the given keys, in the order given.
// Keys absent from s are skipped. Subset(AccentShadeKeys[:]) derives an
// accent swatch from a standard one.
func (s Swatch) Subset(keys []ShadeKey) Swatch {
	shades := make([]Shade, 0, len(keys))
	for _, k := range keys {
		if c, ok := s.Get(k); ok {
			shades = append(shades, Shade{Key: k, Colour: c})
		}
	}
	return Swatch{shades: shades}
}

// Equal reports whether both swatches hold the same keys in the same order
// with equal colours.
func (s Swatch) Equal(other Swatch) bool {
	if len(s.shades) != len(other.shades) {
		return false
	}
	for i := range s.shades {
		if s.shades[i] != other.shades[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the swatch as an object keyed by shade, preserving key
// order: {"50":"#…","100":"#…",…}.
func (s Swatch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sh := range s.shades {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sh.Key.String())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(sh.Colour)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
