package shade

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyTables(t *testing.T) {
	assert.Len(t, StandardShadeKeys, StandardShadeCount)
	assert.Len(t, AccentShadeKeys, AccentShadeCount)
	assert.Equal(t, [StandardShadeCount]ShadeKey{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}, StandardShadeKeys)
	assert.Equal(t, [AccentShadeCount]ShadeKey{50, 100, 200, 400, 700}, AccentShadeKeys)

	assert.True(t, Shade300.IsStandard())
	assert.False(t, Shade300.IsAccent())
	assert.True(t, Shade700.IsAccent())
	assert.False(t, ShadeKey(250).IsStandard())
	assert.Equal(t, "500", Shade500.String())
}

func TestBuildTonalPalette(t *testing.T) {
	tests := []struct {
		name   string
		mode   BlendMode
		factor *float64
		want   Swatch
	}{
		{"range default", BlendRange, nil, GenerateRangeSwatch(primary, -100, 100)},
		{"range factor halves", BlendRange, Factor(50), GenerateRangeSwatch(primary, -25, 25)},
		{"range odd factor truncates", BlendRange, Factor(75.9), GenerateRangeSwatch(primary, -37, 37)},
		{"range negative factor", BlendRange, Factor(-40), GenerateRangeSwatch(primary, 20, -20)},
		{"shade default", BlendShade, nil, GenerateShadeSwatch(primary, 1.0)},
		{"shade strength", BlendShade, Factor(0.5), GenerateShadeSwatch(primary, 0.5)},
		{"opacity default", BlendOpacity, nil, GenerateOpacitySwatch(primary, 0)},
		{"opacity truncates add", BlendOpacity, Factor(-20.7), GenerateOpacitySwatch(primary, -20)},
		{"unknown mode falls back to opacity", BlendMode(42), Factor(30), GenerateOpacitySwatch(primary, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTonalPalette(primary, tt.mode, tt.factor)
			assert.Equal(t, primary, got.Primary)
			assert.True(t, tt.want.Equal(got.Swatch), "swatch mismatch:\n got %v\nwant %v", got.Swatch.Shades(), tt.want.Shades())
		})
	}
}

func TestBuildTonalPaletteHugeFactor(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		for _, f := range []float64{1e300, math.MaxFloat64, math.Inf(1), 1e19} {
			s := BuildTonalPalette(primary, BlendRange, Factor(f)).Swatch
			assert.Equal(t, primary, s.At(Shade500), "factor %g", f)
			assert.Equal(t, colour.White, s.At(Shade50), "factor %g", f)
			assert.Equal(t, colour.Black, s.At(Shade900), "factor %g", f)
		}

		// A huge negative factor reverses the ramp.
		s := BuildTonalPalette(primary, BlendRange, Factor(-1e300)).Swatch
		assert.Equal(t, colour.Black, s.At(Shade50))
		assert.Equal(t, primary, s.At(Shade500))
		assert.Equal(t, colour.White, s.At(Shade900))
	})

	t.Run("opacity", func(t *testing.T) {
		s := BuildTonalPalette(primary, BlendOpacity, Factor(1e19)).Swatch
		assert.Equal(t, colour.WithOpacity(colour.White, 0.6), s.At(Shade500))

		s = BuildTonalPalette(primary, BlendOpacity, Factor(-1e300)).Swatch
		assert.Equal(t, colour.WithOpacity(colour.Black, 0.6), s.At(Shade500))
	})

	t.Run("nan", func(t *testing.T) {
		assert.True(t, GenerateOpacitySwatch(primary, 0).Equal(BuildTonalPalette(primary, BlendOpacity, Factor(math.NaN())).Swatch))
		assert.True(t, GenerateRangeSwatch(primary, 0, 0).Equal(BuildTonalPalette(primary, BlendRange, Factor(math.NaN())).Swatch))
	})
}

func TestBuildTonalPaletteRangeDefault(t *testing.T) {
	got := BuildTonalPalette(primary, BlendRange, nil)
	want := TonalPalette{Primary: primary, Swatch: GenerateRangeSwatch(primary, -100, 100)}
	assert.Equal(t, want, got)
	assert.Equal(t, primary, got.Shade(Shade500))
}

func TestSwatchAccessors(t *testing.T) {
	s := GenerateShadeSwatch(primary, 1)

	c, ok := s.Get(Shade500)
	assert.True(t, ok)
	assert.Equal(t, primary, c)

	_, ok = s.Get(ShadeKey(550))
	assert.False(t, ok)
	assert.Equal(t, colour.Colour{}, s.At(ShadeKey(550)))

	var keys []ShadeKey
	for k := range s.All() {
		keys = append(keys, k)
		if k == Shade200 {
			break
		}
	}
	assert.Equal(t, []ShadeKey{Shade50, Shade100, Shade200}, keys)

	shades := s.Shades()
	shades[0].Colour = colour.Black
	assert.NotEqual(t, colour.Black, s.At(Shade50), "Shades must return a copy")
}

func TestSwatchSubset(t *testing.T) {
	s := GenerateRangeSwatch(primary, -100, 100)
	accent := s.Subset(AccentShadeKeys[:])

	require.Equal(t, AccentShadeCount, accent.Len())
	assert.Equal(t, AccentShadeKeys[:], accent.Keys())
	for k, c := range accent.All() {
		assert.Equal(t, s.At(k), c)
	}

	partial := accent.Subset([]ShadeKey{Shade50, Shade900})
	assert.Equal(t, []ShadeKey{Shade50}, partial.Keys())
}

func TestSwatchMarshalJSON(t *testing.T) {
	s := GenerateOpacitySwatch(colour.Black, 0)
	data, err := json.Marshal(s)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, `{"50":"#0000001a","100":"#00000033",`), out)
	assert.True(t, strings.HasSuffix(out, `"900":"#000000"}`), out)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, StandardShadeCount)

	empty, err := json.Marshal(Swatch{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		in   string
		want BlendMode
	}{
		{"range", BlendRange},
		{"Shade", BlendShade},
		{" OPACITY ", BlendOpacity},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBlendMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseBlendMode("tint")
	assert.True(t, errors.Is(err, ErrUnknownBlendMode))
}

func TestBlendModeFlag(t *testing.T) {
	var mode BlendMode
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&mode, "mode", "blend mode")

	assert.Equal(t, BlendOpacity, mode)
	require.NoError(t, fs.Parse([]string{"--mode", "shade"}))
	assert.Equal(t, BlendShade, mode)
	assert.Error(t, fs.Parse([]string{"--mode", "bogus"}))
}

func TestBlendModeText(t *testing.T) {
	for _, m := range BlendModes() {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var back BlendMode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
		assert.NotEmpty(t, m.Description())
	}
	assert.Equal(t, "BlendMode(9)", BlendMode(9).String())
}
