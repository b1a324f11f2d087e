package output

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/shade"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var testPrimary = colour.Colour{R: 100, G: 150, B: 200, A: 1}

func testDocument(mode shade.BlendMode, factor *float64) Document {
	return Document{
		Name:    "Brand Blue",
		Mode:    mode,
		Factor:  factor,
		Palette: shade.BuildTonalPalette(testPrimary, mode, factor),
	}
}

func TestDocumentIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", DefaultName},
		{"  ", DefaultName},
		{"Brand Blue", "brand-blue"},
		{"accent_2", "accent_2"},
		{"a.b/c", "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Document{Name: tt.name}).identifier(); got != tt.want {
				t.Errorf("identifier() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	want := []string{"css", "json", "tailwind", "text", "toml", "yaml"}
	got := r.List()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("List() = %v, want %v", got, want)
	}

	for _, name := range want {
		f, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", name, err)
		}
		if f.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, f.Name())
		}
		if f.Description() == "" {
			t.Errorf("%s: Description() should not be empty", name)
		}
	}

	if _, err := r.Get("scss"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Get(scss) error = %v, want ErrUnknownFormat", err)
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := (&TextFormatter{}).Format(testDocument(shade.BlendShade, nil))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 1+shade.StandardShadeCount {
		t.Fatalf("expected %d lines, got %d:\n%s", 1+shade.StandardShadeCount, len(lines), out)
	}
	if want := "brand-blue  #6496c8 (mode: shade, factor: default)"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[6], "   500  #6496c8") {
		t.Errorf("500 line = %q", lines[6])
	}
	if !strings.Contains(lines[6], "rgba(100, 150, 200, 1)") || !strings.Contains(lines[6], "hsl(") {
		t.Errorf("500 line missing rgba/hsl columns: %q", lines[6])
	}
}

func TestTextFormatterPreview(t *testing.T) {
	f := &TextFormatter{Preview: colour.NewPreviewer(termenv.TrueColor)}
	out, err := f.Format(testDocument(shade.BlendOpacity, shade.Factor(10)))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(string(out), "\x1b[") {
		t.Error("expected ANSI escape sequences in preview output")
	}
	if !strings.Contains(string(out), "factor: 10") {
		t.Errorf("expected factor in header:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(testDocument(shade.BlendRange, shade.Factor(200)))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var decoded struct {
		Name    string            `json:"name"`
		Mode    string            `json:"mode"`
		Factor  float64           `json:"factor"`
		Primary string            `json:"primary"`
		Shades  map[string]string `json:"shades"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if decoded.Name != "brand-blue" || decoded.Mode != "range" || decoded.Factor != 200 {
		t.Errorf("unexpected header fields: %+v", decoded)
	}
	if decoded.Primary != "#6496c8" || decoded.Shades["500"] != "#6496c8" {
		t.Errorf("primary = %q, shade 500 = %q", decoded.Primary, decoded.Shades["500"])
	}
	if len(decoded.Shades) != shade.StandardShadeCount {
		t.Errorf("expected %d shades, got %d", shade.StandardShadeCount, len(decoded.Shades))
	}

	// Shades keep ascending key order in the encoded text.
	s := string(out)
	if strings.Index(s, `"50"`) > strings.Index(s, `"100"`) || strings.Index(s, `"800"`) > strings.Index(s, `"900"`) {
		t.Errorf("shades out of order:\n%s", s)
	}
}

func TestJSONFormatterOmitsDefaultFactor(t *testing.T) {
	out, err := JSONFormatter{}.Format(testDocument(shade.BlendOpacity, nil))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if strings.Contains(string(out), "factor") {
		t.Errorf("factor should be omitted:\n%s", out)
	}
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(testDocument(shade.BlendOpacity, shade.Factor(-51)))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var decoded struct {
		Name    string         `yaml:"name"`
		Mode    string         `yaml:"mode"`
		Factor  float64        `yaml:"factor"`
		Primary string         `yaml:"primary"`
		Shades  map[int]string `yaml:"shades"`
	}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}

	if decoded.Mode != "opacity" || decoded.Factor != -51 || decoded.Primary != "#6496c8" {
		t.Errorf("unexpected fields: %+v", decoded)
	}
	if len(decoded.Shades) != shade.StandardShadeCount {
		t.Fatalf("expected %d shades, got %d", shade.StandardShadeCount, len(decoded.Shades))
	}
	if decoded.Shades[900] != "#5078a0" {
		t.Errorf("shade 900 = %q, want #5078a0", decoded.Shades[900])
	}

	s := string(out)
	if strings.Index(s, "\n  50:") > strings.Index(s, "\n  100:") {
		t.Errorf("shades out of order:\n%s", s)
	}
}

func TestTOMLFormatter(t *testing.T) {
	out, err := TOMLFormatter{}.Format(testDocument(shade.BlendShade, shade.Factor(0.5)))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var decoded struct {
		Name    string  `toml:"name"`
		Mode    string  `toml:"mode"`
		Factor  float64 `toml:"factor"`
		Primary string  `toml:"primary"`
		Shades  []struct {
			Key    int    `toml:"key"`
			Colour string `toml:"colour"`
		} `toml:"shades"`
	}
	if err := toml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid TOML: %v\n%s", err, out)
	}

	if decoded.Mode != "shade" || decoded.Factor != 0.5 {
		t.Errorf("unexpected fields: %+v", decoded)
	}
	if len(decoded.Shades) != shade.StandardShadeCount {
		t.Fatalf("expected %d shades, got %d", shade.StandardShadeCount, len(decoded.Shades))
	}
	for i, sh := range decoded.Shades {
		if sh.Key != int(shade.StandardShadeKeys[i]) {
			t.Errorf("shade %d key = %d, want %d", i, sh.Key, shade.StandardShadeKeys[i])
		}
	}
	if decoded.Shades[5].Colour != "#6496c8" {
		t.Errorf("shade 500 = %q", decoded.Shades[5].Colour)
	}
}

func TestCSSFormatter(t *testing.T) {
	f, err := NewDefaultRegistry().Get("css")
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Format(testDocument(shade.BlendOpacity, nil))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	s := string(out)
	for _, want := range []string{
		":root {",
		"--brand-blue: #6496c8;",
		"--brand-blue-50: #6496c81a;",
		"--brand-blue-500: #6496c899;",
		"--brand-blue-900: #6496c8;",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("CSS output missing %q:\n%s", want, s)
		}
	}
}

func TestTailwindFormatter(t *testing.T) {
	f, err := NewDefaultRegistry().Get("tailwind")
	if err != nil {
		t.Fatal(err)
	}
	doc := testDocument(shade.BlendRange, nil)
	doc.Palette.Swatch = doc.Palette.Swatch.Subset(shade.AccentShadeKeys[:])

	out, err := f.Format(doc)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	s := string(out)
	for _, want := range []string{"module.exports", "'brand-blue': {", "DEFAULT: '#6496c8',", "700: '"} {
		if !strings.Contains(s, want) {
			t.Errorf("tailwind output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "500: '") {
		t.Errorf("accent subset should not contain key 500:\n%s", s)
	}
}
