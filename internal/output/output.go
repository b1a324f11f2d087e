// Package output renders tonal palettes into text and configuration formats.
package output

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/tonal/internal/shade"
)

// ErrUnknownFormat is returned when no formatter is registered under a name.
var ErrUnknownFormat = errors.New("unknown output format")

// DefaultName is the palette name used when none is given.
const DefaultName = "primary"

// Document is everything a formatter needs to render one palette.
type Document struct {
	// Name labels the palette, e.g. the CSS variable prefix.
	Name string

	// Mode is the blend mode the swatch was generated with.
	Mode shade.BlendMode

	// Factor is the optional factor passed to the generator.
	Factor *float64

	// Palette holds the primary colour and its swatch.
	Palette shade.TonalPalette
}

// identifier returns Name reduced to a lower-case CSS/JS-safe identifier.
func (d Document) identifier() string {
	name := strings.ToLower(strings.TrimSpace(d.Name))
	if name == "" {
		return DefaultName
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Formatter renders a Document.
type Formatter interface {
	// Name returns the format name (e.g., "json", "css").
	Name() string

	// Description returns a human-readable description of the format.
	Description() string

	// Format renders the document.
	Format(doc Document) ([]byte, error)
}

// Registry holds formatters by name.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter, replacing any with the same name.
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Name()] = f
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, error) {
	f, ok := r.formatters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownFormat, name, strings.Join(r.List(), ", "))
	}
	return f, nil
}

// List returns all registered format names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewDefaultRegistry returns a registry with every built-in formatter.
// text renders without terminal previews; register a TextFormatter with a
// Previewer to enable them.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&TextFormatter{})
	r.Register(JSONFormatter{})
	r.Register(YAMLFormatter{})
	r.Register(TOMLFormatter{})
	r.Register(newTemplateFormatter("css", "CSS custom properties", "css.tmpl"))
	r.Register(newTemplateFormatter("tailwind", "tailwind.config.js colour extension", "tailwind.config.js.tmpl"))
	return r
}
