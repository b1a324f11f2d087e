package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

const previewWidth = 8

// TextFormatter renders one line per shade with hex, rgba and hsl columns.
// When Preview is set each line starts with a coloured block.
type TextFormatter struct {
	Preview *colour.Previewer
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Description returns the format description.
func (f *TextFormatter) Description() string {
	return "Human-readable table, with colour blocks on capable terminals"
}

// Format renders the document.
func (f *TextFormatter) Format(doc Document) ([]byte, error) {
	var b strings.Builder

	factor := "default"
	if doc.Factor != nil {
		factor = strconv.FormatFloat(*doc.Factor, 'g', -1, 64)
	}
	fmt.Fprintf(&b, "%s  %s (mode: %s, factor: %s)\n", doc.identifier(), doc.Palette.Primary.Hex(), doc.Mode, factor)

	for key, c := range doc.Palette.Swatch.All() {
		b.WriteString("  ")
		if f.Preview != nil {
			b.WriteString(f.Preview.Label(c, key.String(), previewWidth))
			b.WriteString("  ")
		} else {
			fmt.Fprintf(&b, "%4s  ", key)
		}
		fmt.Fprintf(&b, "%-9s  %-26s  %s\n", c.Hex(), c.RGBAString(), c.HSLString())
	}

	return []byte(b.String()), nil
}
