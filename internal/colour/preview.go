package colour

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

const defaultPreviewWidth = 8

// Previewer renders solid colour blocks for terminal output.
// Translucent colours are composited over Backdrop first, since a terminal
// cell cannot show opacity.
type Previewer struct {
	Profile  termenv.Profile
	Backdrop Colour
}

// NewPreviewer creates a Previewer for the given terminal colour profile
// with a white backdrop.
func NewPreviewer(profile termenv.Profile) *Previewer {
	return &Previewer{Profile: profile, Backdrop: White}
}

// Block returns a solid block of width cells in colour c.
// With the Ascii profile the block is plain spaces.
func (p *Previewer) Block(c Colour, width int) string {
	return p.Label(c, "", width)
}

// Label returns a block of width cells in colour c with text centred on it.
// The text colour is black or white, whichever contrasts with the block.
func (p *Previewer) Label(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultPreviewWidth
	}

	shown := c
	if c.A < 1 {
		shown = AlphaComposite(c, p.Backdrop)
	}

	if len(text) > width {
		text = text[:width]
	}
	pad := (width - len(text)) / 2
	cell := strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)

	fg := White
	if shown.Luminance() > 0.5 {
		fg = Black
	}

	return p.Profile.String(cell).
		Background(p.Profile.Color(rgbHex(shown))).
		Foreground(p.Profile.Color(rgbHex(fg))).
		String()
}

// rgbHex is the opaque #rrggbb form accepted by termenv.
func rgbHex(c Colour) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
