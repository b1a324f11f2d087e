package cli

import (
	"strings"
)

const columnGap = "  "

// table renders aligned columns for listing commands. Cells in a column
// with a wrap width are word-wrapped onto continuation lines.
type table struct {
	headers []string
	rows    [][]string
	wrap    map[int]int
}

func newTable(headers ...string) *table {
	return &table{headers: headers, wrap: make(map[int]int)}
}

// wrapColumn limits column col to width characters.
func (t *table) wrapColumn(col, width int) {
	t.wrap[col] = width
}

// addRow appends a row, padding or truncating it to the header count.
func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *table) render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}

	lines := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		lines[r] = make([][]string, len(row))
		for c, cell := range row {
			lines[r][c] = wrapWords(cell, t.wrap[c])
			for _, line := range lines[r][c] {
				widths[c] = max(widths[c], len(line))
			}
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, columnGap), " "))
		b.WriteString("\n")
	}

	writeLine(t.headers)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeLine(rule)

	for _, row := range lines {
		height := 1
		for _, cell := range row {
			height = max(height, len(cell))
		}
		for l := range height {
			cells := make([]string, len(row))
			for c, cell := range row {
				if l < len(cell) {
					cells[c] = cell[l]
				}
			}
			writeLine(cells)
		}
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapWords breaks text at word boundaries so no line exceeds width.
// Words longer than width are split. A width of zero disables wrapping.
func wrapWords(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}
