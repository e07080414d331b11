package cli

import (
	"strings"
)

// Table lays out rows of text in aligned columns. Columns with a maximum
// width have their cells word-wrapped onto continuation lines.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth limits column col to width characters. A width of zero
// removes the limit.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render returns the table with a header, a dashed separator and one or
// more lines per row.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	cells := make([][][]string, len(t.rows))
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for r, row := range t.rows {
		cells[r] = make([][]string, len(row))
		for c, cell := range row {
			lines := []string{cell}
			if limit := t.maxWidths[c]; limit > 0 {
				lines = wrapText(cell, limit)
			}
			cells[r][c] = lines
			for _, line := range lines {
				widths[c] = max(widths[c], len(line))
			}
		}
	}

	var b strings.Builder
	t.writeLine(&b, t.headers, widths)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	t.writeLine(&b, sep, widths)

	for _, row := range cells {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for l := range height {
			parts := make([]string, len(t.headers))
			for c, lines := range row {
				if l < len(lines) {
					parts[c] = lines[l]
				}
			}
			t.writeLine(&b, parts, widths)
		}
	}
	return b.String()
}

func (t *Table) writeLine(b *strings.Builder, parts []string, widths []int) {
	gap := strings.Repeat(" ", t.padding)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(padRight(p, widths[i]))
	}
	b.WriteByte('\n')
}

// padRight pads s with spaces up to width. Longer strings are returned as is.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText breaks text into lines of at most width characters at word
// boundaries. Words longer than width are split.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
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
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
