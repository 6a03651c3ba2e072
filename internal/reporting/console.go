package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/olechiw/great-expectations/internal/render"
)

// maxConsoleCell caps a single cell's display width so one long description
// does not blow out the whole table.
const maxConsoleCell = 60

// WriteConsole renders the table as fixed-width text. Column widths are
// computed over the header and every row using terminal display width, so
// icons and wide runes still align.
func WriteConsole(table *render.Table, w io.Writer) error {
	widths := make([]int, len(table.Header))
	for i, label := range table.Header {
		widths[i] = runewidth.StringWidth(label)
	}

	body := make([][]string, len(table.Rows))
	for r, row := range table.Rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			text := truncateCell(CellText(cell), maxConsoleCell)
			cells[c] = text
			if c < len(widths) && runewidth.StringWidth(text) > widths[c] {
				widths[c] = runewidth.StringWidth(text)
			}
		}
		body[r] = cells
	}

	var b strings.Builder
	for i, label := range table.Header {
		b.WriteString(padRight(label, widths[i]) + "  ")
	}
	b.WriteString("\n")
	for i := range table.Header {
		b.WriteString(strings.Repeat("-", widths[i]) + "  ")
	}
	b.WriteString("\n")

	for _, cells := range body {
		for c, text := range cells {
			width := 0
			if c < len(widths) {
				width = widths[c]
			}
			b.WriteString(padRight(text, width) + "  ")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CellText flattens a cell into a single line of text.
func CellText(cell render.Cell) string {
	parts := make([]string, 0, len(cell))
	for _, frag := range cell {
		if text := FragmentText(frag); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "; ")
}

// FragmentText flattens one fragment into plain text.
func FragmentText(frag render.Fragment) string {
	switch f := frag.(type) {
	case render.Text:
		return string(f)
	case *render.StringTemplate:
		return f.String()
	case *render.SubTable:
		lines := make([]string, 0, len(f.Rows))
		for _, row := range f.Rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				cells = append(cells, CellText(cell))
			}
			lines = append(lines, strings.Join(cells, " "))
		}
		return strings.Join(lines, "; ")
	case *render.CollapseContent:
		if f.Toggle != nil {
			return FragmentText(f.Toggle)
		}
		return ""
	default:
		return fmt.Sprintf("%v", frag)
	}
}

func truncateCell(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
