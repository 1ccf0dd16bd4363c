package layout

import (
	"strings"
	"unicode"
)

// Box drawing runes used for frames and tables.
const (
	hDouble     = '═'
	vDouble     = '║'
	cornerTL    = '╔'
	cornerTR    = '╗'
	cornerBL    = '╚'
	cornerBR    = '╝'
	teeLeft     = '╠'
	teeRight    = '╣'
	teeDown     = '╦'
	teeUp       = '╩'
	cross       = '╬'
	hSingle     = '─'
	teeLeftS    = '╟'
	teeRightS   = '╢'
	crossS      = '╫'
	bannerGlyph = "!"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Row markers that render as horizontal dividers inside tables.
const (
	DividerSingle = "---"
	DividerDouble = "==="
)

// Wrap breaks every line longer than width into lines of at most width
// characters. Breaks happen on whitespace when one occurs within the limit,
// otherwise the line is cut at exactly width. Lines that already fit pass
// through untouched; fragments that trim down to nothing are dropped.
func Wrap(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}

	var wrapped []string
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) <= width {
			wrapped = append(wrapped, line)
			continue
		}

		for len(runes) > 0 {
			if len(runes) <= width {
				appendNonEmpty(&wrapped, strings.TrimSpace(string(runes)))
				break
			}

			cut := -1
			for i := width; i >= 1; i-- {
				if unicode.IsSpace(runes[i]) {
					cut = i
					break
				}
			}

			if cut < 0 {
				appendNonEmpty(&wrapped, strings.TrimSpace(string(runes[:width])))
				runes = runes[width:]
			} else {
				appendNonEmpty(&wrapped, strings.TrimSpace(string(runes[:cut])))
				runes = runes[cut+1:]
			}
		}
	}
	return wrapped
}

func appendNonEmpty(lines *[]string, line string) {
	if line != "" {
		*lines = append(*lines, line)
	}
}

// Align pads line to exactly width visible characters and closes it in with a
// one-space gutter and a vertical rule on both sides. Lines must be wrapped
// before they are aligned.
func Align(line string, width int, mode Alignment) string {
	switch mode {
	case AlignRight:
		line = padLeft(line, width)
	case AlignCenter:
		line = center(line, width)
	default:
		line = padRight(line, width)
	}
	return string(vDouble) + " " + line + " " + string(vDouble)
}

// FrameTop returns the top edge of a frame spanning the full console width.
func FrameTop(width int) string {
	return string(cornerTL) + strings.Repeat(string(hDouble), width-2) + string(cornerTR)
}

// FrameBottom returns the bottom edge of a frame spanning the full console width.
func FrameBottom(width int) string {
	return string(cornerBL) + strings.Repeat(string(hDouble), width-2) + string(cornerBR)
}

// FrameMiddle returns a full-width horizontal divider with junction glyphs.
func FrameMiddle(width int) string {
	return string(teeLeft) + strings.Repeat(string(hDouble), width-2) + string(teeRight)
}

// FrameEmpty returns a content-free frame line, rules on both sides.
func FrameEmpty(width int) string {
	return string(vDouble) + strings.Repeat(" ", width-2) + string(vDouble)
}

// Banner renders msg between two full rows of exclamation marks. Used for
// errors that have to catch the operator's eye.
func Banner(msg string, width int) []string {
	return []string{
		strings.Repeat(bannerGlyph, width),
		center(msg, width),
		strings.Repeat(bannerGlyph, width),
	}
}

// Table renders delimited rows as a box-drawn table. Each row is split on
// delimiter into trimmed cells; a row whose first cell is DividerSingle or
// DividerDouble becomes a horizontal rule instead of data. Column count and
// widths are taken over the data rows, and short rows are padded with empty
// cells, never truncated.
func Table(rows []string, delimiter string) []string {
	type tableRow struct {
		cells   []string
		divider rune
	}

	var (
		parsed    []tableRow
		colWidths []int
	)

	for _, row := range rows {
		cells := splitCells(row, delimiter)

		switch cells[0] {
		case DividerSingle:
			parsed = append(parsed, tableRow{divider: hSingle})
			continue
		case DividerDouble:
			parsed = append(parsed, tableRow{divider: hDouble})
			continue
		}

		for len(colWidths) < len(cells) {
			colWidths = append(colWidths, 0)
		}
		for i, cell := range cells {
			if n := len([]rune(cell)); n > colWidths[i] {
				colWidths[i] = n
			}
		}
		parsed = append(parsed, tableRow{cells: cells})
	}

	if len(colWidths) == 0 {
		return nil
	}

	table := []string{tableEdge(colWidths, cornerTL, hDouble, teeDown, cornerTR)}
	for _, row := range parsed {
		switch row.divider {
		case hSingle:
			table = append(table, tableEdge(colWidths, teeLeftS, hSingle, crossS, teeRightS))
		case hDouble:
			table = append(table, tableEdge(colWidths, teeLeft, hDouble, cross, teeRight))
		default:
			table = append(table, tableDataRow(row.cells, colWidths))
		}
	}
	table = append(table, tableEdge(colWidths, cornerBL, hDouble, teeUp, cornerBR))

	return table
}

func splitCells(row, delimiter string) []string {
	cells := strings.Split(row, delimiter)
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

func tableEdge(colWidths []int, left, fill, junction, right rune) string {
	var b strings.Builder
	b.WriteRune(left)
	for i, width := range colWidths {
		if i > 0 {
			b.WriteRune(junction)
		}
		b.WriteString(strings.Repeat(string(fill), width+2))
	}
	b.WriteRune(right)
	return b.String()
}

func tableDataRow(cells []string, colWidths []int) string {
	var b strings.Builder
	b.WriteRune(vDouble)
	for i, width := range colWidths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" " + padRight(cell, width) + " ")
		b.WriteRune(vDouble)
	}
	return b.String()
}

func padRight(s string, width int) string {
	if gap := width - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	if gap := width - len([]rune(s)); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

func center(s string, width int) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
