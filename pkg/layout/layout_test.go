package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		width    int
		expected []string
	}{
		{
			name:     "Short lines pass through untouched",
			lines:    []string{"short", "  padded  "},
			width:    10,
			expected: []string{"short", "  padded  "},
		},
		{
			name:     "Breaks on whitespace within the limit",
			lines:    []string{"The quick brown fox jumps"},
			width:    10,
			expected: []string{"The quick", "brown fox", "jumps"},
		},
		{
			name:     "Hard break when no whitespace fits",
			lines:    []string{"abcdefghijklmno"},
			width:    5,
			expected: []string{"abcde", "fghij", "klmno"},
		},
		{
			name:     "Whitespace only fragments are dropped",
			lines:    []string{strings.Repeat(" ", 12)},
			width:    5,
			expected: nil,
		},
		{
			name:     "Line order is preserved across inputs",
			lines:    []string{"one two three four", "five"},
			width:    9,
			expected: []string{"one two", "three", "four", "five"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.lines, tt.width)
			assert.Equal(t, tt.expected, result)

			for _, line := range result {
				assert.LessOrEqual(t, len([]rune(line)), tt.width)
			}
		})
	}
}

func TestWrapIsIdempotent(t *testing.T) {
	lines := []string{"a very long line that has to be broken up more than once to fit", "tiny"}

	once := Wrap(lines, 12)
	twice := Wrap(once, 12)

	assert.Equal(t, once, twice)
}

func TestWrapPreservesContent(t *testing.T) {
	lines := []string{"deposit 500 into RFID 0001234567 and withdraw everything afterwards"}

	stripped := func(ss []string) string {
		var b strings.Builder
		for _, s := range ss {
			b.WriteString(strings.Join(strings.Fields(s), ""))
		}
		return b.String()
	}

	assert.Equal(t, stripped(lines), stripped(Wrap(lines, 13)))
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		width    int
		mode     Alignment
		expected string
	}{
		{
			name:     "Left alignment pads on the right",
			line:     "hi",
			width:    6,
			mode:     AlignLeft,
			expected: "║ hi     ║",
		},
		{
			name:     "Right alignment pads on the left",
			line:     "hi",
			width:    6,
			mode:     AlignRight,
			expected: "║     hi ║",
		},
		{
			name:     "Center alignment rounds the extra space right",
			line:     "a",
			width:    4,
			mode:     AlignCenter,
			expected: "║  a   ║",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Align(tt.line, tt.width, tt.mode)
			assert.Equal(t, tt.expected, result)
			assert.Len(t, []rune(result), tt.width+4)
		})
	}
}

func TestFrames(t *testing.T) {
	assert.Equal(t, "╔══════╗", FrameTop(8))
	assert.Equal(t, "╚══════╝", FrameBottom(8))
	assert.Equal(t, "╠══════╣", FrameMiddle(8))
	assert.Equal(t, "║      ║", FrameEmpty(8))
}

func TestBanner(t *testing.T) {
	banner := Banner("boom", 10)

	assert.Equal(t, []string{
		"!!!!!!!!!!",
		"   boom   ",
		"!!!!!!!!!!",
	}, banner)
}

func TestTable(t *testing.T) {
	rows := []string{
		"a | bb",
		"---",
		"ccc",
	}

	expected := []string{
		"╔═════╦════╗",
		"║ a   ║ bb ║",
		"╟─────╫────╢",
		"║ ccc ║    ║",
		"╚═════╩════╝",
	}

	assert.Equal(t, expected, Table(rows, "|"))
}

func TestTableDoubleDivider(t *testing.T) {
	rows := []string{
		"RFID | Balance",
		"===",
		"0001234567 | 500",
	}

	table := Table(rows, "|")

	assert.Equal(t, "╠════════════╬═════════╣", table[2])
}

func TestTableRowWidthsAreUniform(t *testing.T) {
	rows := []string{
		"ID | RFID | Balance | Last used",
		"===",
		"1 | 0001234567 | 500",
		"---",
		"2 | AB | 25 | 2014-09-01 | extra",
	}

	table := Table(rows, "|")
	assert.NotEmpty(t, table)

	width := len([]rune(table[0]))
	for _, line := range table {
		assert.Len(t, []rune(line), width)
	}
}

func TestTableColumnWidthMatchesWidestCell(t *testing.T) {
	rows := []string{
		"x | yyyy",
		"wwwwww | z",
	}

	table := Table(rows, "|")

	// 6 and 4 wide columns, one space padding on each side.
	assert.Equal(t, "╔════════╦══════╗", table[0])
	assert.Equal(t, "║ x      ║ yyyy ║", table[1])
}

func TestTableOnlyDividersRendersNothing(t *testing.T) {
	assert.Nil(t, Table([]string{"---", "==="}, "|"))
}
