package util

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"

	"switchports/internal"
)

// FormatCell renders a cell the way it prints in the report. Absent cells
// render empty.
func FormatCell(c internal.Cell) string {
	switch c.Kind {
	case internal.CellInt:
		return cast.ToString(c.Int)
	case internal.CellFloat:
		return FormatFloat(c.Float)
	case internal.CellBool:
		if c.Bool {
			return "True"
		}
		return "False"
	case internal.CellText:
		return c.Text
	default:
		return ""
	}
}

// PadRight left-justifies s to width runes. Longer values are returned as is.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
