package table

import (
	"math"
	"strconv"
	"strings"

	"switchports/internal"
)

var missingTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

func isMissing(raw string) bool {
	_, ok := missingTokens[raw]
	return ok
}

// parseField types one delimited-text value.
func parseField(raw string) internal.Cell {
	if isMissing(raw) {
		return internal.Absent()
	}
	trimmed := strings.TrimSpace(raw)
	if v, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return internal.IntCell(v)
	}
	if v, ok := parseDecimal(trimmed); ok {
		return internal.FloatCell(v)
	}
	switch trimmed {
	case "True", "TRUE", "true":
		return internal.BoolCell(true)
	case "False", "FALSE", "false":
		return internal.BoolCell(false)
	}
	return internal.TextCell(raw)
}

// parseDecimal accepts plain decimal and exponent forms only; hex floats and
// digit separators stay text.
func parseDecimal(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// settle decides the column representation. raws holds the source text of a
// delimited column; object columns fall back to it. Workbook columns pass nil
// and keep their per-cell types.
func settle(cells []internal.Cell, raws []string) (internal.ColumnKind, []internal.Cell) {
	var absent, ints, floats, bools int
	for i, c := range cells {
		switch c.Kind {
		case internal.CellInt:
			ints++
		case internal.CellFloat:
			floats++
		case internal.CellBool:
			bools++
		case internal.CellText:
		default:
			cells[i] = internal.Absent()
			absent++
		}
	}
	present := len(cells) - absent

	switch {
	case present == 0:
		return internal.ColumnFloat, cells
	case ints == present && absent == 0:
		return internal.ColumnInt, cells
	case ints+floats == present:
		for i, c := range cells {
			if c.Kind == internal.CellInt {
				cells[i] = internal.FloatCell(float64(c.Int))
			}
		}
		return internal.ColumnFloat, cells
	case bools == present && absent == 0:
		return internal.ColumnBool, cells
	case bools == present:
		return internal.ColumnObject, cells
	}

	if raws != nil {
		for i, c := range cells {
			if !c.IsAbsent() {
				cells[i] = internal.TextCell(raws[i])
			}
		}
	}
	return internal.ColumnObject, cells
}
