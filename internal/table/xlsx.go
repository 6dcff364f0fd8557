package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"switchports/internal"
)

func LoadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

func LoadXLSXFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

func readFirstSheet(f *excelize.File) (*Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoColumns
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoColumns
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	header := make([]string, width)
	copy(header, rows[0])
	names := normalizeHeaders(header)

	body := rows[1:]
	columns := make([]Column, 0, width)
	for c, name := range names {
		cells := make([]internal.Cell, len(body))
		for r, row := range body {
			raw := ""
			if c < len(row) {
				raw = row[c]
			}
			cell, err := sheetCell(f, sheet, c+1, r+2, raw)
			if err != nil {
				return nil, err
			}
			cells[r] = cell
		}
		kind, settled := settle(cells, nil)
		columns = append(columns, Column{Name: name, Kind: kind, Cells: settled})
	}
	return newTable(internal.FormatXLSX, columns), nil
}

// sheetCell types a raw workbook value using the cell's stored type. Cells
// without a type attribute are numbers.
func sheetCell(f *excelize.File, sheet string, col, row int, raw string) (internal.Cell, error) {
	if raw == "" {
		return internal.Absent(), nil
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return internal.Cell{}, err
	}
	typ, err := f.GetCellType(sheet, ref)
	if err != nil {
		return internal.Cell{}, fmt.Errorf("read cell %s: %w", ref, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		return internal.BoolCell(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if cell, ok := numericCell(raw); ok {
			return cell, nil
		}
	}
	if isMissing(raw) {
		return internal.Absent(), nil
	}
	return internal.TextCell(raw), nil
}

// numericCell keeps values written without a decimal point or exponent as
// integers.
func numericCell(raw string) (internal.Cell, bool) {
	s := strings.TrimSpace(raw)
	if !strings.ContainsAny(s, ".eE") {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return internal.IntCell(v), true
		}
	}
	if v, ok := parseDecimal(s); ok {
		return internal.FloatCell(v), true
	}
	return internal.Cell{}, false
}
