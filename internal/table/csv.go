package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"switchports/internal"
)

// LoadCSV parses comma-delimited text with a header row.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	names := normalizeHeaders(header)

	raws := make([][]string, len(names))
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		if len(record) > len(names) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(names), line, len(record))
		}
		for i := range names {
			value := ""
			if i < len(record) {
				value = record[i]
			}
			raws[i] = append(raws[i], value)
		}
	}

	columns := make([]Column, 0, len(names))
	for i, name := range names {
		cells := make([]internal.Cell, len(raws[i]))
		for r, raw := range raws[i] {
			cells[r] = parseField(raw)
		}
		kind, settled := settle(cells, raws[i])
		columns = append(columns, Column{Name: name, Kind: kind, Cells: settled})
	}
	return newTable(internal.FormatCSV, columns), nil
}
