package table

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"switchports/internal"
)

func mkXLSX(rows [][]any) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

func TestLoadXLSX(t *testing.T) {
	blob := mkXLSX([][]any{
		{"Id", "Name", "Connected To switch", "Switch Port"},
		{1, "SwitchA", nil, nil},
		{2, "PC1", 1, 4.5},
		{3, "PC2", 9, nil},
	})
	tbl, err := LoadXLSX(bytes.NewReader(blob))
	require.NoError(t, err)
	require.Equal(t, internal.FormatXLSX, tbl.Format)
	require.Equal(t, 3, tbl.Len())

	id, _ := tbl.Column("Id")
	require.Equal(t, internal.ColumnInt, id.Kind)
	require.Equal(t, internal.IntCell(3), id.Cell(2))

	name, _ := tbl.Column("Name")
	require.Equal(t, internal.ColumnObject, name.Kind)
	require.Equal(t, internal.TextCell("PC1"), name.Cell(1))

	sw, _ := tbl.Column("Connected To switch")
	require.Equal(t, internal.ColumnFloat, sw.Kind)
	require.True(t, sw.Cell(0).IsAbsent())
	require.Equal(t, internal.FloatCell(1), sw.Cell(1))

	port, _ := tbl.Column("Switch Port")
	require.Equal(t, internal.ColumnFloat, port.Kind)
	require.Equal(t, internal.FloatCell(4.5), port.Cell(1))
	require.True(t, port.Cell(2).IsAbsent())
}

func TestLoadXLSXMixedColumnKeepsCellTypes(t *testing.T) {
	blob := mkXLSX([][]any{
		{"Id", "Name", "Connected To switch", "Switch Port"},
		{2, "PC1", 1, 3},
		{3, "PC2", 1, "3/A"},
		{4, "PC3", 1, 2.5},
		{5, "PC4", 1, true},
		{6, "PC5", 1, "N/A"},
	})
	tbl, err := LoadXLSX(bytes.NewReader(blob))
	require.NoError(t, err)

	port, _ := tbl.Column("Switch Port")
	require.Equal(t, internal.ColumnObject, port.Kind)
	require.Equal(t, internal.IntCell(3), port.Cell(0))
	require.Equal(t, internal.TextCell("3/A"), port.Cell(1))
	require.Equal(t, internal.FloatCell(2.5), port.Cell(2))
	require.Equal(t, internal.BoolCell(true), port.Cell(3))
	require.True(t, port.Cell(4).IsAbsent())
}

func TestLoadXLSXFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	first := f.GetSheetName(0)
	_ = f.SetSheetRow(first, "A1", &[]any{"Id", "Name", "Connected To switch", "Switch Port"})
	_ = f.SetSheetRow(first, "A2", &[]any{7, "Core"})
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	_ = f.SetSheetRow("Other", "A1", &[]any{"Unrelated"})

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))

	tbl, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, tbl.Require(internal.RequiredColumns...))
	require.Equal(t, 1, tbl.Len())
}

func TestLoadRejectsNonWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, os.WriteFile(path, []byte("Id,Name\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open workbook")
}

func TestDetectFormat(t *testing.T) {
	require.Equal(t, internal.FormatCSV, DetectFormat("devices.csv"))
	require.Equal(t, internal.FormatXLSX, DetectFormat("devices.xlsx"))
	require.Equal(t, internal.FormatXLSX, DetectFormat("devices.CSV"))
}
