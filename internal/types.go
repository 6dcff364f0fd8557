package internal

type CellKind string

const (
	CellAbsent CellKind = "absent"
	CellInt    CellKind = "int"
	CellFloat  CellKind = "float"
	CellBool   CellKind = "bool"
	CellText   CellKind = "text"
)

// Cell is one table value. Only the field matching Kind is meaningful.
type Cell struct {
	Kind  CellKind
	Int   int64
	Float float64
	Bool  bool
	Text  string
}

func Absent() Cell { return Cell{Kind: CellAbsent} }
func IntCell(v int64) Cell { return Cell{Kind: CellInt, Int: v} }
func FloatCell(v float64) Cell { return Cell{Kind: CellFloat, Float: v} }
func BoolCell(v bool) Cell { return Cell{Kind: CellBool, Bool: v} }
func TextCell(v string) Cell { return Cell{Kind: CellText, Text: v} }
func (c Cell) IsAbsent() bool { return c.Kind == CellAbsent || c.Kind == "" }
func (c Cell) IsNumeric() bool { return c.Kind == CellInt || c.Kind == CellFloat }

// ColumnKind is the representation a whole column settled on after parsing.
type ColumnKind string

const (
	ColumnInt    ColumnKind = "int"
	ColumnFloat  ColumnKind = "float"
	ColumnBool   ColumnKind = "bool"
	ColumnObject ColumnKind = "object"
)

type InputFormat string

const (
	FormatCSV  InputFormat = "csv"
	FormatXLSX InputFormat = "xlsx"
)

const (
	ColumnID         = "Id"
	ColumnName       = "Name"
	ColumnSwitch     = "Connected To switch"
	ColumnSwitchPort = "Switch Port"
)

// RequiredColumns lists the headers every export must carry, in lookup order.
var RequiredColumns = []string{ColumnID, ColumnName, ColumnSwitch, ColumnSwitchPort}

type Device struct {
	RowNo    int
	Name     Cell
	SwitchID int64
	Port     Cell
}

type ReportRow struct {
	RowNo       int
	DeviceName  string
	SwitchID    int64
	SwitchName  string
	SwitchKnown bool
	Port        string
}
