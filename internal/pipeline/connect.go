package pipeline

import (
	"switchports/internal"
	"switchports/internal/table"
	"switchports/internal/util"
)

// SelectConnected keeps rows that record a switch connection, in table order,
// with the switch id coerced to an integer. One bad id fails the whole set.
func SelectConnected(t *table.Table) ([]internal.Device, error) {
	if err := t.Require(internal.RequiredColumns...); err != nil {
		return nil, err
	}
	names, _ := t.Column(internal.ColumnName)
	switches, _ := t.Column(internal.ColumnSwitch)
	ports, _ := t.Column(internal.ColumnSwitchPort)

	out := make([]internal.Device, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		sw := switches.Cell(i)
		if sw.IsAbsent() {
			continue
		}
		id, err := util.ToInt64(sw)
		if err != nil {
			return nil, &CoercionError{Column: internal.ColumnSwitch, RowNo: i + 2, Value: util.FormatCell(sw), Err: err}
		}
		out = append(out, internal.Device{
			RowNo:    i + 2,
			Name:     names.Cell(i),
			SwitchID: id,
			Port:     ports.Cell(i),
		})
	}
	return out, nil
}
