package pipeline

import (
	"fmt"

	"switchports/internal"
	"switchports/internal/util"
)

const UnknownPort = "?"

// CleanPort renders a switch port. In a float column whole values drop their
// fraction (2.0 -> "2"); other columns print each value as stored.
func CleanPort(kind internal.ColumnKind, c internal.Cell) string {
	if c.IsAbsent() {
		return UnknownPort
	}
	if kind == internal.ColumnFloat && c.Kind == internal.CellFloat {
		if util.IsIntegral(c.Float) {
			return util.IntegralString(c.Float)
		}
		return util.FormatFloat(c.Float)
	}
	return util.FormatCell(c)
}

func UnknownSwitch(id int64) string {
	return fmt.Sprintf("Unknown Switch (%d)", id)
}

// Resolve attaches switch names and cleaned ports to the connected devices.
func Resolve(devices []internal.Device, portKind internal.ColumnKind, names NameMap) []internal.ReportRow {
	out := make([]internal.ReportRow, 0, len(devices))
	for _, d := range devices {
		row := internal.ReportRow{
			RowNo:      d.RowNo,
			DeviceName: util.FormatCell(d.Name),
			SwitchID:   d.SwitchID,
			Port:       CleanPort(portKind, d.Port),
		}
		if name, ok := names.Lookup(d.SwitchID); ok {
			row.SwitchName = name
			row.SwitchKnown = true
		} else {
			row.SwitchName = UnknownSwitch(d.SwitchID)
		}
		out = append(out, row)
	}
	return out
}
