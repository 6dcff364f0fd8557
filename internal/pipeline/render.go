package pipeline

import (
	"bufio"
	"io"
	"strings"

	"switchports/internal"
	"switchports/internal/util"
)

const (
	deviceWidth    = 35
	switchWidth    = 25
	separatorWidth = 85
	fieldSep       = " | "
)

func formatLine(device, switchName, port string) string {
	return util.PadRight(device, deviceWidth) + fieldSep + util.PadRight(switchName, switchWidth) + fieldSep + port
}

// Render writes the report: a blank line, the header, a dash rule and one line
// per row. Fields wider than their column are written in full.
func Render(w io.Writer, rows []internal.ReportRow) error {
	bw := bufio.NewWriter(w)
	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, "", formatLine("DEVICE", "CONNECTED TO SWITCH", "PORT"), strings.Repeat("-", separatorWidth))
	for _, row := range rows {
		lines = append(lines, formatLine(row.DeviceName, row.SwitchName, row.Port))
	}
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
