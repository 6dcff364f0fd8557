package pipeline

import (
	"strconv"

	"go.uber.org/zap"

	"switchports/internal"
	"switchports/internal/table"
	"switchports/internal/util"
)

// NameMap resolves device ids to display names. Integral ids compare equal
// whether the export stored them as integers, floats or booleans.
type NameMap struct {
	names      map[string]string
	duplicates int
}

func idKey(c internal.Cell) (string, bool) {
	switch c.Kind {
	case internal.CellInt:
		return "n:" + strconv.FormatInt(c.Int, 10), true
	case internal.CellFloat:
		if util.IsIntegral(c.Float) {
			return "n:" + util.IntegralString(c.Float), true
		}
		return "f:" + util.FormatFloat(c.Float), true
	case internal.CellBool:
		if c.Bool {
			return "n:1", true
		}
		return "n:0", true
	case internal.CellText:
		return "s:" + c.Text, true
	default:
		return "", false
	}
}

// BuildNameMap reads every row of the table. A repeated id keeps the name
// from the later row.
func BuildNameMap(t *table.Table, logger *zap.Logger) NameMap {
	m := NameMap{names: map[string]string{}}
	ids, _ := t.Column(internal.ColumnID)
	names, _ := t.Column(internal.ColumnName)
	if ids == nil || names == nil {
		return m
	}

	for i := 0; i < t.Len(); i++ {
		key, ok := idKey(ids.Cell(i))
		if !ok {
			continue
		}
		name := util.FormatCell(names.Cell(i))
		if prev, exists := m.names[key]; exists {
			m.duplicates++
			logger.Warn("duplicate device id, later row wins",
				zap.String("id", util.FormatCell(ids.Cell(i))),
				zap.String("previous", prev),
				zap.String("name", name),
				zap.Int("row", i+2))
		}
		m.names[key] = name
	}
	return m
}

func (m NameMap) Lookup(id int64) (string, bool) {
	name, ok := m.names["n:"+strconv.FormatInt(id, 10)]
	return name, ok
}

func (m NameMap) Len() int { return len(m.names) }

func (m NameMap) Duplicates() int { return m.duplicates }
