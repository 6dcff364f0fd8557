package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"switchports/internal"
)

// FormatFloat renders f in shortest round-trip form, switching to exponent
// notation below 1e-4 and from 1e16 up. Whole values keep a ".0" suffix.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp := 0
	if idx := strings.IndexByte(sci, 'e'); idx >= 0 {
		exp, _ = strconv.Atoi(sci[idx+1:])
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(out, ".") {
		out += ".0"
	}
	return out
}

// IntegralString returns the integer digits of a float with no fractional part.
func IntegralString(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', 0, 64)
}

func IsIntegral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// ToInt64 coerces a present cell to an integer. Floats truncate toward zero,
// text must be a base-10 integer literal.
func ToInt64(c internal.Cell) (int64, error) {
	switch c.Kind {
	case internal.CellInt:
		return c.Int, nil
	case internal.CellFloat:
		if math.IsNaN(c.Float) || math.IsInf(c.Float, 0) {
			return 0, fmt.Errorf("cannot convert non-finite value %s to integer", FormatFloat(c.Float))
		}
		if c.Float >= math.MaxInt64 || c.Float < math.MinInt64 {
			return 0, fmt.Errorf("value %s is out of integer range", FormatFloat(c.Float))
		}
		return cast.ToInt64E(c.Float)
	case internal.CellBool:
		return cast.ToInt64E(c.Bool)
	case internal.CellText:
		v, err := strconv.ParseInt(strings.TrimSpace(c.Text), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer literal '%s'", c.Text)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("cannot convert missing value to integer")
	}
}
