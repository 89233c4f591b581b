package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Blank is the text form of an empty cell.
const Blank = "None"

// Row is an ordered sequence of cell values. A nil value is a blank cell.
type Row []any

// Texts returns the text form of every cell in the row.
func (r Row) Texts() []string {
	texts := make([]string, len(r))
	for i, v := range r {
		texts[i] = Text(v)
	}
	return texts
}

// Text converts a cell value to the text used for comparison.
// It accepts any value and never fails.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return Blank
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return formatFloat(float64(val), 32)
	case float64:
		return formatFloat(val, 64)
	case time.Time:
		if val.Nanosecond() == 0 {
			return val.Format(time.DateTime)
		}
		return val.Format("2006-01-02 15:04:05.000000")
	case *time.Time:
		if val == nil {
			return Blank
		}
		return Text(*val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// formatFloat renders a float in shortest round-trip form. Whole numbers
// keep a ".0" suffix so they stay distinct from integers, and very large or
// very small magnitudes use exponent notation.
func formatFloat(v float64, bitSize int) string {
	abs := math.Abs(v)
	if v != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, bitSize)
	}
	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
