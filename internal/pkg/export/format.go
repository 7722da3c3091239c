package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Format controls how cells are rendered.
type Format struct {
	Separator rune
	Decimal   rune
	Decimals  int32
	BOM       bool
}

// DefaultFormat matches what Spanish locale spreadsheets expect.
var DefaultFormat = Format{
	Separator: ';',
	Decimal:   ',',
	Decimals:  4,
	BOM:       true,
}

// round rounds numeric cells to f.Decimals places, half away from zero. Text
// cells are returned untouched.
func (f Format) round(v any) any {
	x, ok := v.(float64)
	if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
		return v
	}
	return decimal.NewFromFloat(x).Round(f.Decimals).InexactFloat64()
}

// Cell renders one value as text. Floats keep at least one decimal place, so
// 20 is written as 20,0.
func (f Format) Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		s := decimal.NewFromFloat(x).Round(f.Decimals).String()
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		if f.Decimal != '.' {
			s = strings.Replace(s, ".", string(f.Decimal), 1)
		}
		return s
	}
	return fmt.Sprint(v)
}
