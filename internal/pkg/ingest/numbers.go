package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// parseDecimal accepts a decimal comma or a decimal point.
func parseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, model.ErrMalformedNumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, model.ErrMalformedNumber
	}
	return v, nil
}
