package ingest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

var (
	dateHints   = []string{"fecha", "date"}
	hourHints   = []string{"hora", "hour"}
	energyHints = []string{"consumo", "kwh", "energia"}
)

type consumptionColumns struct {
	date, hour, energy int
}

// findConsumptionColumns picks, for each role, the first header containing
// one of its hints.
func findConsumptionColumns(header []string) (consumptionColumns, bool) {
	cols := consumptionColumns{date: -1, hour: -1, energy: -1}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if cols.date < 0 && containsAny(name, dateHints) {
			cols.date = i
		}
		if cols.hour < 0 && containsAny(name, hourHints) {
			cols.hour = i
		}
		if cols.energy < 0 && containsAny(name, energyHints) {
			cols.energy = i
		}
	}
	return cols, cols.date >= 0 && cols.hour >= 0 && cols.energy >= 0
}

func containsAny(s string, hints []string) bool {
	for _, h := range hints {
		if strings.Contains(s, h) {
			return true
		}
	}
	return false
}

// parseConsumption turns a Datadis hourly export into records sorted by
// timestamp.
func parseConsumption(t *rawTable) ([]model.ConsumptionRecord, error) {
	cols, ok := findConsumptionColumns(t.header)
	if !ok {
		return nil, &model.ValidationError{
			Source: t.source,
			Field:  "header",
			Value:  strings.Join(t.header, string(Separator)),
			Err:    fmt.Errorf("%w: need date, hour and consumption columns", model.ErrMissingColumn),
		}
	}

	layout := dayFirstLayout
	for _, row := range t.rows {
		if d := strings.TrimSpace(row[cols.date]); d != "" {
			layout = dateLayout(normaliseDate(d))
			break
		}
	}

	records := make([]model.ConsumptionRecord, 0, len(t.rows))
	for i, row := range t.rows {
		ts, err := parseTimestamp(row[cols.date], row[cols.hour], layout)
		if err != nil {
			return nil, &model.ValidationError{
				Source: t.source,
				Line:   t.lines[i],
				Field:  t.header[cols.date] + " " + t.header[cols.hour],
				Value:  row[cols.date] + " " + row[cols.hour],
				Err:    err,
			}
		}

		kwh, err := parseDecimal(row[cols.energy])
		if err == nil && kwh < 0 {
			err = model.ErrNegativeEnergy
		}
		if err != nil {
			return nil, &model.ValidationError{
				Source: t.source,
				Line:   t.lines[i],
				Field:  t.header[cols.energy],
				Value:  row[cols.energy],
				Err:    err,
			}
		}

		records = append(records, model.NewConsumptionRecord(ts, kwh))
	}

	slices.SortStableFunc(records, func(a, b model.ConsumptionRecord) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return records, nil
}
