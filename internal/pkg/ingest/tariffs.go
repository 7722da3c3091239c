package ingest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

const (
	colProvider     = "comercializadora"
	colPlan         = "tarifa"
	colPeak         = "punta_LV"
	colMid          = "llano_LV"
	colOffPeak      = "valle_LV"
	colWeekend      = "valle_SD"
	colFixedOffPeak = "potencia_mes_valle"
	colFixedPeakMid = "potencia_mes_punta_llano"
)

var tariffColumns = []string{
	colProvider,
	colPlan,
	colPeak,
	colMid,
	colOffPeak,
	colWeekend,
	colFixedOffPeak,
	colFixedPeakMid,
}

// parseTariffs reads the tariff catalog, keeping the first plan of every
// (provider, plan) pair in file order. It also returns how many duplicates
// were dropped.
func parseTariffs(t *rawTable) ([]model.TariffPlan, int, error) {
	index := make(map[string]int, len(tariffColumns))
	var missing []string
	for _, name := range tariffColumns {
		i := t.column(name)
		if i < 0 {
			missing = append(missing, name)
			continue
		}
		index[name] = i
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, 0, &model.ValidationError{
			Source: t.source,
			Field:  "header",
			Err:    fmt.Errorf("%w: %s", model.ErrMissingColumn, strings.Join(missing, ", ")),
		}
	}

	plans := make([]model.TariffPlan, 0, len(t.rows))
	for i, row := range t.rows {
		plan := model.TariffPlan{
			Provider: strings.TrimSpace(row[index[colProvider]]),
			Plan:     strings.TrimSpace(row[index[colPlan]]),
		}
		fields := map[string]*float64{
			colPeak:         &plan.PricePeak,
			colMid:          &plan.PriceMid,
			colOffPeak:      &plan.PriceOffPeakWeekday,
			colWeekend:      &plan.PriceOffPeakWeekend,
			colFixedOffPeak: &plan.FixedChargeOffPeakMonthly,
			colFixedPeakMid: &plan.FixedChargePeakMidMonthly,
		}
		for _, name := range tariffColumns[2:] {
			raw := row[index[name]]
			v, err := parseDecimal(raw)
			if err != nil {
				return nil, 0, &model.ValidationError{
					Source: t.source,
					Line:   t.lines[i],
					Field:  name,
					Value:  raw,
					Err:    err,
				}
			}
			*fields[name] = v
		}
		plans = append(plans, plan)
	}

	unique := lo.UniqBy(plans, model.TariffPlan.Key)
	if len(unique) == 0 {
		return nil, 0, &model.ValidationError{Source: t.source, Err: model.ErrEmptyCatalog}
	}
	return unique, len(plans) - len(unique), nil
}
