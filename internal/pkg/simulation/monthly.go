package simulation

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func (m Month) Compare(o Month) int {
	if m.Year != o.Year {
		return m.Year - o.Year
	}
	return int(m.Month) - int(o.Month)
}

func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// MonthlyBestRow is the cheapest tariff of one month.
type MonthlyBestRow struct {
	Month        Month
	Tariff       model.TariffPlan
	Cost         CostBreakdown
	Savings      Savings
	Share        CostShare
	Distribution Distribution
}

type tariffCost struct {
	tariff model.TariffPlan
	cost   CostBreakdown
}

// BestByMonth picks, for every calendar month present in records, the tariff
// with the lowest total cost. Ties go to the tariff listed first in the
// catalog. Rows are returned in chronological order.
func BestByMonth(records []model.ConsumptionRecord, tariffs []model.TariffPlan, power ContractedPower) ([]MonthlyBestRow, error) {
	if len(tariffs) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	periods, err := ClassifyAll(records)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[Month]*model.PeriodEnergy)
	for i, rec := range records {
		key := Month{Year: rec.Timestamp.Year(), Month: rec.Timestamp.Month()}
		energy, ok := byMonth[key]
		if !ok {
			energy = &model.PeriodEnergy{}
			byMonth[key] = energy
		}
		energy.Add(periods[i], rec.KWh)
	}

	months := lo.Keys(byMonth)
	slices.SortFunc(months, Month.Compare)

	rows := make([]MonthlyBestRow, 0, len(months))
	for _, m := range months {
		rows = append(rows, bestForMonth(m, *byMonth[m], tariffs, power))
	}
	return rows, nil
}

func bestForMonth(m Month, energy model.PeriodEnergy, tariffs []model.TariffPlan, power ContractedPower) MonthlyBestRow {
	costs := lo.Map(tariffs, func(t model.TariffPlan, _ int) tariffCost {
		return tariffCost{tariff: t, cost: Aggregate(energy, t, power, MonthlyMultiplier)}
	})

	best := lo.MinBy(costs, func(a, b tariffCost) bool {
		return a.cost.TotalCost < b.cost.TotalCost
	})

	refs := NewReferences(lo.Map(costs, func(c tariffCost, _ int) float64 {
		return c.cost.TotalCost
	}))

	return MonthlyBestRow{
		Month:        m,
		Tariff:       best.tariff,
		Cost:         best.cost,
		Savings:      refs.Savings(best.cost.TotalCost),
		Share:        NewCostShare(best.cost),
		Distribution: NewDistribution(energy),
	}
}
