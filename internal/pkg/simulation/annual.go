package simulation

import (
	"slices"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// RankingRow is the annual cost of one tariff with its comparison KPIs.
type RankingRow struct {
	Tariff       model.TariffPlan
	Cost         CostBreakdown
	Savings      Savings
	Share        CostShare
	Distribution Distribution
}

// RankAnnual prices the whole consumption with every tariff and returns the
// tariffs cheapest first. Tariffs with equal totals keep catalog order.
func RankAnnual(records []model.ConsumptionRecord, tariffs []model.TariffPlan, power ContractedPower) ([]RankingRow, error) {
	if len(tariffs) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	periods, err := ClassifyAll(records)
	if err != nil {
		return nil, err
	}
	energy := SumByPeriod(records, periods)
	distribution := NewDistribution(energy)

	rows := make([]RankingRow, len(tariffs))
	costs := make([]CostBreakdown, len(tariffs))
	for i, t := range tariffs {
		costs[i] = Aggregate(energy, t, power, AnnualMultiplier)
		rows[i] = RankingRow{
			Tariff:       t,
			Cost:         costs[i],
			Share:        NewCostShare(costs[i]),
			Distribution: distribution,
		}
	}

	slices.SortStableFunc(rows, func(a, b RankingRow) int {
		switch {
		case a.Cost.TotalCost < b.Cost.TotalCost:
			return -1
		case a.Cost.TotalCost > b.Cost.TotalCost:
			return 1
		}
		return 0
	})

	refs := NewReferences(totalCosts(costs))
	for i := range rows {
		rows[i].Savings = refs.Savings(rows[i].Cost.TotalCost)
	}
	return rows, nil
}
