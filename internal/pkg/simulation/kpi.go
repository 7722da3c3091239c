package simulation

import (
	"slices"

	"github.com/samber/lo"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// SafePct returns part as a percentage of total, or 0 when total is 0.
func SafePct(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Median of values; the mean of the two middle values for even counts.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func Worst(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Max(values)
}

// Savings compares a total cost with the median and worst totals of the
// same window. Positive savings mean the tariff is cheaper than the reference.
type Savings struct {
	RefMedianTotalCost float64
	RefWorstTotalCost  float64
	VsMedianAbs        float64
	VsMedianPct        float64
	VsWorstAbs         float64
	VsWorstPct         float64
}

// References holds the median and worst totals of a comparison window.
type References struct {
	Median float64
	Worst  float64
}

func NewReferences(totals []float64) References {
	return References{Median: Median(totals), Worst: Worst(totals)}
}

func (r References) Savings(total float64) Savings {
	vsMedian := r.Median - total
	vsWorst := r.Worst - total
	return Savings{
		RefMedianTotalCost: r.Median,
		RefWorstTotalCost:  r.Worst,
		VsMedianAbs:        vsMedian,
		VsMedianPct:        SafePct(vsMedian, r.Median),
		VsWorstAbs:         vsWorst,
		VsWorstPct:         SafePct(vsWorst, r.Worst),
	}
}

// CostShare splits a total cost into its energy and power percentages.
type CostShare struct {
	PctEnergy float64
	PctPower  float64
}

func NewCostShare(c CostBreakdown) CostShare {
	return CostShare{
		PctEnergy: SafePct(c.EnergyCost, c.TotalCost),
		PctPower:  SafePct(c.PowerCost, c.TotalCost),
	}
}

// Distribution is the share of the window's energy that fell in each period.
type Distribution struct {
	KWh model.PeriodEnergy
	Pct [model.NumPeriods]float64
}

func NewDistribution(energy model.PeriodEnergy) Distribution {
	total := energy.Total()
	d := Distribution{KWh: energy}
	for _, p := range model.Periods {
		d.Pct[p] = SafePct(energy[p], total)
	}
	return d
}

func totalCosts(costs []CostBreakdown) []float64 {
	return lo.Map(costs, func(c CostBreakdown, _ int) float64 {
		return c.TotalCost
	})
}
