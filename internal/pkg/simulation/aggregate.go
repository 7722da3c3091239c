package simulation

import "github.com/anicoll/tariff-simulator/internal/pkg/model"

const (
	// AnnualMultiplier bills the monthly fixed charges twelve times.
	AnnualMultiplier  = 12.0
	MonthlyMultiplier = 1.0
)

// ContractedPower is the capacity reserved by the consumer, in kW.
type ContractedPower struct {
	OffPeakKW float64
	PeakMidKW float64
}

// CostBreakdown is the cost of one tariff over one window.
type CostBreakdown struct {
	TotalKWh    float64
	EnergyCost  float64
	PowerCost   float64
	TotalCost   float64
	AvgUnitCost float64
}

// Aggregate prices the energy of a window with tariff and adds the fixed
// power charges multiplied by multiplier.
func Aggregate(energy model.PeriodEnergy, tariff model.TariffPlan, power ContractedPower, multiplier float64) CostBreakdown {
	var energyCost float64
	for _, p := range model.Periods {
		energyCost += energy[p] * tariff.UnitPrice(p)
	}

	powerCost := tariff.FixedChargeOffPeakMonthly*power.OffPeakKW*multiplier +
		tariff.FixedChargePeakMidMonthly*power.PeakMidKW*multiplier

	total := energyCost + powerCost
	totalKWh := energy.Total()

	avg := 0.0
	if totalKWh > 0 {
		avg = total / totalKWh
	}

	return CostBreakdown{
		TotalKWh:    totalKWh,
		EnergyCost:  energyCost,
		PowerCost:   powerCost,
		TotalCost:   total,
		AvgUnitCost: avg,
	}
}
