package simulation

import (
	"time"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

func hourly(start time.Time, hours int, kwh float64) []model.ConsumptionRecord {
	records := make([]model.ConsumptionRecord, 0, hours)
	for h := 0; h < hours; h++ {
		records = append(records, model.NewConsumptionRecord(start.Add(time.Duration(h)*time.Hour), kwh))
	}
	return records
}

func flatTariff(provider, plan string, price, fixed float64) model.TariffPlan {
	return model.TariffPlan{
		Provider:                  provider,
		Plan:                      plan,
		PricePeak:                 price,
		PriceMid:                  price,
		PriceOffPeakWeekday:       price,
		PriceOffPeakWeekend:       price,
		FixedChargeOffPeakMonthly: fixed,
		FixedChargePeakMidMonthly: fixed,
	}
}

// peakTariff is cheap at night and expensive at peak.
func peakTariff(provider, plan string) model.TariffPlan {
	return model.TariffPlan{
		Provider:            provider,
		Plan:                plan,
		PricePeak:           0.30,
		PriceMid:            0.15,
		PriceOffPeakWeekday: 0.05,
		PriceOffPeakWeekend: 0.05,
	}
}
