package model

// TariffPlan is a priced offering from a provider.
type TariffPlan struct {
	Provider string `json:"comercializadora"`
	Plan     string `json:"tarifa"`

	// per kWh
	PricePeak           float64 `json:"punta_LV"`
	PriceMid            float64 `json:"llano_LV"`
	PriceOffPeakWeekday float64 `json:"valle_LV"`
	PriceOffPeakWeekend float64 `json:"valle_SD"`

	// per kW and month
	FixedChargeOffPeakMonthly float64 `json:"potencia_mes_valle"`
	FixedChargePeakMidMonthly float64 `json:"potencia_mes_punta_llano"`
}

// TariffKey identifies a plan within a catalog.
type TariffKey struct {
	Provider string
	Plan     string
}

func (t TariffPlan) Key() TariffKey {
	return TariffKey{Provider: t.Provider, Plan: t.Plan}
}

// UnitPrice returns the energy price that applies in p.
func (t TariffPlan) UnitPrice(p Period) float64 {
	switch p {
	case PeakWeekday:
		return t.PricePeak
	case MidWeekday:
		return t.PriceMid
	case OffPeakWeekday:
		return t.PriceOffPeakWeekday
	case OffPeakWeekend:
		return t.PriceOffPeakWeekend
	}
	return 0
}
