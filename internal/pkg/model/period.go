package model

import "strconv"

// Period is one of the four fixed billing periods of a day.
type Period int

const (
	PeakWeekday Period = iota
	MidWeekday
	OffPeakWeekday
	OffPeakWeekend
)

// NumPeriods is the size of the Period partition.
const NumPeriods = 4

// Periods lists every Period in billing order.
var Periods = [NumPeriods]Period{
	PeakWeekday,
	MidWeekday,
	OffPeakWeekday,
	OffPeakWeekend,
}

// String returns the label used in the tariff catalog and the output columns.
func (p Period) String() string {
	switch p {
	case PeakWeekday:
		return "punta_LV"
	case MidWeekday:
		return "llano_LV"
	case OffPeakWeekday:
		return "valle_LV"
	case OffPeakWeekend:
		return "valle_SD"
	}
	return "Period(" + strconv.Itoa(int(p)) + ")"
}

func (p Period) Valid() bool {
	return p >= PeakWeekday && p <= OffPeakWeekend
}

// PeriodEnergy holds kWh per Period, indexed by Period.
type PeriodEnergy [NumPeriods]float64

func (e *PeriodEnergy) Add(p Period, kwh float64) {
	e[p] += kwh
}

// Total sums the four periods in billing order.
func (e PeriodEnergy) Total() float64 {
	return e[PeakWeekday] + e[MidWeekday] + e[OffPeakWeekday] + e[OffPeakWeekend]
}
