package model

import "time"

// ConsumptionRecord is one metered interval.
type ConsumptionRecord struct {
	Timestamp time.Time `json:"timestamp"`
	KWh       float64   `json:"kwh"`
	IsWeekend bool      `json:"is_weekend"`
}

// NewConsumptionRecord derives the weekend flag from the timestamp.
func NewConsumptionRecord(ts time.Time, kwh float64) ConsumptionRecord {
	return ConsumptionRecord{
		Timestamp: ts,
		KWh:       kwh,
		IsWeekend: IsWeekend(ts),
	}
}

func IsWeekend(ts time.Time) bool {
	wd := ts.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
