package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

var ErrClassification = errors.New("period classification failed")

// ClassifyHour maps an hour of the day to its billing period. Weekends are
// off-peak all day; weekdays split into valle 00-08, punta 10-14 and 18-22,
// and llano for the remaining hours.
func ClassifyHour(hour int, isWeekend bool) (model.Period, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour %d outside 0-23", ErrClassification, hour)
	}

	switch {
	case isWeekend:
		return model.OffPeakWeekend, nil
	case hour < 8:
		return model.OffPeakWeekday, nil
	case (hour >= 10 && hour < 14) || (hour >= 18 && hour < 22):
		return model.PeakWeekday, nil
	default:
		return model.MidWeekday, nil
	}
}

func Classify(ts time.Time, isWeekend bool) (model.Period, error) {
	return ClassifyHour(ts.Hour(), isWeekend)
}

// ClassifyAll returns one period per record, in record order. A record whose
// weekend flag disagrees with its timestamp is rejected.
func ClassifyAll(records []model.ConsumptionRecord) ([]model.Period, error) {
	periods := make([]model.Period, len(records))
	for i, rec := range records {
		if rec.IsWeekend != model.IsWeekend(rec.Timestamp) {
			return nil, &model.ValidationError{
				Source: "consumption",
				Line:   i + 1,
				Field:  "is_weekend",
				Value:  fmt.Sprintf("%t on %s", rec.IsWeekend, rec.Timestamp.Weekday()),
				Err:    model.ErrWeekendMismatch,
			}
		}
		p, err := Classify(rec.Timestamp, rec.IsWeekend)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.Timestamp.Format(time.DateTime), err)
		}
		periods[i] = p
	}
	return periods, nil
}

// SumByPeriod accumulates kWh per period in record order. periods must be
// parallel to records.
func SumByPeriod(records []model.ConsumptionRecord, periods []model.Period) model.PeriodEnergy {
	var energy model.PeriodEnergy
	for i, rec := range records {
		energy.Add(periods[i], rec.KWh)
	}
	return energy
}
