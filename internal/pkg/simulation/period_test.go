package simulation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

func TestClassifyHour(t *testing.T) {
	tests := map[string]struct {
		hour    int
		weekend bool
		want    model.Period
	}{
		"weekend midnight":   {hour: 0, weekend: true, want: model.OffPeakWeekend},
		"weekend peak hour":  {hour: 12, weekend: true, want: model.OffPeakWeekend},
		"weekday night":      {hour: 0, want: model.OffPeakWeekday},
		"weekday 07":         {hour: 7, want: model.OffPeakWeekday},
		"weekday 08":         {hour: 8, want: model.MidWeekday},
		"weekday 09":         {hour: 9, want: model.MidWeekday},
		"weekday 10":         {hour: 10, want: model.PeakWeekday},
		"weekday 13":         {hour: 13, want: model.PeakWeekday},
		"weekday 14":         {hour: 14, want: model.MidWeekday},
		"weekday 17":         {hour: 17, want: model.MidWeekday},
		"weekday 18":         {hour: 18, want: model.PeakWeekday},
		"weekday 21":         {hour: 21, want: model.PeakWeekday},
		"weekday 22":         {hour: 22, want: model.MidWeekday},
		"weekday last hour":  {hour: 23, want: model.MidWeekday},
		"weekend last hour":  {hour: 23, weekend: true, want: model.OffPeakWeekend},
		"weekend first peak": {hour: 10, weekend: true, want: model.OffPeakWeekend},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ClassifyHour(tt.hour, tt.weekend)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyHour_Exhaustive(t *testing.T) {
	counts := map[model.Period]int{}
	for _, weekend := range []bool{false, true} {
		for hour := 0; hour < 24; hour++ {
			p, err := ClassifyHour(hour, weekend)
			require.NoError(t, err)
			require.True(t, p.Valid(), "hour %d weekend %v", hour, weekend)
			counts[p]++
		}
	}

	assert.Equal(t, 8, counts[model.PeakWeekday])
	assert.Equal(t, 8, counts[model.MidWeekday])
	assert.Equal(t, 8, counts[model.OffPeakWeekday])
	assert.Equal(t, 24, counts[model.OffPeakWeekend])

	// Over a week: five weekdays and two weekend days.
	week := 5*(counts[model.PeakWeekday]+counts[model.MidWeekday]+counts[model.OffPeakWeekday]) +
		2*counts[model.OffPeakWeekend]
	assert.Equal(t, 168, week)
}

func TestClassifyHour_OutOfRange(t *testing.T) {
	for _, hour := range []int{-1, 24, 25} {
		_, err := ClassifyHour(hour, false)
		assert.True(t, errors.Is(err, ErrClassification), "hour %d", hour)
	}
}

func TestClassifyAll_PreservesOrder(t *testing.T) {
	tuesday := time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)
	records := []model.ConsumptionRecord{
		model.NewConsumptionRecord(tuesday.Add(12*time.Hour), 1),
		model.NewConsumptionRecord(tuesday.Add(3*time.Hour), 1),
		model.NewConsumptionRecord(tuesday.Add(4*24*time.Hour+12*time.Hour), 1), // Saturday
		model.NewConsumptionRecord(tuesday.Add(15*time.Hour), 1),
	}

	periods, err := ClassifyAll(records)
	require.NoError(t, err)
	assert.Equal(t, []model.Period{
		model.PeakWeekday,
		model.OffPeakWeekday,
		model.OffPeakWeekend,
		model.MidWeekday,
	}, periods)
}

func TestClassifyAll_RejectsInconsistentWeekendFlag(t *testing.T) {
	tuesday := time.Date(2025, time.January, 7, 12, 0, 0, 0, time.UTC)
	saturday := tuesday.AddDate(0, 0, 4)

	tests := map[string]struct {
		record model.ConsumptionRecord
	}{
		"weekday flagged as weekend": {record: model.ConsumptionRecord{Timestamp: tuesday, KWh: 1, IsWeekend: true}},
		"weekend flagged as weekday": {record: model.ConsumptionRecord{Timestamp: saturday, KWh: 1, IsWeekend: false}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			records := []model.ConsumptionRecord{model.NewConsumptionRecord(tuesday, 1), tt.record}

			periods, err := ClassifyAll(records)
			assert.Nil(t, periods)
			require.ErrorIs(t, err, model.ErrWeekendMismatch)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, 2, verr.Line)
			assert.Equal(t, "is_weekend", verr.Field)
		})
	}
}

func TestSumByPeriod_AddsUpToTotal(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	var records []model.ConsumptionRecord
	total := 0.0
	for h := 0; h < 24*14; h++ {
		kwh := float64(h%7) * 0.125
		total += kwh
		records = append(records, model.NewConsumptionRecord(start.Add(time.Duration(h)*time.Hour), kwh))
	}

	periods, err := ClassifyAll(records)
	require.NoError(t, err)
	energy := SumByPeriod(records, periods)

	assert.InDelta(t, total, energy.Total(), 1e-9)
	for _, p := range model.Periods {
		assert.Greater(t, energy[p], 0.0, p.String())
	}
}
