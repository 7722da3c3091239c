package simulation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

func TestRankAnnual_TuesdayNoonScenario(t *testing.T) {
	tuesdayNoon := time.Date(2025, time.January, 7, 12, 0, 0, 0, time.UTC)
	records := []model.ConsumptionRecord{model.NewConsumptionRecord(tuesdayNoon, 100)}
	tariff := model.TariffPlan{
		Provider:            "Acme",
		Plan:                "Base",
		PricePeak:           0.20,
		PriceMid:            0.15,
		PriceOffPeakWeekday: 0.10,
		PriceOffPeakWeekend: 0.08,
	}

	rows, err := RankAnnual(records, []model.TariffPlan{tariff}, ContractedPower{OffPeakKW: 3.45, PeakMidKW: 4.6})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.InDelta(t, 20.0, row.Cost.EnergyCost, 1e-9)
	assert.Zero(t, row.Cost.PowerCost)
	assert.InDelta(t, 20.0, row.Cost.TotalCost, 1e-9)
	assert.InDelta(t, 100.0, row.Share.PctEnergy, 1e-9)
	assert.Zero(t, row.Share.PctPower)
	assert.Equal(t, 100.0, row.Distribution.KWh[model.PeakWeekday])
	assert.Equal(t, 100.0, row.Distribution.Pct[model.PeakWeekday])
	assert.Zero(t, row.Savings.VsWorstAbs)
	assert.Zero(t, row.Savings.VsMedianAbs)
}

func TestRankAnnual_SortedCheapestFirst(t *testing.T) {
	records := hourly(time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), 24*30, 0.5)
	tariffs := []model.TariffPlan{
		flatTariff("A", "cara", 0.30, 4),
		flatTariff("B", "barata", 0.10, 2),
		peakTariff("C", "discriminacion"),
		flatTariff("D", "media", 0.18, 3),
	}
	power := ContractedPower{OffPeakKW: 3.45, PeakMidKW: 4.6}

	rows, err := RankAnnual(records, tariffs, power)
	require.NoError(t, err)
	require.Len(t, rows, len(tariffs))

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Cost.TotalCost, rows[i].Cost.TotalCost)
	}
	top := rows[0]
	assert.GreaterOrEqual(t, top.Savings.VsWorstAbs, 0.0)
	for _, r := range rows[1:] {
		assert.LessOrEqual(t, top.Cost.TotalCost, r.Cost.TotalCost)
	}

	worst := rows[len(rows)-1]
	assert.Equal(t, worst.Cost.TotalCost, top.Savings.RefWorstTotalCost)
	assert.Zero(t, worst.Savings.VsWorstAbs)
	assert.Equal(t, "A", worst.Tariff.Provider)

	median := (rows[1].Cost.TotalCost + rows[2].Cost.TotalCost) / 2
	for _, r := range rows {
		assert.Equal(t, median, r.Savings.RefMedianTotalCost)
		assert.Equal(t, top.Distribution, r.Distribution)
	}
}

func TestRankAnnual_TiesKeepCatalogOrder(t *testing.T) {
	records := hourly(time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC), 48, 1)
	tariffs := []model.TariffPlan{
		flatTariff("Zeta", "uno", 0.2, 1),
		flatTariff("Alfa", "dos", 0.2, 1),
		flatTariff("Beta", "tres", 0.1, 1),
		flatTariff("Gamma", "cuatro", 0.2, 1),
	}

	rows, err := RankAnnual(records, tariffs, ContractedPower{OffPeakKW: 1, PeakMidKW: 1})
	require.NoError(t, err)

	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.Tariff.Provider)
	}
	assert.Equal(t, []string{"Beta", "Zeta", "Alfa", "Gamma"}, got)
}

func TestRankAnnual_NoConsumption(t *testing.T) {
	rows, err := RankAnnual(nil, []model.TariffPlan{flatTariff("A", "a", 0.1, 2)}, ContractedPower{OffPeakKW: 1, PeakMidKW: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Zero(t, rows[0].Cost.TotalKWh)
	assert.Zero(t, rows[0].Cost.AvgUnitCost)
	assert.Equal(t, 48.0, rows[0].Cost.PowerCost)
	assert.Equal(t, [model.NumPeriods]float64{}, rows[0].Distribution.Pct)
}

func TestRankAnnual_EmptyCatalog(t *testing.T) {
	_, err := RankAnnual(hourly(time.Now(), 2, 1), nil, ContractedPower{})
	assert.True(t, errors.Is(err, model.ErrEmptyCatalog))
}
