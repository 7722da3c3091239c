package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

func TestSafePct(t *testing.T) {
	tests := map[string]struct {
		part, total float64
		want        float64
	}{
		"zero total":          {part: 42, total: 0, want: 0},
		"zero total negative": {part: -3, total: 0, want: 0},
		"half":                {part: 5, total: 10, want: 50},
		"whole":               {part: 7, total: 7, want: 100},
		"negative part":       {part: -1, total: 4, want: -25},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SafePct(tt.part, tt.total), 1e-12)
		})
	}
}

func TestMedian(t *testing.T) {
	tests := map[string]struct {
		values []float64
		want   float64
	}{
		"empty":  {values: nil, want: 0},
		"single": {values: []float64{3}, want: 3},
		"odd":    {values: []float64{9, 1, 5}, want: 5},
		"even":   {values: []float64{4, 1, 3, 2}, want: 2.5},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.values))
		})
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestReferences_Savings(t *testing.T) {
	refs := NewReferences([]float64{100, 80, 120, 90})
	assert.Equal(t, 95.0, refs.Median)
	assert.Equal(t, 120.0, refs.Worst)

	s := refs.Savings(80)
	assert.Equal(t, 15.0, s.VsMedianAbs)
	assert.InDelta(t, 100*15.0/95, s.VsMedianPct, 1e-12)
	assert.Equal(t, 40.0, s.VsWorstAbs)
	assert.InDelta(t, 100*40.0/120, s.VsWorstPct, 1e-12)
}

func TestReferences_ZeroReference(t *testing.T) {
	s := NewReferences([]float64{0, 0}).Savings(0)
	assert.Zero(t, s.VsMedianPct)
	assert.Zero(t, s.VsWorstPct)
}

func TestNewCostShare(t *testing.T) {
	share := NewCostShare(CostBreakdown{EnergyCost: 75, PowerCost: 25, TotalCost: 100})
	assert.Equal(t, 75.0, share.PctEnergy)
	assert.Equal(t, 25.0, share.PctPower)

	assert.Equal(t, CostShare{}, NewCostShare(CostBreakdown{}))
}

func TestNewDistribution(t *testing.T) {
	d := NewDistribution(model.PeriodEnergy{10, 30, 40, 20})
	want := [model.NumPeriods]float64{10, 30, 40, 20}
	for _, p := range model.Periods {
		assert.InDelta(t, want[p], d.Pct[p], 1e-9, p.String())
	}

	empty := NewDistribution(model.PeriodEnergy{})
	assert.Equal(t, [model.NumPeriods]float64{}, empty.Pct)
}
