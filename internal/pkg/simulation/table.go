package simulation

import (
	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

const (
	AnnualTableName  = "ranking_tarifas_anual"
	MonthlyTableName = "ranking_tarifas_mensual"
)

// Column names are shared with the spreadsheets built on top of the CSV
// exports, so they stay in Spanish.
var annualColumns = []string{
	"comercializadora",
	"tarifa",
	"kwh_anuales",
	"coste_energia_anual",
	"coste_potencia_anual",
	"coste_total_anual",
	"coste_medio_eur_kwh",
	"ref_mediana_coste_total_anual",
	"ref_peor_coste_total_anual",
	"ahorro_vs_mediana_eur_anual",
	"ahorro_vs_peor_eur_anual",
	"ahorro_vs_mediana_pct_anual",
	"ahorro_vs_peor_pct_anual",
	"pct_coste_energia_anual",
	"pct_coste_potencia_anual",
	"kwh_punta_LV",
	"kwh_llano_LV",
	"kwh_valle_LV",
	"kwh_valle_SD",
	"pct_kwh_punta_LV",
	"pct_kwh_llano_LV",
	"pct_kwh_valle_LV",
	"pct_kwh_valle_SD",
}

var monthlyColumns = []string{
	"anio",
	"mes",
	"comercializadora",
	"tarifa",
	"kwh_mes",
	"coste_energia_mes",
	"coste_potencia_mes",
	"coste_total_mes",
	"coste_medio_eur_kwh_mes",
	"ref_mediana_coste_total_mes",
	"ref_peor_coste_total_mes",
	"ahorro_vs_mediana_eur_mes",
	"ahorro_vs_mediana_pct_mes",
	"ahorro_vs_peor_eur_mes",
	"ahorro_vs_peor_pct_mes",
	"pct_coste_energia_mes",
	"pct_coste_potencia_mes",
	"kwh_punta_LV_mes",
	"kwh_llano_LV_mes",
	"kwh_valle_LV_mes",
	"kwh_valle_SD_mes",
	"pct_kwh_punta_LV_mes",
	"pct_kwh_llano_LV_mes",
	"pct_kwh_valle_LV_mes",
	"pct_kwh_valle_SD_mes",
}

func (r RankingRow) Record() map[string]any {
	rec := map[string]any{
		"comercializadora":              r.Tariff.Provider,
		"tarifa":                        r.Tariff.Plan,
		"kwh_anuales":                   r.Cost.TotalKWh,
		"coste_energia_anual":           r.Cost.EnergyCost,
		"coste_potencia_anual":          r.Cost.PowerCost,
		"coste_total_anual":             r.Cost.TotalCost,
		"coste_medio_eur_kwh":           r.Cost.AvgUnitCost,
		"ref_mediana_coste_total_anual": r.Savings.RefMedianTotalCost,
		"ref_peor_coste_total_anual":    r.Savings.RefWorstTotalCost,
		"ahorro_vs_mediana_eur_anual":   r.Savings.VsMedianAbs,
		"ahorro_vs_peor_eur_anual":      r.Savings.VsWorstAbs,
		"ahorro_vs_mediana_pct_anual":   r.Savings.VsMedianPct,
		"ahorro_vs_peor_pct_anual":      r.Savings.VsWorstPct,
		"pct_coste_energia_anual":       r.Share.PctEnergy,
		"pct_coste_potencia_anual":      r.Share.PctPower,
	}
	addDistribution(rec, r.Distribution, "")
	return rec
}

func (r MonthlyBestRow) Record() map[string]any {
	rec := map[string]any{
		"anio":                        r.Month.Year,
		"mes":                         int(r.Month.Month),
		"comercializadora":            r.Tariff.Provider,
		"tarifa":                      r.Tariff.Plan,
		"kwh_mes":                     r.Cost.TotalKWh,
		"coste_energia_mes":           r.Cost.EnergyCost,
		"coste_potencia_mes":          r.Cost.PowerCost,
		"coste_total_mes":             r.Cost.TotalCost,
		"coste_medio_eur_kwh_mes":     r.Cost.AvgUnitCost,
		"ref_mediana_coste_total_mes": r.Savings.RefMedianTotalCost,
		"ref_peor_coste_total_mes":    r.Savings.RefWorstTotalCost,
		"ahorro_vs_mediana_eur_mes":   r.Savings.VsMedianAbs,
		"ahorro_vs_mediana_pct_mes":   r.Savings.VsMedianPct,
		"ahorro_vs_peor_eur_mes":      r.Savings.VsWorstAbs,
		"ahorro_vs_peor_pct_mes":      r.Savings.VsWorstPct,
		"pct_coste_energia_mes":       r.Share.PctEnergy,
		"pct_coste_potencia_mes":      r.Share.PctPower,
	}
	addDistribution(rec, r.Distribution, "_mes")
	return rec
}

func addDistribution(rec map[string]any, d Distribution, suffix string) {
	for _, p := range model.Periods {
		rec["kwh_"+p.String()+suffix] = d.KWh[p]
		rec["pct_kwh_"+p.String()+suffix] = d.Pct[p]
	}
}

// RankingTable flattens the annual ranking. The cheapest tariff is the
// headline row.
func RankingTable(rows []RankingRow) model.Table {
	t := model.Table{
		Name:    AnnualTableName,
		Title:   "Ranking anual de tarifas",
		Columns: annualColumns,
		Key:     []string{"comercializadora", "tarifa"},
		Summary: []string{
			"comercializadora",
			"tarifa",
			"coste_total_anual",
			"coste_medio_eur_kwh",
			"ahorro_vs_peor_eur_anual",
		},
		Rows:      make([]map[string]any, 0, len(rows)),
		Highlight: -1,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Record())
	}
	if len(t.Rows) > 0 {
		t.Highlight = 0
	}
	return t
}

// MonthlyTable flattens the monthly winners. The latest month is the
// headline row.
func MonthlyTable(rows []MonthlyBestRow) model.Table {
	t := model.Table{
		Name:    MonthlyTableName,
		Title:   "Mejor tarifa por mes",
		Columns: monthlyColumns,
		Key:     []string{"anio", "mes"},
		Summary: []string{
			"anio",
			"mes",
			"comercializadora",
			"tarifa",
			"coste_total_mes",
			"ahorro_vs_mediana_eur_mes",
		},
		Rows:      make([]map[string]any, 0, len(rows)),
		Highlight: len(rows) - 1,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Record())
	}
	return t
}
