package simulation

import (
	"go.uber.org/zap"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// Result holds both output tables of one run.
type Result struct {
	Ranking []RankingRow
	Monthly []MonthlyBestRow
}

func (r *Result) Tables() []model.Table {
	return []model.Table{RankingTable(r.Ranking), MonthlyTable(r.Monthly)}
}

type Simulator struct {
	power  ContractedPower
	logger *zap.Logger
}

func New(power ContractedPower) *Simulator {
	return &Simulator{
		power:  power,
		logger: zap.L(),
	}
}

// Run computes the annual ranking and the monthly winners. Either both are
// returned or neither is.
func (s *Simulator) Run(records []model.ConsumptionRecord, tariffs []model.TariffPlan) (*Result, error) {
	ranking, err := RankAnnual(records, tariffs, s.power)
	if err != nil {
		return nil, err
	}
	s.logger.Info("annual ranking computed", zap.Int("tariffs", len(ranking)))

	monthly, err := BestByMonth(records, tariffs, s.power)
	if err != nil {
		return nil, err
	}
	s.logger.Info("monthly best tariffs computed", zap.Int("months", len(monthly)))

	return &Result{Ranking: ranking, Monthly: monthly}, nil
}
