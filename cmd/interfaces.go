package cmd

import (
	"context"

	"github.com/anicoll/tariff-simulator/internal/pkg/ingest"
	"github.com/anicoll/tariff-simulator/internal/pkg/model"
	"github.com/anicoll/tariff-simulator/internal/pkg/simulation"
)

// Loader defines what cmd.run expects from the input reader.
type Loader interface {
	Load(ctx context.Context, consumptionName, tariffsName string) (*ingest.Dataset, error)
}

// Simulator defines what cmd.run expects from the cost engine.
type Simulator interface {
	Run(records []model.ConsumptionRecord, tariffs []model.TariffPlan) (*simulation.Result, error)
}

// Publisher receives the result tables of every run.
type Publisher interface {
	Publish(ctx context.Context, tables ...model.Table) error
}
