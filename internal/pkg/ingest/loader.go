package ingest

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// Dataset is the validated input of a simulation run.
type Dataset struct {
	Consumption []model.ConsumptionRecord
	Tariffs     []model.TariffPlan
}

type Loader struct {
	dataDir string
	logger  *zap.Logger
}

// New returns a loader resolving relative file names against dataDir.
func New(dataDir string) *Loader {
	return &Loader{
		dataDir: dataDir,
		logger:  zap.L(),
	}
}

func (l *Loader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.dataDir, name)
}

// Consumption reads an hourly Datadis export.
func (l *Loader) Consumption(name string) ([]model.ConsumptionRecord, error) {
	t, err := readRawTable(l.path(name))
	if err != nil {
		return nil, err
	}
	records, err := parseConsumption(t)
	if err != nil {
		return nil, err
	}
	l.logger.Info("consumption loaded",
		zap.String("file", t.source),
		zap.String("encoding", t.encoding),
		zap.Int("records", len(records)),
	)
	return records, nil
}

// Tariffs reads the tariff catalog.
func (l *Loader) Tariffs(name string) ([]model.TariffPlan, error) {
	t, err := readRawTable(l.path(name))
	if err != nil {
		return nil, err
	}
	plans, duplicates, err := parseTariffs(t)
	if err != nil {
		return nil, err
	}
	l.logger.Info("tariff catalog loaded",
		zap.String("file", t.source),
		zap.String("encoding", t.encoding),
		zap.Int("tariffs", len(plans)),
		zap.Int("duplicates_dropped", duplicates),
	)
	return plans, nil
}

// Load reads both inputs concurrently. It fails if either file is invalid.
func (l *Loader) Load(ctx context.Context, consumptionName, tariffsName string) (*Dataset, error) {
	var ds Dataset
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		records, err := l.Consumption(consumptionName)
		if err != nil {
			return err
		}
		ds.Consumption = records
		return ctx.Err()
	})
	eg.Go(func() error {
		plans, err := l.Tariffs(tariffsName)
		if err != nil {
			return err
		}
		ds.Tariffs = plans
		return ctx.Err()
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}
