package cmd

import (
	"context"

	paho_mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anicoll/tariff-simulator/internal/pkg/config"
	"github.com/anicoll/tariff-simulator/internal/pkg/export"
	"github.com/anicoll/tariff-simulator/internal/pkg/ingest"
	"github.com/anicoll/tariff-simulator/internal/pkg/mqtt"
	"github.com/anicoll/tariff-simulator/internal/pkg/publisher"
	"github.com/anicoll/tariff-simulator/internal/pkg/simulation"
)

func SimulateCommand(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}
	applyFlags(ctx, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level, err = zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logCfg.OutputPaths = []string{"stdout"}
	logCfg.ErrorOutputPaths = []string{"stdout"}
	logCfg.Sampling = nil
	logger := zap.Must(logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)))
	defer func() {
		_ = logger.Sync() // flushes buffer, if any.
	}()
	zap.ReplaceGlobals(logger)

	return run(ctx.Context, cfg)
}

// applyFlags overrides cfg with the flags given on the command line or
// through their environment variables.
func applyFlags(ctx *cli.Context, cfg *config.Config) {
	strs := map[string]*string{
		"data-dir":          &cfg.Paths.DataDir,
		"out-dir":           &cfg.Paths.OutDir,
		"consumption-file":  &cfg.Paths.ConsumptionFile,
		"tariffs-file":      &cfg.Paths.TariffsFile,
		"csv-separator":     &cfg.Output.CSVSeparator,
		"decimal-separator": &cfg.Output.DecimalSeparator,
		"mqtt-host":         &cfg.Mqtt.Host,
		"mqtt-user":         &cfg.Mqtt.Username,
		"mqtt-pass":         &cfg.Mqtt.Password,
		"mqtt-topic-prefix": &cfg.Mqtt.TopicPrefix,
		"schedule":          &cfg.Schedule,
		"log-level":         &cfg.LogLevel,
	}
	for name, field := range strs {
		if ctx.IsSet(name) {
			*field = ctx.String(name)
		}
	}

	floats := map[string]*float64{
		"power-offpeak-kw": &cfg.Power.OffPeakKW,
		"power-peakmid-kw": &cfg.Power.PeakMidKW,
	}
	for name, field := range floats {
		if ctx.IsSet(name) {
			*field = ctx.Float64(name)
		}
	}

	ints := map[string]*int{
		"decimals":     &cfg.Output.Decimals,
		"summary-rows": &cfg.Output.SummaryRows,
	}
	for name, field := range ints {
		if ctx.IsSet(name) {
			*field = ctx.Int(name)
		}
	}

	bools := map[string]*bool{
		"bom":  &cfg.Output.BOM,
		"xlsx": &cfg.Output.XLSX,
		"pdf":  &cfg.Output.PDF,
	}
	for name, field := range bools {
		if ctx.IsSet(name) {
			*field = ctx.Bool(name)
		}
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	registry := publisher.New()
	format := exportFormat(cfg)

	if err := registry.Register("csv", export.NewCSV(cfg.Paths.OutDir, format)); err != nil {
		return err
	}
	if cfg.Output.XLSX {
		if err := registry.Register("xlsx", export.NewXLSX(cfg.Paths.OutDir, format)); err != nil {
			return err
		}
	}
	if cfg.Output.PDF {
		if err := registry.Register("pdf", export.NewPDF(cfg.Paths.OutDir, format, cfg.Output.SummaryRows)); err != nil {
			return err
		}
	}
	if cfg.Mqtt.Host != "" {
		opts := paho_mqtt.NewClientOptions().
			AddBroker(cfg.Mqtt.Host).
			SetClientID(cfg.Mqtt.TopicPrefix).
			SetUsername(cfg.Mqtt.Username).
			SetPassword(cfg.Mqtt.Password)
		mqttSvc := mqtt.New(paho_mqtt.NewClient(opts), cfg.Mqtt.TopicPrefix)
		if err := mqttSvc.Connect(); err != nil {
			return err
		}
		defer mqttSvc.Disconnect()
		if err := registry.Register("mqtt", mqttSvc); err != nil {
			return err
		}
	}

	a := &app{
		cfg:       cfg,
		loader:    ingest.New(cfg.Paths.DataDir),
		simulator: simulation.New(simulation.ContractedPower{OffPeakKW: cfg.Power.OffPeakKW, PeakMidKW: cfg.Power.PeakMidKW}),
		publisher: registry,
		logger:    zap.L(),
	}
	zap.L().Info("publishers configured", zap.Strings("publishers", registry.Names()))

	if cfg.Schedule == "" {
		return a.runOnce(ctx)
	}
	return a.schedule(ctx)
}

func exportFormat(cfg *config.Config) export.Format {
	sep, dec := cfg.Separators()
	return export.Format{
		Separator: sep,
		Decimal:   dec,
		Decimals:  int32(cfg.Output.Decimals),
		BOM:       cfg.Output.BOM,
	}
}

type app struct {
	cfg       *config.Config
	loader    Loader
	simulator Simulator
	publisher Publisher
	logger    *zap.Logger
}

// runOnce loads the inputs, simulates every tariff and publishes the result
// tables. Nothing is published unless the whole simulation succeeded.
func (a *app) runOnce(ctx context.Context) error {
	ds, err := a.loader.Load(ctx, a.cfg.Paths.ConsumptionFile, a.cfg.Paths.TariffsFile)
	if err != nil {
		return err
	}

	result, err := a.simulator.Run(ds.Consumption, ds.Tariffs)
	if err != nil {
		return err
	}
	a.logSummary(result)

	return a.publisher.Publish(ctx, result.Tables()...)
}

func (a *app) logSummary(result *simulation.Result) {
	top := result.Ranking
	if n := a.cfg.Output.SummaryRows; n > 0 && len(top) > n {
		top = top[:n]
	}
	for i, row := range top {
		a.logger.Info("ranking",
			zap.Int("position", i+1),
			zap.String("provider", row.Tariff.Provider),
			zap.String("plan", row.Tariff.Plan),
			zap.Float64("total_cost", row.Cost.TotalCost),
			zap.Float64("avg_unit_cost", row.Cost.AvgUnitCost),
			zap.Float64("savings_vs_worst", row.Savings.VsWorstAbs),
		)
	}
	for _, row := range result.Monthly {
		a.logger.Info("monthly winner",
			zap.Stringer("month", row.Month),
			zap.String("provider", row.Tariff.Provider),
			zap.String("plan", row.Tariff.Plan),
			zap.Float64("total_cost", row.Cost.TotalCost),
			zap.Float64("savings_vs_median", row.Savings.VsMedianAbs),
		)
	}
	if len(result.Ranking) > 0 {
		best := result.Ranking[0]
		a.logger.Info("best annual tariff",
			zap.String("provider", best.Tariff.Provider),
			zap.String("plan", best.Tariff.Plan),
			zap.Float64("total_cost", best.Cost.TotalCost),
		)
	}
}

// schedule runs once immediately and then on every tick of the cron spec
// until ctx is cancelled. Failed scheduled runs are logged and retried on the
// next tick.
func (a *app) schedule(ctx context.Context) error {
	if err := a.runOnce(ctx); err != nil {
		return err
	}

	c := cron.New()
	if _, err := c.AddFunc(a.cfg.Schedule, func() {
		if err := a.runOnce(ctx); err != nil {
			a.logger.Error("scheduled simulation failed", zap.Error(err))
			return
		}
		a.logger.Info("scheduled simulation completed")
	}); err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	a.logger.Info("context done")
	return nil
}
