package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/tariff-simulator/cmd"
)

func main() {
	app := &cli.App{
		Name:   "tariff-simulator",
		Usage:  "ranks electricity tariffs against an hourly consumption history",
		Action: cmd.SimulateCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				EnvVars: []string{"TARIFF_CONFIG"},
				Usage:   "optional YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				EnvVars: []string{"TARIFF_DATA_DIR"},
				Value:   "data",
			},
			&cli.StringFlag{
				Name:    "out-dir",
				EnvVars: []string{"TARIFF_OUT_DIR"},
				Value:   "out",
			},
			&cli.StringFlag{
				Name:    "consumption-file",
				EnvVars: []string{"TARIFF_CONSUMPTION_FILE"},
				Value:   "Consumo_01-01-2025_31-12-2025.csv",
			},
			&cli.StringFlag{
				Name:    "tariffs-file",
				EnvVars: []string{"TARIFF_TARIFFS_FILE"},
				Value:   "Comercializadoras.csv",
			},
			&cli.Float64Flag{
				Name:    "power-offpeak-kw",
				EnvVars: []string{"TARIFF_POWER_OFFPEAK_KW"},
				Value:   3.45,
			},
			&cli.Float64Flag{
				Name:    "power-peakmid-kw",
				EnvVars: []string{"TARIFF_POWER_PEAKMID_KW"},
				Value:   4.60,
			},
			&cli.StringFlag{
				Name:    "csv-separator",
				EnvVars: []string{"TARIFF_CSV_SEPARATOR"},
				Value:   ";",
			},
			&cli.StringFlag{
				Name:    "decimal-separator",
				EnvVars: []string{"TARIFF_DECIMAL_SEPARATOR"},
				Value:   ",",
			},
			&cli.IntFlag{
				Name:    "decimals",
				EnvVars: []string{"TARIFF_DECIMALS"},
				Value:   4,
			},
			&cli.BoolFlag{
				Name:    "bom",
				EnvVars: []string{"TARIFF_BOM"},
				Value:   true,
			},
			&cli.BoolFlag{
				Name:    "xlsx",
				EnvVars: []string{"TARIFF_XLSX"},
			},
			&cli.BoolFlag{
				Name:    "pdf",
				EnvVars: []string{"TARIFF_PDF"},
			},
			&cli.IntFlag{
				Name:    "summary-rows",
				EnvVars: []string{"TARIFF_SUMMARY_ROWS"},
				Value:   10,
			},
			&cli.StringFlag{
				Name:    "mqtt-host",
				EnvVars: []string{"MQTT_HOST"},
				Value:   "",
			},
			&cli.StringFlag{
				Name:    "mqtt-user",
				EnvVars: []string{"MQTT_USER"},
				Value:   "",
			},
			&cli.StringFlag{
				Name:    "mqtt-pass",
				EnvVars: []string{"MQTT_PASS"},
				Value:   "",
			},
			&cli.StringFlag{
				Name:    "mqtt-topic-prefix",
				EnvVars: []string{"MQTT_TOPIC_PREFIX"},
				Value:   "tariff-simulator",
			},
			&cli.StringFlag{
				Name:    "schedule",
				EnvVars: []string{"TARIFF_SCHEDULE"},
				Usage:   "cron spec to re-run the simulation, runs once when empty",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "INFO",
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
