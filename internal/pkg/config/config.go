package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths    PathsConfig  `yaml:"paths"`
	Power    PowerConfig  `yaml:"power"`
	Output   OutputConfig `yaml:"output"`
	Mqtt     MqttConfig   `yaml:"mqtt"`
	Schedule string       `yaml:"schedule" env:"TARIFF_SCHEDULE"`
	LogLevel string       `yaml:"log_level" env:"LOG_LEVEL"`
}

type PathsConfig struct {
	DataDir         string `yaml:"data_dir" env:"TARIFF_DATA_DIR"`
	OutDir          string `yaml:"out_dir" env:"TARIFF_OUT_DIR"`
	ConsumptionFile string `yaml:"consumption_file" env:"TARIFF_CONSUMPTION_FILE"`
	TariffsFile     string `yaml:"tariffs_file" env:"TARIFF_TARIFFS_FILE"`
}

// PowerConfig holds the contracted power per band, in kW.
type PowerConfig struct {
	OffPeakKW float64 `yaml:"offpeak_kw" env:"TARIFF_POWER_OFFPEAK_KW"`
	PeakMidKW float64 `yaml:"peakmid_kw" env:"TARIFF_POWER_PEAKMID_KW"`
}

type OutputConfig struct {
	CSVSeparator     string `yaml:"csv_separator" env:"TARIFF_CSV_SEPARATOR"`
	DecimalSeparator string `yaml:"decimal_separator" env:"TARIFF_DECIMAL_SEPARATOR"`
	Decimals         int    `yaml:"decimals" env:"TARIFF_DECIMALS"`
	BOM              bool   `yaml:"bom" env:"TARIFF_BOM"`
	XLSX             bool   `yaml:"xlsx" env:"TARIFF_XLSX"`
	PDF              bool   `yaml:"pdf" env:"TARIFF_PDF"`
	SummaryRows      int    `yaml:"summary_rows" env:"TARIFF_SUMMARY_ROWS"`
}

type MqttConfig struct {
	Host        string `yaml:"host" env:"MQTT_HOST"`
	Username    string `yaml:"username" env:"MQTT_USER"`
	Password    string `yaml:"password" env:"MQTT_PASS"`
	TopicPrefix string `yaml:"topic_prefix" env:"MQTT_TOPIC_PREFIX"`
}

func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir:         "data",
			OutDir:          "out",
			ConsumptionFile: "Consumo_01-01-2025_31-12-2025.csv",
			TariffsFile:     "Comercializadoras.csv",
		},
		Power: PowerConfig{
			OffPeakKW: 3.45,
			PeakMidKW: 4.60,
		},
		Output: OutputConfig{
			CSVSeparator:     ";",
			DecimalSeparator: ",",
			Decimals:         4,
			BOM:              true,
			SummaryRows:      10,
		},
		Mqtt: MqttConfig{
			TopicPrefix: "tariff-simulator",
		},
		LogLevel: "INFO",
	}
}

// Load reads the optional YAML file at path on top of the defaults and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Paths.DataDir == "" {
		problems = append(problems, "data_dir is required")
	}
	if c.Paths.OutDir == "" {
		problems = append(problems, "out_dir is required")
	}
	if c.Paths.ConsumptionFile == "" {
		problems = append(problems, "consumption_file is required")
	}
	if c.Paths.TariffsFile == "" {
		problems = append(problems, "tariffs_file is required")
	}

	if c.Power.OffPeakKW < 0 {
		problems = append(problems, "offpeak_kw must not be negative")
	}
	if c.Power.PeakMidKW < 0 {
		problems = append(problems, "peakmid_kw must not be negative")
	}

	if utf8.RuneCountInString(c.Output.CSVSeparator) != 1 {
		problems = append(problems, "csv_separator must be a single character")
	}
	if utf8.RuneCountInString(c.Output.DecimalSeparator) != 1 {
		problems = append(problems, "decimal_separator must be a single character")
	} else if c.Output.DecimalSeparator == c.Output.CSVSeparator {
		problems = append(problems, "decimal_separator must differ from csv_separator")
	}
	if c.Output.Decimals < 0 || c.Output.Decimals > 10 {
		problems = append(problems, "decimals must be between 0 and 10")
	}
	if c.Output.SummaryRows < 0 {
		problems = append(problems, "summary_rows must not be negative")
	}

	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			problems = append(problems, fmt.Sprintf("schedule %q is invalid: %v", c.Schedule, err))
		}
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("log_level %q is invalid", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Separators returns the configured CSV and decimal separators. Only valid
// after Validate succeeded.
func (c *Config) Separators() (rune, rune) {
	sep, _ := utf8.DecodeRuneInString(c.Output.CSVSeparator)
	dec, _ := utf8.DecodeRuneInString(c.Output.DecimalSeparator)
	return sep, dec
}
