package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLThenEnvironment(t *testing.T) {
	path := writeConfig(t, `
paths:
  data_dir: /srv/datos
  tariffs_file: tarifas.csv
power:
  offpeak_kw: 5.75
output:
  decimals: 2
  xlsx: true
mqtt:
  host: tcp://broker:1883
log_level: DEBUG
`)
	t.Setenv("TARIFF_POWER_OFFPEAK_KW", "6.9")
	t.Setenv("MQTT_USER", "casa")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/datos", cfg.Paths.DataDir)
	assert.Equal(t, "tarifas.csv", cfg.Paths.TariffsFile)
	assert.Equal(t, "Consumo_01-01-2025_31-12-2025.csv", cfg.Paths.ConsumptionFile)
	assert.Equal(t, 6.9, cfg.Power.OffPeakKW)
	assert.Equal(t, 4.60, cfg.Power.PeakMidKW)
	assert.Equal(t, 2, cfg.Output.Decimals)
	assert.True(t, cfg.Output.XLSX)
	assert.True(t, cfg.Output.BOM)
	assert.Equal(t, "tcp://broker:1883", cfg.Mqtt.Host)
	assert.Equal(t, "casa", cfg.Mqtt.Username)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeConfig(t, "power: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config file")

	t.Setenv("TARIFF_DECIMALS", "four")
	_, err = Load("")
	assert.ErrorContains(t, err, "failed to parse environment")
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Config)
		want   []string
	}{
		"valid": {
			mutate: func(c *Config) {},
		},
		"negative power": {
			mutate: func(c *Config) {
				c.Power.OffPeakKW = -1
				c.Power.PeakMidKW = -2
			},
			want: []string{"offpeak_kw must not be negative", "peakmid_kw must not be negative"},
		},
		"separators": {
			mutate: func(c *Config) {
				c.Output.CSVSeparator = ";;"
				c.Output.DecimalSeparator = ""
			},
			want: []string{"csv_separator must be a single character", "decimal_separator must be a single character"},
		},
		"same separators": {
			mutate: func(c *Config) {
				c.Output.CSVSeparator = ","
			},
			want: []string{"decimal_separator must differ from csv_separator"},
		},
		"schedule and level": {
			mutate: func(c *Config) {
				c.Schedule = "every tuesday"
				c.LogLevel = "LOUD"
			},
			want: []string{`schedule "every tuesday" is invalid`, `log_level "LOUD" is invalid`},
		},
		"missing paths": {
			mutate: func(c *Config) {
				c.Paths = PathsConfig{}
			},
			want: []string{"data_dir is required", "out_dir is required", "consumption_file is required", "tariffs_file is required"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestSeparators(t *testing.T) {
	cfg := Default()
	cfg.Output.CSVSeparator = "\t"
	cfg.Output.DecimalSeparator = "."

	sep, dec := cfg.Separators()
	assert.Equal(t, '\t', sep)
	assert.Equal(t, '.', dec)
}
