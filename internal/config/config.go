package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "asteroidcli/internal/errors"
)

// EnvPrefix namespaces every environment variable, e.g. ASTEROID_LOGGING_LEVEL.
const EnvPrefix = "ASTEROID"

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// ReportConfig controls the spreadsheet layout. Colours are RGB hex without '#'.
type ReportConfig struct {
	// ListRow is the 1-based row holding the list block headers
	ListRow int `yaml:"list_row" envconfig:"LIST_ROW" validate:"min=3"`

	HeaderFill string `yaml:"header_fill" envconfig:"HEADER_FILL" validate:"len=6,hexadecimal"`
	NEOAccent  string `yaml:"neo_accent" envconfig:"NEO_ACCENT" validate:"len=6,hexadecimal"`
	NEOFill    string `yaml:"neo_fill" envconfig:"NEO_FILL" validate:"len=6,hexadecimal"`
	PHAAccent  string `yaml:"pha_accent" envconfig:"PHA_ACCENT" validate:"len=6,hexadecimal"`
	PHAFill    string `yaml:"pha_fill" envconfig:"PHA_FILL" validate:"len=6,hexadecimal"`
}

// TelemetryConfig contains tracing and run-metrics configuration
type TelemetryConfig struct {
	ServiceName   string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	// MetricsFile, when set, receives the run metrics in Prometheus text format
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// configLocations are checked in order; the first existing file wins.
var configLocations = []string{
	"asteroid-report.yaml",
	"configs/asteroid-report.yaml",
}

// Load loads configuration from defaults, the first config file found and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom is Load with an explicit config file. An empty path skips the file.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config file %s", configFile), err)
		}
	}

	// Unset variables leave the current value alone because no field carries a default tag
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	for _, location := range configLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "error",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/asteroid-report.log",
		},
		Report: ReportConfig{
			ListRow:    DefaultListRow,
			HeaderFill: "3DACFF",
			NEOAccent:  "FF9F3D",
			NEOFill:    "FFD2A5",
			PHAAccent:  "FF0000",
			PHAFill:    "FFA5A5",
		},
		Telemetry: TelemetryConfig{
			ServiceName:   AppName,
			TraceExporter: "none",
		},
	}
}
