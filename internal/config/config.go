// Package config defines the data structures related to configuration and
// includes functions for loading, validating and exporting it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for nbfc-projection.
type Configuration struct {
	Parameters Parameters    `yaml:"parameters" json:"parameters" toml:"parameters" mapstructure:"parameters"`
	Logging    LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty" mapstructure:"logging"`
	Output     OutputConfig  `yaml:"output,omitempty" json:"output,omitempty" toml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty" toml:"level,omitempty" mapstructure:"level"`                     // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty" toml:"format,omitempty" mapstructure:"format"`                 // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty" toml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty" toml:"format,omitempty" mapstructure:"format"` // pretty, csv, summary, json
	Charts bool   `yaml:"charts,omitempty" json:"charts,omitempty" toml:"charts,omitempty" mapstructure:"charts"`
}

// DefaultConfiguration returns the configuration used when no file is given.
func DefaultConfiguration() Configuration {
	return Configuration{
		Parameters: DefaultParameters(),
		Output: OutputConfig{
			Format: constants.OutputFormatPretty,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML or TOML
// configuration there. Values missing from the file fall back to the
// defaults, and NBFC_-prefixed environment variables override both.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType(configType(configPath))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a configuration document of the given
// type ("yaml" or "toml") from r.
func LoadConfigurationFromReader(r io.Reader, format string) (*Configuration, error) {
	v := newViper()
	v.SetConfigType(format)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// LoadDefaults returns the defaults with environment overrides applied.
func LoadDefaults() (*Configuration, error) {
	return decode(newViper())
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfiguration())
	return v
}

func setDefaults(v *viper.Viper, conf Configuration) {
	p := conf.Parameters
	v.SetDefault("parameters.capitalCrores", p.CapitalCrores)
	v.SetDefault("parameters.processingFeeRate", p.ProcessingFeeRate)
	v.SetDefault("parameters.monthlyInterestRate", p.MonthlyInterestRate)
	v.SetDefault("parameters.costOfFundsRate", p.CostOfFundsRate)
	v.SetDefault("parameters.marketingRate", p.MarketingRate)
	v.SetDefault("parameters.opexRates.month1", p.OpexRates.Month1)
	v.SetDefault("parameters.opexRates.month2", p.OpexRates.Month2)
	v.SetDefault("parameters.opexRates.month3", p.OpexRates.Month3)
	v.SetDefault("parameters.opexRates.month4Plus", p.OpexRates.Month4Plus)
	v.SetDefault("parameters.avgLoanTicket", p.AvgLoanTicket)
	v.SetDefault("parameters.rotationCycleDays", p.RotationCycleDays)
	v.SetDefault("parameters.collections.t0", p.Collections.T0)
	v.SetDefault("parameters.collections.t30", p.Collections.T30)
	v.SetDefault("parameters.collections.t60", p.Collections.T60)
	v.SetDefault("parameters.collections.t90", p.Collections.T90)
	v.SetDefault("logging.level", conf.Logging.Level)
	v.SetDefault("logging.format", conf.Logging.Format)
	v.SetDefault("logging.outputFile", conf.Logging.OutputFile)
	v.SetDefault("output.format", conf.Output.Format)
	v.SetDefault("output.charts", conf.Output.Charts)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return constants.ParamsFormatTOML
	default:
		return "yml"
	}
}
