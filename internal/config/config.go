// Package config provides configuration management.
// Values come from defaults, an optional YAML or JSON file and
// CLOUDCOST_* environment variables, in increasing precedence.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. CLOUDCOST_OUTPUT_FORMAT
const EnvPrefix = "CLOUDCOST"

// FileName is the config file searched for in $HOME and the working directory
const FileName = ".cloudcost"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Scenarios selects where scenarios come from
	Scenarios ScenariosConfig `json:"scenarios" mapstructure:"scenarios"`

	// Comparison selects the two providers to compare
	Comparison ComparisonConfig `json:"comparison" mapstructure:"comparison"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (cli, json, markdown)
	Format string `json:"format" mapstructure:"format"`

	// Details shows every line item
	Details bool `json:"details" mapstructure:"details"`

	// NoColor disables terminal colors
	NoColor bool `json:"no_color" mapstructure:"no_color"`
}

// ScenariosConfig contains scenario settings
type ScenariosConfig struct {
	// File is an HCL scenario file; empty means the built-in scenarios
	File string `json:"file" mapstructure:"file"`
}

// ComparisonConfig contains comparison settings
type ComparisonConfig struct {
	// Baseline is provider A, savings are measured against it
	Baseline string `json:"baseline" mapstructure:"baseline"`

	// Candidate is provider B
	Candidate string `json:"candidate" mapstructure:"candidate"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Logging: logging.DefaultConfig(),
		Output: OutputConfig{
			Format: "cli",
		},
		Comparison: ComparisonConfig{
			Baseline:  types.ProviderAWS.String(),
			Candidate: types.ProviderAzure.String(),
		},
	}
}

// setDefaults registers every key so environment overrides apply on Unmarshal
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("version", c.Version)
	v.SetDefault("logging.level", c.Logging.Level)
	v.SetDefault("logging.format", c.Logging.Format)
	v.SetDefault("logging.output", c.Logging.Output)
	v.SetDefault("logging.development", c.Logging.Development)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.details", c.Output.Details)
	v.SetDefault("output.no_color", c.Output.NoColor)
	v.SetDefault("scenarios.file", c.Scenarios.File)
	v.SetDefault("comparison.baseline", c.Comparison.Baseline)
	v.SetDefault("comparison.candidate", c.Comparison.Candidate)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// flagKeys maps config keys to the command line flags that override them
var flagKeys = map[string]string{
	"output.format":   "format",
	"output.details":  "details",
	"output.no_color": "no-color",
	"scenarios.file":  "scenarios",
}

// Load loads configuration. An explicit path is read as is; otherwise
// .cloudcost.{yaml,json} is searched in the working directory and $HOME.
// A missing file yields the defaults plus environment overrides. Flags
// set on the command line win over everything; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Config(fmt.Sprintf("failed to bind flag --%s", name), err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Config(fmt.Sprintf("failed to read config %s", path), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if used := v.ConfigFileUsed(); used != "" {
		logging.Named("config").Sugar().Debugf("loaded config from %s", used)
	}
	return cfg, nil
}

// Validate checks the values a command cannot recover from
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "cli", "json", "markdown", "md":
	default:
		return errors.Config(fmt.Sprintf("output.format %q is not one of cli, json, markdown", c.Output.Format), nil)
	}

	baseline := types.ParseProvider(c.Comparison.Baseline)
	candidate := types.ParseProvider(c.Comparison.Candidate)
	if baseline == types.ProviderUnknown {
		return errors.Config(fmt.Sprintf("comparison.baseline %q is not a known provider", c.Comparison.Baseline), nil)
	}
	if candidate == types.ProviderUnknown {
		return errors.Config(fmt.Sprintf("comparison.candidate %q is not a known provider", c.Comparison.Candidate), nil)
	}
	if baseline == candidate {
		return errors.Config(fmt.Sprintf("comparison.baseline and comparison.candidate are both %s", baseline), nil)
	}
	return nil
}

// Providers returns the parsed baseline and candidate
func (c *Config) Providers() (baseline, candidate types.Provider) {
	return types.ParseProvider(c.Comparison.Baseline), types.ParseProvider(c.Comparison.Candidate)
}

// Save writes the configuration to a file. The extension (.yaml, .yml,
// .json) selects the encoding.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Config("failed to create config directory", err)
	}

	v := viper.New()
	setDefaults(v, c)
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Config(fmt.Sprintf("failed to write config %s", path), err)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
