// Package config loads intprops settings from defaults, an optional YAML
// file, INTPROPS_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/intprops/prime"
)

// EnvPrefix is prepended to every environment override, e.g. INTPROPS_LOG_LEVEL.
const EnvPrefix = "INTPROPS"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the complete intprops configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	REPL   REPLConfig   `mapstructure:"repl" yaml:"repl"`
	Demo   DemoConfig   `mapstructure:"demo" yaml:"demo"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// OutputConfig controls how results are rendered on stdout.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Color  bool   `mapstructure:"color" yaml:"color"`
}

// REPLConfig contains interactive-loop settings.
type REPLConfig struct {
	Prompt string `mapstructure:"prompt" yaml:"prompt"`
	Quit   string `mapstructure:"quit" yaml:"quit"`
}

// DemoConfig holds the sample inputs printed by the demo command.
type DemoConfig struct {
	Palindromes []int64 `mapstructure:"palindromes" yaml:"palindromes"`
	Primes      []int64 `mapstructure:"primes" yaml:"primes"`
	Factors     []int64 `mapstructure:"factors" yaml:"factors"`
	RangeEnd    int64   `mapstructure:"range_end" yaml:"range_end"`
	SieveLimit  int     `mapstructure:"sieve_limit" yaml:"sieve_limit"`
}

// DefaultConfig returns a configuration with the demo programs' settings.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  false,
		},
		REPL: REPLConfig{
			Prompt: "Enter a number: ",
			Quit:   "quit",
		},
		Demo: DemoConfig{
			Palindromes: []int64{121, 123, 1221, 12321, -121, 0, 7, 1001},
			Primes:      []int64{2, 3, 4, 5, 17, 25, 29, 97, 100, 101},
			Factors:     []int64{12, 17, 60, 97},
			RangeEnd:    100,
			SieveLimit:  30,
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("%w: log.level must be one of: debug, info, warn, error (got %q)", ErrInvalidConfig, c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: log.format must be 'json' or 'console' (got %q)", ErrInvalidConfig, c.Log.Format)
	}

	validOutputs := []string{"text", "json", "yaml"}
	if !slices.Contains(validOutputs, c.Output.Format) {
		return fmt.Errorf("%w: output.format must be one of: text, json, yaml (got %q)", ErrInvalidConfig, c.Output.Format)
	}

	if strings.TrimSpace(c.REPL.Quit) == "" {
		return fmt.Errorf("%w: repl.quit cannot be empty", ErrInvalidConfig)
	}

	if c.Demo.RangeEnd < 0 {
		return fmt.Errorf("%w: demo.range_end cannot be negative", ErrInvalidConfig)
	}
	if c.Demo.SieveLimit < 0 || c.Demo.SieveLimit > prime.MaxSieveLimit {
		return fmt.Errorf("%w: demo.sieve_limit must be between 0 and %d (got %d)", ErrInvalidConfig, prime.MaxSieveLimit, c.Demo.SieveLimit)
	}

	return nil
}

// Load builds a Config from defaults, the file at path (if non-empty and
// present), the environment and any flags in fs that are bound through
// FlagBindings. A missing file is not an error; a malformed one is.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("repl.prompt", defaults.REPL.Prompt)
	v.SetDefault("repl.quit", defaults.REPL.Quit)
	v.SetDefault("demo.palindromes", defaults.Demo.Palindromes)
	v.SetDefault("demo.primes", defaults.Demo.Primes)
	v.SetDefault("demo.factors", defaults.Demo.Factors)
	v.SetDefault("demo.range_end", defaults.Demo.RangeEnd)
	v.SetDefault("demo.sieve_limit", defaults.Demo.SieveLimit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range FlagBindings {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", flag, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FlagBindings maps configuration keys to the persistent flag names the CLI
// registers for them.
var FlagBindings = map[string]string{
	"log.level":     "log-level",
	"log.format":    "log-format",
	"output.format": "output",
	"output.color":  "color",
}
