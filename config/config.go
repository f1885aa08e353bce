// SPDX-License-Identifier: MIT

// Package config loads runtime settings for the aoc command from defaults,
// an optional YAML file, an optional .env file and AOC_* environment
// variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrEmptyInputDir    = errors.New("config: input directory must not be empty")
	ErrInvalidFormat    = errors.New("config: unknown output format")
	ErrInvalidLogLevel  = errors.New("config: unknown log level")
	ErrInvalidLogFormat = errors.New("config: unknown log format")
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "AOC"

// Output formats.
const (
	FormatPlain = "plain"
	FormatTable = "table"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Default configuration values.
const (
	DefaultInputDir  = "input"
	DefaultFormat    = FormatPlain
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatText
)

// Config holds all settings of the aoc command.
type Config struct {
	InputDir string        `mapstructure:"input_dir"`
	Format   string        `mapstructure:"format"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration.
//
// configPath selects a YAML file explicitly; when empty, aoc.yaml is looked
// up in "." and "./config" and silently skipped if absent. envFile names a
// dotenv file loaded into the process environment first (".env" when
// empty); a missing dotenv file is not an error.
func Load(configPath, envFile string) (*Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("aoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		InputDir: DefaultInputDir,
		Format:   DefaultFormat,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate checks every field and returns the first violation.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return ErrEmptyInputDir
	}
	switch c.Format {
	case FormatPlain, FormatTable:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}

	return lvl, nil
}

// setDefaults registers every key so AutomaticEnv can bind it on Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input_dir", d.InputDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// loadDotEnv loads path (".env" when empty) if it exists. Variables already
// set in the environment win.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}
