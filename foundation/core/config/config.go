// File: config.go
// Title: Configuration Types and Loading
// Description: Defines the typed configuration and loads it from TOML or YAML
//              files with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed sections for the command system

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
	mdwlog "github.com/msto63/cmdsys/foundation/core/log"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CMDSYS_"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format (default)
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete command system configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general" envPrefix:"GENERAL_"`
	Aliases   AliasConfig     `toml:"aliases" yaml:"aliases" envPrefix:"ALIASES_"`
	Execution ExecutionConfig `toml:"execution" yaml:"execution" envPrefix:"EXECUTION_"`
	Metrics   MetricsConfig   `toml:"metrics" yaml:"metrics" envPrefix:"METRICS_"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  mdwlog.Level  `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat mdwlog.Format `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`
}

// AliasConfig controls how command aliases are matched
type AliasConfig struct {
	CaseSensitive bool `toml:"case_sensitive" yaml:"case_sensitive" env:"CASE_SENSITIVE"`
}

// ExecutionConfig holds handler execution settings
type ExecutionConfig struct {
	Timeout Duration `toml:"timeout" yaml:"timeout" env:"TIMEOUT"`
}

// MetricsConfig toggles prometheus collectors
type MetricsConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled" env:"ENABLED"`
}

// Duration wraps time.Duration for text based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  mdwlog.LevelWarn,
			LogFormat: mdwlog.FormatConsole,
		},
		Aliases: AliasConfig{
			CaseSensitive: true,
		},
		Execution: ExecutionConfig{
			Timeout: Duration{30 * time.Second},
		},
	}
}

// Load reads the file at filePath on top of the defaults, applies environment
// overrides and validates the result. An empty path yields defaults plus
// environment overrides.
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat is Load with an explicit file format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(filePath) != "" {
		content, err := os.ReadFile(filePath)
		if err != nil {
			code := mdwerror.CodeConfigError
			if os.IsNotExist(err) {
				code = mdwerror.CodeMissingConfig
			}
			return nil, mdwerror.Wrap(err, "failed to read config file").
				WithCode(code).
				WithOperation("config.Load").
				WithDetail("filePath", filePath)
		}

		if format == FormatAuto {
			format = detectFormat(filePath)
		}
		if err := decode(content, format, cfg); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse config file").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("filePath", filePath).
				WithDetail("format", format.String())
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, mdwerror.Wrap(err, "failed to apply environment overrides").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Execution.Timeout.Duration <= 0 {
		return mdwerror.New(fmt.Sprintf("execution timeout must be positive, got %s", c.Execution.Timeout.Duration)).
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Validate").
			WithDetail("key", "execution.timeout")
	}
	return nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(content), cfg)
		return err
	case FormatYAML:
		return yaml.Unmarshal(content, cfg)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
