package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/strategyrun/tradelog"
)

// Config represents everything a strategy run can be told
type Config struct {
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	TradeLog TradeLogConfig `json:"tradelog" yaml:"tradelog"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}

// StrategyConfig names the strategy being run
type StrategyConfig struct {
	Name string `json:"name" yaml:"name" env:"STRATEGY"`
}

// TradeLogConfig locates the plain text trade log
type TradeLogConfig struct {
	Path string `json:"path" yaml:"path" env:"TRADE_LOG"`
}

// JournalConfig enables the optional structured journals. Empty paths
// leave them off.
type JournalConfig struct {
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty" env:"CSV_FILE"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty" env:"DB_PATH"`
}

// LoggingConfig controls diagnostic logging, not the trade log
type LoggingConfig struct {
	Level      string `json:"level" yaml:"level" env:"LOG_LEVEL"`
	File       string `json:"file,omitempty" yaml:"file,omitempty" env:"LOG_FILE"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "STRATEGYRUN_"

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names.
	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays STRATEGYRUN_* environment variables. Unset variables
// keep whatever the file or the defaults said.
func (c *Config) ApplyEnv() error {
	opts := env.Options{Prefix: EnvPrefix}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return c.Validate()
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Strategy.Name) == "" {
		return fmt.Errorf("strategy.name is required")
	}
	if c.TradeLog.Path == "" {
		return fmt.Errorf("tradelog.path is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging rotation settings must not be negative")
	}
	return nil
}

// Default returns the configuration of a bare invocation: one line to
// trade_log.txt in the working directory and nothing else.
func Default() *Config {
	return &Config{
		Strategy: StrategyConfig{
			Name: "default",
		},
		TradeLog: TradeLogConfig{
			Path: tradelog.DefaultPath,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
