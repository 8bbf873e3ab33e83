// Package config loads and validates the calculator configuration from YAML
// or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/levtools/levcalc/trade"
)

// Config is the complete calculator configuration.
type Config struct {
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Scoring  ScoringConfig  `json:"scoring" yaml:"scoring"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// DefaultsConfig seeds the input record for a new session.
type DefaultsConfig struct {
	Leverage         float64 `json:"leverage" yaml:"leverage"`
	TargetRiskReward float64 `json:"target_risk_reward" yaml:"target_risk_reward"`
	MakerFee         float64 `json:"maker_fee" yaml:"maker_fee"`
	TakerFee         float64 `json:"taker_fee" yaml:"taker_fee"`
	OrderType        string  `json:"order_type" yaml:"order_type"`
	Side             string  `json:"side" yaml:"side"`
}

// ScoringConfig selects the strength-scoring preset.
type ScoringConfig struct {
	Preset string `json:"preset" yaml:"preset"` // "aggregate" or "detailed"
}

// JournalConfig selects the optional journal sink.
type JournalConfig struct {
	Type            string `json:"type,omitempty" yaml:"type,omitempty"` // "", "csv" or "sqlite"
	SetupsFile      string `json:"setups_file,omitempty" yaml:"setups_file,omitempty"`
	SimulationsFile string `json:"simulations_file,omitempty" yaml:"simulations_file,omitempty"`
	DBPath          string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file; YAML is tried
// first with JSON as the fallback.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration; the format follows the file
// extension (.yaml/.yml for YAML, anything else JSON).
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

// Validate checks the configuration for out-of-range or inconsistent values.
func (c *Config) Validate() error {
	if c.Defaults.Leverage < 1 || c.Defaults.Leverage > 100 {
		return fmt.Errorf("defaults.leverage must be between 1 and 100")
	}
	if c.Defaults.TargetRiskReward <= 0 {
		return fmt.Errorf("defaults.target_risk_reward must be positive")
	}
	if c.Defaults.MakerFee < 0 || c.Defaults.TakerFee < 0 {
		return fmt.Errorf("fee rates must not be negative")
	}
	switch trade.OrderType(c.Defaults.OrderType) {
	case trade.Market, trade.Limit, trade.Trigger:
	default:
		return fmt.Errorf("defaults.order_type must be market, limit or trigger")
	}
	switch trade.Side(c.Defaults.Side) {
	case trade.Long, trade.Short:
	default:
		return fmt.Errorf("defaults.side must be long or short")
	}
	switch c.Scoring.Preset {
	case "aggregate", "detailed":
	default:
		return fmt.Errorf("scoring.preset must be aggregate or detailed")
	}
	switch c.Journal.Type {
	case "":
	case "csv":
		if c.Journal.SetupsFile == "" || c.Journal.SimulationsFile == "" {
			return fmt.Errorf("journal setups_file and simulations_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	return nil
}

// Inputs builds the session's starting input record from the defaults.
func (c *Config) Inputs() trade.Inputs {
	in := trade.NewInputs()
	in.Leverage = c.Defaults.Leverage
	in.MakerFee = c.Defaults.MakerFee
	in.TakerFee = c.Defaults.TakerFee
	in.OrderType = trade.OrderType(c.Defaults.OrderType)
	in.PositionSide = trade.Side(c.Defaults.Side)
	return in
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Leverage:         2,
			TargetRiskReward: 2,
			MakerFee:         0.02,
			TakerFee:         0.06,
			OrderType:        string(trade.Market),
			Side:             string(trade.Long),
		},
		Scoring: ScoringConfig{Preset: "aggregate"},
		Journal: JournalConfig{
			Type:            "csv",
			SetupsFile:      "./setups.csv",
			SimulationsFile: "./simulations.csv",
		},
	}
}
