// Package config loads server configuration from an optional YAML file
// with environment variable overrides. The upstream API credential is
// handled separately by the tradingeconomics package.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server-side settings.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Redis struct {
		Addr      string `yaml:"addr"`      // empty disables the cache mirror
		Namespace string `yaml:"namespace"` // key prefix, default "tedash"
	} `yaml:"redis"`
	Ticker []TickerEntry `yaml:"ticker"`
}

// TickerEntry configures one curated ticker bar slot. Category is one of
// index, bond, currency, commodities; a slot matches by exact symbol
// first, then by case-insensitive name substring.
type TickerEntry struct {
	Label        string `yaml:"label"`
	Category     string `yaml:"category"`
	Symbol       string `yaml:"symbol"`
	NameContains string `yaml:"name_contains"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; everything has defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Redis.Namespace == "" {
		cfg.Redis.Namespace = "tedash"
	}

	return cfg, nil
}
