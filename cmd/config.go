package cmd

import (
	"log/slog"
	"strings"
)

const (
	DefaultHTTPPort       = "8080"
	DefaultQuoteRecipient = "angelique@procouriers.co.za"
	DefaultTownRefresh    = "@every 5m"
)

type Config struct {
	HTTPPort string
	// TownDataPath is the YAML or JSON town table. Empty means no table:
	// every town is treated as regional.
	TownDataPath    string
	TownDataRefresh string
	// TariffPath is an optional YAML price list overlaying the defaults.
	TariffPath     string
	QuoteRecipient string
	LogLevel       string
}

// WithDefaults fills in every empty setting that has a default.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.TownDataRefresh == "" {
		c.TownDataRefresh = DefaultTownRefresh
	}
	if c.QuoteRecipient == "" {
		c.QuoteRecipient = DefaultQuoteRecipient
	}
	return c
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error"), defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
