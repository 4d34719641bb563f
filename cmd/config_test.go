package cmd_test

import (
	"log/slog"
	"testing"

	"courierquote/cmd"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithDefaults(t *testing.T) {
	cfg := cmd.Config{}.WithDefaults()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "@every 5m", cfg.TownDataRefresh)
	assert.Equal(t, "angelique@procouriers.co.za", cfg.QuoteRecipient)
	assert.Empty(t, cfg.TownDataPath)
	assert.Empty(t, cfg.TariffPath)

	custom := cmd.Config{HTTPPort: "9000", QuoteRecipient: "ops@example.com"}.WithDefaults()
	assert.Equal(t, "9000", custom.HTTPPort)
	assert.Equal(t, "ops@example.com", custom.QuoteRecipient)
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		" error ": slog.LevelError,
		"chatty":  slog.LevelInfo,
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, cmd.Config{LogLevel: raw}.SlogLevel())
		})
	}
}
