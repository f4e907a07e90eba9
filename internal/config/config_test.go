package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SYMBOL", "INTERVAL", "CANDLE_COUNT", "CANDLE_FILE", "STRATEGY",
		"MIN_SCORE", "DATABASE_URL", "MARKET_DATA_URL", "LOG_LEVEL", "REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Symbol != "BTCUSDT" {
		t.Errorf("Symbol = %q, want BTCUSDT", cfg.Symbol)
	}
	if cfg.Interval != "1h" {
		t.Errorf("Interval = %q, want 1h", cfg.Interval)
	}
	if cfg.CandleCount != 500 {
		t.Errorf("CandleCount = %d, want 500", cfg.CandleCount)
	}
	if cfg.Strategy != "momentum" {
		t.Errorf("Strategy = %q, want momentum", cfg.Strategy)
	}
	if cfg.MinScore != 70 {
		t.Errorf("MinScore = %v, want 70", cfg.MinScore)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("RequestTimeout = %d, want 30", cfg.RequestTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SYMBOL", "ETHUSDT")
	t.Setenv("STRATEGY", "mean_reversion")
	t.Setenv("MIN_SCORE", "82.5")
	t.Setenv("CANDLE_COUNT", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Symbol != "ETHUSDT" {
		t.Errorf("Symbol = %q, want ETHUSDT", cfg.Symbol)
	}
	if cfg.Strategy != "mean_reversion" {
		t.Errorf("Strategy = %q, want mean_reversion", cfg.Strategy)
	}
	if cfg.MinScore != 82.5 {
		t.Errorf("MinScore = %v, want 82.5", cfg.MinScore)
	}
	if cfg.CandleCount != 250 {
		t.Errorf("CandleCount = %d, want 250", cfg.CandleCount)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("CANDLE_COUNT", "plenty")
	t.Setenv("MIN_SCORE", "high")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CandleCount != 500 {
		t.Errorf("CandleCount = %d, want default 500 on malformed value", cfg.CandleCount)
	}
	if cfg.MinScore != 70 {
		t.Errorf("MinScore = %v, want default 70 on malformed value", cfg.MinScore)
	}
}
