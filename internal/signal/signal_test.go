package signal

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/altf4-dev/strategist/models"
)

var testBase = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func candleAt(i int, close float64) models.Candle {
	return models.Candle{
		Timestamp: testBase.Add(time.Duration(i) * time.Hour),
		Open:      close,
		High:      close + 0.5,
		Low:       close - 0.5,
		Close:     close,
		Volume:    1000,
	}
}

// rampCandles is flat history followed by a steady climb, which classifies
// as a strong uptrend.
func rampCandles(flat, rising int, base, step float64) []models.Candle {
	candles := make([]models.Candle, 0, flat+rising)
	for i := 0; i < flat; i++ {
		candles = append(candles, candleAt(len(candles), base))
	}
	for i := 1; i <= rising; i++ {
		candles = append(candles, candleAt(len(candles), base+float64(i)*step))
	}
	return candles
}

func neutralSnapshot() *Snapshot {
	return &Snapshot{
		Candles: []models.Candle{
			candleAt(0, 100), candleAt(1, 100), candleAt(2, 100),
		},
		Indicators: &models.Indicators{
			EMAFast: 100, EMASlow: 100, RSI: 50,
			BBUpper: 105, BBMiddle: 100, BBLower: 95,
		},
		Regime:  models.MarketRegime{Regime: models.RegimeRanging},
		Sweep:   models.LiquiditySweep{Direction: models.SweepNone},
		Pattern: models.ChartPattern{Kind: models.PatternNone},
	}
}

func TestScoreMomentum(t *testing.T) {
	cfg := models.DefaultConfig()

	t.Run("every bullish input clamps to 100", func(t *testing.T) {
		s := neutralSnapshot()
		s.Regime = models.MarketRegime{Regime: models.RegimeStrongUptrend, TrendStrength: 0.05}
		s.Sweep = models.LiquiditySweep{Detected: true, Direction: models.SweepBullish, Confidence: 90}
		s.Pattern = models.ChartPattern{Detected: true, Kind: models.PatternBullFlag, Confidence: 80}
		s.Indicators.EMAFast = 105
		s.Volume = &models.VolumeMetrics{Trend: models.VolumeIncreasing, Ratio: 1.5}

		score, reasoning := ScoreMomentum(s, cfg)
		if score != 100 {
			t.Errorf("score = %v, want clamped 100", score)
		}
		if len(reasoning) == 0 {
			t.Error("reasoning is empty")
		}
	})

	t.Run("every bearish input clamps to 0", func(t *testing.T) {
		s := neutralSnapshot()
		s.Regime = models.MarketRegime{Regime: models.RegimeStrongDowntrend, TrendStrength: -0.05}
		s.Pattern = models.ChartPattern{Detected: true, Kind: models.PatternLowerHigh, Confidence: 80}
		s.Indicators.EMAFast = 95
		s.Indicators.RSI = 80

		if score, _ := ScoreMomentum(s, cfg); score != 0 {
			t.Errorf("score = %v, want clamped 0", score)
		}
	})

	t.Run("additive adjustments from neutral base", func(t *testing.T) {
		s := neutralSnapshot()
		s.Regime = models.MarketRegime{Regime: models.RegimeRanging}
		s.Sweep = models.LiquiditySweep{Detected: true, Direction: models.SweepBullish, Confidence: 90}
		s.Indicators.EMAFast = 105

		// 50 - 10 ranging + 20*0.9 sweep + 10 EMA + 10 healthy RSI
		score, _ := ScoreMomentum(s, cfg)
		if math.Abs(score-78) > 1e-9 {
			t.Errorf("score = %v, want 78", score)
		}
	})

	t.Run("nil volume metrics are tolerated", func(t *testing.T) {
		s := neutralSnapshot()
		s.Volume = nil

		// Ranging -10, healthy RSI +10.
		if score, _ := ScoreMomentum(s, cfg); math.Abs(score-50) > 1e-9 {
			t.Errorf("score = %v, want 50", score)
		}
	})
}

func TestScoreMeanReversion(t *testing.T) {
	cfg := models.DefaultConfig()

	t.Run("strong uptrend hard-blocks to zero", func(t *testing.T) {
		s := neutralSnapshot()
		s.Regime = models.MarketRegime{Regime: models.RegimeStrongUptrend, TrendStrength: 0.05}
		// Stretched inputs that would otherwise score high.
		s.Sweep = models.LiquiditySweep{Detected: true, Direction: models.SweepBullish, Confidence: 100}
		s.Indicators.RSI = 20

		score, reasoning := ScoreMeanReversion(s, cfg)
		if score != 0 {
			t.Errorf("score = %v, want hard block 0", score)
		}
		if len(reasoning) != 1 || !strings.Contains(reasoning[0], "blocked") {
			t.Errorf("reasoning = %v, want single block entry", reasoning)
		}
	})

	t.Run("strong downtrend hard-blocks to zero", func(t *testing.T) {
		s := neutralSnapshot()
		s.Regime = models.MarketRegime{Regime: models.RegimeStrongDowntrend, TrendStrength: -0.05}

		if score, _ := ScoreMeanReversion(s, cfg); score != 0 {
			t.Errorf("score = %v, want hard block 0", score)
		}
	})

	t.Run("ranging regime with oversold confluence", func(t *testing.T) {
		s := neutralSnapshot()
		s.Candles = []models.Candle{
			{Timestamp: testBase, Low: 95, Close: 96},
			{Timestamp: testBase.Add(time.Hour), Low: 96, Close: 96.5},
			{Timestamp: testBase.Add(2 * time.Hour), Low: 97, Close: 96},
		}
		s.Indicators.BBLower = 97
		s.Indicators.RSI = 25
		s.Sweep = models.LiquiditySweep{Detected: true, Direction: models.SweepBullish, Confidence: 80}
		s.Pattern = models.ChartPattern{Detected: true, Kind: models.PatternDoubleBottom, Confidence: 80}

		// 50 + 20 ranging + 15*0.8 sweep + 12*0.8 pattern + 8 band + 8 RSI
		// + 5 higher lows runs past the cap.
		score, _ := ScoreMeanReversion(s, cfg)
		if score != 100 {
			t.Errorf("score = %v, want clamped 100", score)
		}
	})

	t.Run("weak downtrend scales the penalty", func(t *testing.T) {
		s := neutralSnapshot()
		s.Regime = models.MarketRegime{Regime: models.RegimeWeakDowntrend, TrendStrength: -0.02}

		// 50 + 5 weak trend - 30*(0.02/0.03) penalty
		score, _ := ScoreMeanReversion(s, cfg)
		if math.Abs(score-35) > 1e-9 {
			t.Errorf("score = %v, want 35", score)
		}
	})

	t.Run("penalty saturates at the strong-trend boundary", func(t *testing.T) {
		s := neutralSnapshot()
		s.Regime = models.MarketRegime{Regime: models.RegimeWeakDowntrend, TrendStrength: -0.029}

		score, _ := ScoreMeanReversion(s, cfg)
		floor := 50.0 + 5 - 30
		if score < floor-1e-9 {
			t.Errorf("score = %v, want no lower than %v", score, floor)
		}
	})
}

func TestAnalyze(t *testing.T) {
	cfg := models.DefaultConfig()

	t.Run("insufficient history surfaces the indicator error", func(t *testing.T) {
		if _, err := Analyze(rampCandles(20, 0, 100, 0), cfg); err == nil {
			t.Error("Analyze() expected error on 20 candles, got nil")
		}
	})

	t.Run("steady climb produces a coherent snapshot", func(t *testing.T) {
		candles := rampCandles(20, 10, 100, 3)

		snapshot, err := Analyze(candles, cfg)
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if snapshot.Indicators == nil {
			t.Fatal("Indicators is nil")
		}
		if snapshot.Volume == nil {
			t.Error("Volume is nil despite volume data")
		}
		if snapshot.Regime.Regime != models.RegimeStrongUptrend {
			t.Errorf("Regime = %v, want strong_uptrend", snapshot.Regime.Regime)
		}
		if snapshot.Indicators.EMAFast <= snapshot.Indicators.EMASlow {
			t.Errorf("EMAFast = %v not above EMASlow = %v",
				snapshot.Indicators.EMAFast, snapshot.Indicators.EMASlow)
		}

		// Regime +25, EMA order +10, overbought RSI -10.
		score, _ := ScoreMomentum(snapshot, cfg)
		if math.Abs(score-75) > 1e-9 {
			t.Errorf("momentum score = %v, want 75", score)
		}

		reversion, _ := ScoreMeanReversion(snapshot, cfg)
		if reversion != 0 {
			t.Errorf("mean-reversion score = %v, want blocked 0", reversion)
		}
	})
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{-20, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{130, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.expected {
			t.Errorf("clampScore(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}
