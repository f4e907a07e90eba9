// Package trade derives trade setups from scored windows and simulates
// them forward through subsequent candles under a multi-level
// take-profit/stop-loss ladder.
package trade

import (
	"github.com/altf4-dev/strategist/internal/signal"
	"github.com/altf4-dev/strategist/models"
)

// BuildSetup scores the window for the given strategy and, if the score
// clears the strategy's minimum, derives the entry/stop/take-profit ladder
// off the current close. It returns nil when there is not enough history or
// the score is below threshold; a missing setup is a valid outcome.
func BuildSetup(candles []models.Candle, strategy models.Strategy, cfg *models.Config) *models.TradeSetup {
	if len(candles) < cfg.MinHistory {
		return nil
	}

	snapshot, err := signal.Analyze(candles, cfg)
	if err != nil {
		// MinHistory exceeds every indicator period, so this only trips on
		// misconfigured periods; treat it as "no setup".
		return nil
	}

	var (
		score     float64
		reasoning []string
		minSignal float64
		stopPct   float64
		tp1Pct    float64
		tp2Pct    float64
		tp3Pct    float64
	)

	switch strategy {
	case models.StrategyMomentum:
		score, reasoning = signal.ScoreMomentum(snapshot, cfg)
		minSignal = cfg.MomentumMinSignal
		stopPct, tp1Pct, tp2Pct, tp3Pct = cfg.MomentumStopPct, cfg.MomentumTP1Pct, cfg.MomentumTP2Pct, cfg.MomentumTP3Pct
	case models.StrategyMeanReversion:
		score, reasoning = signal.ScoreMeanReversion(snapshot, cfg)
		minSignal = cfg.MeanRevMinSignal
		stopPct, tp1Pct, tp2Pct, tp3Pct = cfg.MeanRevStopPct, cfg.MeanRevTP1Pct, cfg.MeanRevTP2Pct, cfg.MeanRevTP3Pct
	default:
		return nil
	}

	if score < minSignal {
		return nil
	}

	last := candles[len(candles)-1]
	entry := last.Close

	return &models.TradeSetup{
		Timestamp:      last.Timestamp,
		Strategy:       strategy,
		Entry:          entry,
		StopLoss:       entry * (1 - stopPct),
		TakeProfit1:    entry * (1 + tp1Pct),
		TakeProfit2:    entry * (1 + tp2Pct),
		TakeProfit3:    entry * (1 + tp3Pct),
		SignalStrength: score,
		Reasoning:      reasoning,
	}
}
