// Package backtest drives the setup builder and execution simulator across
// a historical series with non-overlapping trade windows and aggregates the
// outcomes into summary statistics.
package backtest

import (
	"github.com/altf4-dev/strategist/internal/trade"
	"github.com/altf4-dev/strategist/models"
)

// Run scans the series and simulates every qualifying setup for the given
// strategy. minScore is the caller's qualification threshold on top of the
// strategy's own minimum. After a recorded trade the scan index advances by
// the trade's duration so trades never overlap; this intentionally skips
// candles where an unrelated setup might have qualified independently.
//
// A strategy/threshold combination that never qualifies yields empty stats,
// which is a valid outcome, not an error.
func Run(candles []models.Candle, strategy models.Strategy, minScore float64, cfg *models.Config) *models.BacktestStats {
	var results []models.TradeResult

	start := cfg.MinHistory
	for i := start; i < len(candles)-cfg.MaxHoldCandles; i++ {
		setup := trade.BuildSetup(candles[:i+1], strategy, cfg)
		if setup == nil || setup.SignalStrength < minScore {
			continue
		}

		future := candles[i+1:]
		if len(future) > cfg.MaxHoldCandles {
			future = future[:cfg.MaxHoldCandles]
		}

		result := trade.Simulate(setup, future, cfg)
		results = append(results, result)

		i += result.DurationCandles
	}

	return Aggregate(results)
}
