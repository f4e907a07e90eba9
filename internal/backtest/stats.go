package backtest

import (
	"github.com/altf4-dev/strategist/models"
)

// Aggregate computes summary statistics over a list of trade results. The
// stats are recomputed fresh from the full list every time; nothing is
// mutated incrementally across runs.
func Aggregate(results []models.TradeResult) *models.BacktestStats {
	stats := &models.BacktestStats{
		ExitReasons: make(map[models.ExitReason]int),
		Results:     results,
	}

	// Partial exits can still carry positive PnL, so the win/loss averages
	// are taken over profitable and losing trades rather than outcomes.
	var grossWin, grossLoss float64
	var profitable, losing int

	for _, r := range results {
		stats.TotalTrades++
		stats.TotalPnL += r.PnL
		stats.ExitReasons[r.ExitReason]++

		switch r.Outcome {
		case models.OutcomeWin:
			stats.Wins++
		case models.OutcomeLoss:
			stats.Losses++
		case models.OutcomePartial:
			stats.Partials++
		}

		if r.PnL > 0 {
			grossWin += r.PnL
			profitable++
		} else if r.PnL < 0 {
			grossLoss -= r.PnL
			losing++
		}
	}

	if stats.TotalTrades == 0 {
		return stats
	}

	stats.WinRate = float64(stats.Wins) / float64(stats.TotalTrades) * 100
	stats.AveragePnL = stats.TotalPnL / float64(stats.TotalTrades)

	if profitable > 0 {
		stats.AverageWin = grossWin / float64(profitable)
	}
	if losing > 0 {
		stats.AverageLoss = grossLoss / float64(losing)
		stats.ProfitFactor = (stats.AverageWin * float64(profitable)) /
			(stats.AverageLoss * float64(losing))
	}

	return stats
}
