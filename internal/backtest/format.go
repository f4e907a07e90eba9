package backtest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/altf4-dev/strategist/models"
)

// FormatStats creates a human-readable summary of a backtest run.
func FormatStats(stats *models.BacktestStats) string {
	if stats == nil || stats.TotalTrades == 0 {
		return "No trades qualified for this run"
	}

	var b strings.Builder
	b.WriteString("\n===== BACKTEST RESULTS =====\n")
	fmt.Fprintf(&b, "Total trades: %d\n", stats.TotalTrades)
	fmt.Fprintf(&b, "Wins: %d  Losses: %d  Partials: %d\n", stats.Wins, stats.Losses, stats.Partials)
	fmt.Fprintf(&b, "Win rate: %.2f%%\n", stats.WinRate)
	fmt.Fprintf(&b, "Total PnL: %.4f (avg %.4f per trade)\n", stats.TotalPnL, stats.AveragePnL)
	fmt.Fprintf(&b, "Average win: %.4f  Average loss: %.4f\n", stats.AverageWin, stats.AverageLoss)
	fmt.Fprintf(&b, "Profit factor: %.2f\n", stats.ProfitFactor)

	if len(stats.ExitReasons) > 0 {
		b.WriteString("\nExits by reason:\n")

		reasons := make([]string, 0, len(stats.ExitReasons))
		for reason := range stats.ExitReasons {
			reasons = append(reasons, string(reason))
		}
		sort.Strings(reasons)

		for _, reason := range reasons {
			fmt.Fprintf(&b, "- %s: %d\n", reason, stats.ExitReasons[models.ExitReason(reason)])
		}
	}

	return b.String()
}
