package trade

import (
	"github.com/altf4-dev/strategist/models"
)

// Simulate walks a setup forward through at most MaxHoldCandles future
// candles and applies the exit state machine:
//
//  1. Stop breach exits immediately, partial if a TP was already hit,
//     loss otherwise. Within one candle the stop always has priority over
//     any take-profit condition.
//  2. TP1 and TP2 touches are latched, not exited; the position keeps
//     running toward TP3.
//  3. A TP3 touch exits as a full win.
//  4. A close retracing below a latched TP2 (TP1) by the retrace factor
//     exits at that level: win at TP2, partial at TP1.
//  5. An exhausted window exits at the last close with reason TIMEOUT.
//
// An empty future window yields an immediate TIMEOUT at the entry price
// with zero duration. Simulation never errors: setups are constructed
// internally from validated indicator output.
func Simulate(setup *models.TradeSetup, future []models.Candle, cfg *models.Config) models.TradeResult {
	if len(future) > cfg.MaxHoldCandles {
		future = future[:cfg.MaxHoldCandles]
	}
	if len(future) == 0 {
		return finish(setup, setup.Entry, models.ExitTimeout, models.OutcomeLoss, 0)
	}

	tp1Hit := false
	tp2Hit := false

	for i, candle := range future {
		held := i + 1

		if candle.Low <= setup.StopLoss {
			outcome := models.OutcomeLoss
			if tp1Hit || tp2Hit {
				outcome = models.OutcomePartial
			}
			return finish(setup, setup.StopLoss, models.ExitStopLoss, outcome, held)
		}

		if candle.High >= setup.TakeProfit1 && !tp1Hit {
			tp1Hit = true
		} else if candle.High >= setup.TakeProfit2 && !tp2Hit {
			tp2Hit = true
		}

		switch {
		case candle.High >= setup.TakeProfit3:
			return finish(setup, setup.TakeProfit3, models.ExitTP3, models.OutcomeWin, held)
		case tp2Hit && candle.Close < setup.TakeProfit2*cfg.RetraceFactor:
			return finish(setup, setup.TakeProfit2, models.ExitTP2, models.OutcomeWin, held)
		case tp1Hit && !tp2Hit && candle.Close < setup.TakeProfit1*cfg.RetraceFactor:
			return finish(setup, setup.TakeProfit1, models.ExitTP1, models.OutcomePartial, held)
		}
	}

	exitPrice := future[len(future)-1].Close
	outcome := models.OutcomeLoss
	if tp1Hit || tp2Hit {
		outcome = models.OutcomePartial
	} else if exitPrice > setup.Entry {
		outcome = models.OutcomeWin
	}
	return finish(setup, exitPrice, models.ExitTimeout, outcome, len(future))
}

func finish(setup *models.TradeSetup, exitPrice float64, reason models.ExitReason, outcome models.Outcome, held int) models.TradeResult {
	pnl := exitPrice - setup.Entry
	pnlPercent := 0.0
	if setup.Entry != 0 {
		pnlPercent = pnl / setup.Entry * 100
	}
	return models.TradeResult{
		Setup:           *setup,
		Outcome:         outcome,
		ExitPrice:       exitPrice,
		ExitReason:      reason,
		PnL:             pnl,
		PnLPercent:      pnlPercent,
		DurationCandles: held,
	}
}
