// Package structure classifies market structure over a candle window:
// liquidity sweeps, chart patterns, the discrete trend/volatility regime
// and a coarse categorical summary. Unlike the indicator engine these
// functions degrade gracefully on short windows: absence of a pattern is
// a valid outcome, not a fault.
package structure

import (
	"github.com/altf4-dev/strategist/internal/indicator"
	"github.com/altf4-dev/strategist/models"
)

// AssessConditions derives the categorical market summary from the candle
// window. Everything it cannot compute on a short window falls back to the
// neutral bucket.
func AssessConditions(candles []models.Candle, cfg *models.Config) models.MarketConditions {
	conditions := models.MarketConditions{
		Trend:       models.TrendSideways,
		Volatility:  models.VolatilityLow,
		VolumeTrend: models.VolumeStable,
		Momentum:    models.MomentumNeutral,
	}
	if len(candles) == 0 {
		return conditions
	}

	conditions.Volatility = volatilityBucket(candles, cfg)

	if vol, err := indicator.VolumeMetrics(Volumes(candles), cfg); err == nil {
		conditions.VolumeTrend = vol.Trend
	}

	closes := Closes(candles)
	ind, err := indicator.AllIndicators(closes, cfg)
	if err != nil {
		return conditions
	}

	if ind.EMASlow != 0 {
		strength := (ind.EMAFast - ind.EMASlow) / ind.EMASlow
		switch {
		case strength > cfg.WeakTrendThreshold:
			conditions.Trend = models.TrendUp
		case strength < -cfg.WeakTrendThreshold:
			conditions.Trend = models.TrendDown
		}
	}

	switch {
	case ind.EMAFast > ind.EMASlow && ind.RSI > 55:
		conditions.Momentum = models.MomentumBullish
	case ind.EMAFast < ind.EMASlow && ind.RSI < 45:
		conditions.Momentum = models.MomentumBearish
	}

	return conditions
}
