package structure

import (
	"math"

	"github.com/altf4-dev/strategist/internal/indicator"
	"github.com/altf4-dev/strategist/models"
)

// regimeMinCandles is the window below which classification degrades to the
// default ranging regime instead of erroring; "no regime" is a valid answer.
const regimeMinCandles = 20

const defaultRegimeConfidence = 25

// ClassifyRegime buckets the market into a discrete trend-strength regime
// and a volatility level. Trend strength is the relative spread between the
// fast and slow EMA; volatility is the mean true range over the trailing
// window relative to the average close.
func ClassifyRegime(candles []models.Candle, cfg *models.Config) models.MarketRegime {
	if len(candles) < regimeMinCandles {
		return models.MarketRegime{
			Regime:     models.RegimeRanging,
			Volatility: models.VolatilityLow,
			Confidence: defaultRegimeConfidence,
		}
	}

	closes := Closes(candles)

	emaFast, errFast := indicator.EMA(closes, cfg.EMAFastPeriod)
	emaSlow, errSlow := indicator.EMA(closes, cfg.EMASlowPeriod)
	if errFast != nil || errSlow != nil || emaSlow == 0 {
		return models.MarketRegime{
			Regime:     models.RegimeRanging,
			Volatility: models.VolatilityLow,
			Confidence: defaultRegimeConfidence,
		}
	}

	strength := (emaFast - emaSlow) / emaSlow

	var regime models.RegimeKind
	switch {
	case strength > cfg.StrongTrendThreshold:
		regime = models.RegimeStrongUptrend
	case strength > cfg.WeakTrendThreshold:
		regime = models.RegimeWeakUptrend
	case strength < -cfg.StrongTrendThreshold:
		regime = models.RegimeStrongDowntrend
	case strength < -cfg.WeakTrendThreshold:
		regime = models.RegimeWeakDowntrend
	default:
		regime = models.RegimeRanging
	}

	return models.MarketRegime{
		Regime:        regime,
		Volatility:    volatilityBucket(candles, cfg),
		Confidence:    math.Min(95, 50+math.Abs(strength)*1500),
		TrendStrength: strength,
	}
}

// volatilityBucket classifies mean true range over the trailing window
// against the average close.
func volatilityBucket(candles []models.Candle, cfg *models.Config) models.VolatilityLevel {
	period := cfg.TrueRangePeriod
	if len(candles) < period {
		period = len(candles)
	}
	window := candles[len(candles)-period:]

	var trSum, closeSum float64
	for i, c := range window {
		tr := c.High - c.Low
		if i > 0 {
			prevClose := window[i-1].Close
			tr = math.Max(tr, math.Abs(c.High-prevClose))
			tr = math.Max(tr, math.Abs(c.Low-prevClose))
		}
		trSum += tr
		closeSum += c.Close
	}

	avgClose := closeSum / float64(len(window))
	if avgClose == 0 {
		return models.VolatilityLow
	}
	ratio := (trSum / float64(len(window))) / avgClose

	switch {
	case ratio < cfg.LowVolThreshold:
		return models.VolatilityLow
	case ratio < cfg.MediumVolThreshold:
		return models.VolatilityMedium
	default:
		return models.VolatilityHigh
	}
}

// Closes extracts the close series from a candle window.
func Closes(candles []models.Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// Volumes extracts the volume series from a candle window.
func Volumes(candles []models.Candle) []float64 {
	volumes := make([]float64, len(candles))
	for i, c := range candles {
		volumes[i] = c.Volume
	}
	return volumes
}
