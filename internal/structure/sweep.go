package structure

import (
	"fmt"
	"math"

	"github.com/altf4-dev/strategist/models"
)

// sweepMinExtra is how many candles beyond the lookback window must exist
// before a sweep is evaluated at all.
const sweepMinExtra = 5

// DetectLiquiditySweep checks whether the newest candle swept the liquidity
// resting beyond the prior lookback window's extreme and then reversed
// within the same candle. A window shorter than lookback+5 candles is never
// evaluated; absence of a sweep is a valid result, not an error.
func DetectLiquiditySweep(candles []models.Candle, cfg *models.Config) models.LiquiditySweep {
	none := models.LiquiditySweep{Direction: models.SweepNone}

	lookback := cfg.SweepLookback
	if len(candles) < lookback+sweepMinExtra {
		return none
	}

	newest := candles[len(candles)-1]
	window := candles[len(candles)-1-lookback : len(candles)-1]

	minLow := window[0].Low
	maxHigh := window[0].High
	for _, c := range window[1:] {
		if c.Low < minLow {
			minLow = c.Low
		}
		if c.High > maxHigh {
			maxHigh = c.High
		}
	}

	body := math.Abs(newest.Close - newest.Open)
	lowerWick := math.Min(newest.Open, newest.Close) - newest.Low
	upperWick := newest.High - math.Max(newest.Open, newest.Close)

	// Bullish: undercut the window low, recover above it, close green with
	// a long lower wick. Stops below the range were taken and rejected.
	if newest.Low < minLow && newest.Close > minLow &&
		newest.Close > newest.Open && body > 0 &&
		lowerWick >= body*cfg.SweepMinWickToBody {
		return models.LiquiditySweep{
			Detected:   true,
			Direction:  models.SweepBullish,
			Confidence: sweepConfidence(lowerWick, body, cfg),
			Description: fmt.Sprintf("swept %d-candle low %.4f and closed back above it",
				lookback, minLow),
		}
	}

	// Bearish mirror on the window high.
	if newest.High > maxHigh && newest.Close < maxHigh &&
		newest.Close < newest.Open && body > 0 &&
		upperWick >= body*cfg.SweepMinWickToBody {
		return models.LiquiditySweep{
			Detected:   true,
			Direction:  models.SweepBearish,
			Confidence: sweepConfidence(upperWick, body, cfg),
			Description: fmt.Sprintf("swept %d-candle high %.4f and closed back below it",
				lookback, maxHigh),
		}
	}

	return none
}

func sweepConfidence(wick, body float64, cfg *models.Config) float64 {
	return math.Min(100, cfg.SweepBaseConf+(wick/body)*cfg.SweepWickConfScale)
}
