// Package indicator implements the numeric indicator engine: pure
// functions over a price series with no hidden state. Every function fails
// fast with an InsufficientDataError when the series is shorter than the
// indicator's period.
package indicator

import "github.com/altf4-dev/strategist/models"

// minSamples covers the slow EMA, which needs the longest window of the
// aggregate set.
const minSamples = 21

// AllIndicators computes the standard snapshot used by the structure
// classifier and the signal scorers: EMA(9), EMA(21), RSI(14) and
// Bollinger(20, 2).
func AllIndicators(prices []float64, cfg *models.Config) (*models.Indicators, error) {
	if len(prices) < minSamples {
		return nil, insufficientData("indicators", minSamples, len(prices))
	}

	emaFast, err := EMA(prices, cfg.EMAFastPeriod)
	if err != nil {
		return nil, err
	}
	emaSlow, err := EMA(prices, cfg.EMASlowPeriod)
	if err != nil {
		return nil, err
	}
	rsi, err := RSI(prices, cfg.RSIPeriod)
	if err != nil {
		return nil, err
	}
	upper, middle, lower, err := BollingerBands(prices, cfg.BBPeriod, cfg.BBStdDev)
	if err != nil {
		return nil, err
	}

	return &models.Indicators{
		EMAFast:  emaFast,
		EMASlow:  emaSlow,
		RSI:      rsi,
		BBUpper:  upper,
		BBMiddle: middle,
		BBLower:  lower,
	}, nil
}
