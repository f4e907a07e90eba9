package structure

import (
	"math"

	"github.com/altf4-dev/strategist/models"
)

// patternDetector evaluates one pattern over a candle window and reports
// whether it fired.
type patternDetector func(window []models.Candle, cfg *models.Config) (models.ChartPattern, bool)

// patternChain is the fixed evaluation order. The first detector that fires
// wins; downstream scoring depends on which single pattern is reported, so
// the order is a deliberate tie-break and must not be rearranged.
var patternChain = []patternDetector{
	detectHigherLows,
	detectLowerHighs,
	detectDoubleBottom,
	detectBullFlag,
}

// DetectChartPattern evaluates the pattern detectors in priority order over
// the trailing lookback window and returns the first match. A window
// shorter than the lookback yields "none".
func DetectChartPattern(candles []models.Candle, cfg *models.Config) models.ChartPattern {
	none := models.ChartPattern{Kind: models.PatternNone}

	if len(candles) < cfg.PatternLookback {
		return none
	}
	window := candles[len(candles)-cfg.PatternLookback:]

	for _, detect := range patternChain {
		if pattern, ok := detect(window, cfg); ok {
			return pattern
		}
	}
	return none
}

// localLows returns the prices of candles whose low is strictly below both
// neighbours, in window order.
func localLows(window []models.Candle) []float64 {
	var lows []float64
	for i := 1; i < len(window)-1; i++ {
		if window[i].Low < window[i-1].Low && window[i].Low < window[i+1].Low {
			lows = append(lows, window[i].Low)
		}
	}
	return lows
}

// localHighs returns the prices of candles whose high is strictly above
// both neighbours, in window order.
func localHighs(window []models.Candle) []float64 {
	var highs []float64
	for i := 1; i < len(window)-1; i++ {
		if window[i].High > window[i-1].High && window[i].High > window[i+1].High {
			highs = append(highs, window[i].High)
		}
	}
	return highs
}

func detectHigherLows(window []models.Candle, cfg *models.Config) (models.ChartPattern, bool) {
	lows := localLows(window)
	if len(lows) < 3 {
		return models.ChartPattern{}, false
	}

	a, b, c := lows[len(lows)-3], lows[len(lows)-2], lows[len(lows)-1]
	if !(a < b && b < c) {
		return models.ChartPattern{}, false
	}

	move := (c - a) / a
	return models.ChartPattern{
		Detected:   true,
		Kind:       models.PatternHigherLow,
		Confidence: math.Min(95, 60+move*1000),
	}, true
}

func detectLowerHighs(window []models.Candle, cfg *models.Config) (models.ChartPattern, bool) {
	highs := localHighs(window)
	if len(highs) < 3 {
		return models.ChartPattern{}, false
	}

	a, b, c := highs[len(highs)-3], highs[len(highs)-2], highs[len(highs)-1]
	if !(a > b && b > c) {
		return models.ChartPattern{}, false
	}

	move := (a - c) / a
	return models.ChartPattern{
		Detected:   true,
		Kind:       models.PatternLowerHigh,
		Confidence: math.Min(95, 60+move*1000),
	}, true
}

func detectDoubleBottom(window []models.Candle, cfg *models.Config) (models.ChartPattern, bool) {
	// Troughs need a 5-candle strict-minimum neighbourhood, which filters
	// the noise that the plain 3-candle extrema above would let through.
	var troughs []int
	for i := 2; i < len(window)-2; i++ {
		if window[i].Low < window[i-2].Low && window[i].Low < window[i-1].Low &&
			window[i].Low < window[i+1].Low && window[i].Low < window[i+2].Low {
			troughs = append(troughs, i)
		}
	}
	if len(troughs) < 2 {
		return models.ChartPattern{}, false
	}

	first := troughs[len(troughs)-2]
	second := troughs[len(troughs)-1]
	if second-first < cfg.DoubleBottomMinSep {
		return models.ChartPattern{}, false
	}

	p1, p2 := window[first].Low, window[second].Low
	gap := math.Abs(p1-p2) / p1
	if gap > cfg.DoubleBottomMaxGap {
		return models.ChartPattern{}, false
	}

	// Tighter bottoms are more reliable, so confidence decays with the gap.
	return models.ChartPattern{
		Detected:   true,
		Kind:       models.PatternDoubleBottom,
		Confidence: math.Min(95, 85-gap*1000),
	}, true
}

func detectBullFlag(window []models.Candle, cfg *models.Config) (models.ChartPattern, bool) {
	pole := cfg.FlagPoleWindow
	if len(window) < 2*pole {
		return models.ChartPattern{}, false
	}

	poleWindow := window[len(window)-2*pole : len(window)-pole]
	flagWindow := window[len(window)-pole:]

	poleStart := poleWindow[0].Close
	poleEnd := poleWindow[len(poleWindow)-1].Close
	if poleStart <= 0 {
		return models.ChartPattern{}, false
	}
	poleMove := (poleEnd - poleStart) / poleStart
	if poleMove < cfg.FlagPoleMinMove {
		return models.ChartPattern{}, false
	}

	minClose := flagWindow[0].Close
	maxClose := flagWindow[0].Close
	for _, c := range flagWindow[1:] {
		if c.Close < minClose {
			minClose = c.Close
		}
		if c.Close > maxClose {
			maxClose = c.Close
		}
	}
	if minClose <= 0 || (maxClose-minClose)/minClose > cfg.FlagMaxRange {
		return models.ChartPattern{}, false
	}

	return models.ChartPattern{
		Detected:   true,
		Kind:       models.PatternBullFlag,
		Confidence: math.Min(90, 50+poleMove*400),
	}, true
}
