package signal

import (
	"fmt"
	"math"

	"github.com/altf4-dev/strategist/models"
)

// Mean-reversion score weights. The Bollinger and RSI extreme bonuses are
// deliberately smaller than the regime and trend-strength terms so that a
// single stretched indicator cannot qualify a trade on its own.
const (
	mrBase = 50.0

	mrRanging   = 20.0
	mrWeakTrend = 5.0

	mrSweepMax      = 15.0
	mrPatternMax    = 12.0
	mrTrendPenalty  = 30.0
	mrBollingerBand = 8.0
	mrRSIOversold   = 8.0
	mrHigherLows    = 5.0
)

// ScoreMeanReversion rates the window for a reversion long. Strong trends
// in either direction hard-block the score to zero: mean reversion fails
// badly when it fights trend continuation, so unlike momentum's soft
// penalty this is an override, not an adjustment.
func ScoreMeanReversion(s *Snapshot, cfg *models.Config) (float64, []string) {
	if s.Regime.Regime == models.RegimeStrongUptrend || s.Regime.Regime == models.RegimeStrongDowntrend {
		return 0, []string{fmt.Sprintf("blocked: %s regime, do not fade a strong trend", s.Regime.Regime)}
	}

	score := mrBase
	var reasoning []string

	switch s.Regime.Regime {
	case models.RegimeRanging:
		score += mrRanging
		reasoning = append(reasoning, fmt.Sprintf("ranging regime favours reversion (+%.0f)", mrRanging))
	case models.RegimeWeakUptrend, models.RegimeWeakDowntrend:
		score += mrWeakTrend
		reasoning = append(reasoning, fmt.Sprintf("weak trend still allows reversion (+%.0f)", mrWeakTrend))
	}

	if s.Sweep.Detected && s.Sweep.Direction == models.SweepBullish {
		bonus := mrSweepMax * s.Sweep.Confidence / 100
		score += bonus
		reasoning = append(reasoning, fmt.Sprintf("bullish liquidity sweep (+%.1f)", bonus))
	}

	if s.Pattern.Detected &&
		(s.Pattern.Kind == models.PatternDoubleBottom || s.Pattern.Kind == models.PatternHigherLow) {
		bonus := mrPatternMax * s.Pattern.Confidence / 100
		score += bonus
		reasoning = append(reasoning, fmt.Sprintf("reversal %s pattern (+%.1f)", s.Pattern.Kind, bonus))
	}

	// Counter-trend dip-buying gets penalized, not rewarded: the deeper the
	// downtrend, the more the score is pulled back, up to the full penalty
	// at the strong-trend boundary.
	if ts := s.Regime.TrendStrength; ts < 0 {
		penalty := mrTrendPenalty * math.Min(1, -ts/cfg.StrongTrendThreshold)
		score -= penalty
		reasoning = append(reasoning, fmt.Sprintf("downward trend strength %.4f (-%.1f)", ts, penalty))
	}

	lastClose := s.Candles[len(s.Candles)-1].Close
	if lastClose <= s.Indicators.BBLower {
		score += mrBollingerBand
		reasoning = append(reasoning, fmt.Sprintf("close %.4f at or below lower Bollinger band (+%.0f)", lastClose, mrBollingerBand))
	}

	if s.Indicators.RSI < 30 {
		score += mrRSIOversold
		reasoning = append(reasoning, fmt.Sprintf("RSI %.1f oversold (+%.0f)", s.Indicators.RSI, mrRSIOversold))
	}

	if n := len(s.Candles); n >= 3 &&
		s.Candles[n-1].Low > s.Candles[n-2].Low && s.Candles[n-2].Low > s.Candles[n-3].Low {
		score += mrHigherLows
		reasoning = append(reasoning, fmt.Sprintf("higher lows over last three candles (+%.0f)", mrHigherLows))
	}

	return clampScore(score), reasoning
}
