package signal

import (
	"fmt"

	"github.com/altf4-dev/strategist/models"
)

// Momentum score weights. The regime carries the most weight; single
// indicators can nudge but never dominate.
const (
	momBase = 50.0

	momStrongUptrend = 25.0
	momWeakUptrend   = 15.0
	momRanging       = -10.0
	momDowntrend     = -30.0

	momSweepMax       = 20.0
	momPatternMax     = 15.0
	momBearishPattern = -15.0

	momEMAOrder = 10.0

	momRSIHealthy    = 10.0
	momRSIOverbought = -10.0
	momRSIWeak       = -5.0

	momVolumeConfirm = 10.0
)

// ScoreMomentum rates the window for trend-continuation longs. The result
// is clamped to [0,100]; the reasoning list records every adjustment that
// was applied.
func ScoreMomentum(s *Snapshot, cfg *models.Config) (float64, []string) {
	score := momBase
	var reasoning []string

	switch s.Regime.Regime {
	case models.RegimeStrongUptrend:
		score += momStrongUptrend
		reasoning = append(reasoning, fmt.Sprintf("strong uptrend regime (+%.0f)", momStrongUptrend))
	case models.RegimeWeakUptrend:
		score += momWeakUptrend
		reasoning = append(reasoning, fmt.Sprintf("weak uptrend regime (+%.0f)", momWeakUptrend))
	case models.RegimeRanging:
		score += momRanging
		reasoning = append(reasoning, fmt.Sprintf("ranging regime (%.0f)", momRanging))
	case models.RegimeWeakDowntrend, models.RegimeStrongDowntrend:
		score += momDowntrend
		reasoning = append(reasoning, fmt.Sprintf("downtrend regime (%.0f)", momDowntrend))
	}

	if s.Sweep.Detected && s.Sweep.Direction == models.SweepBullish {
		bonus := momSweepMax * s.Sweep.Confidence / 100
		score += bonus
		reasoning = append(reasoning, fmt.Sprintf("bullish liquidity sweep (+%.1f)", bonus))
	}

	if s.Pattern.Detected {
		switch s.Pattern.Kind {
		case models.PatternHigherLow, models.PatternDoubleBottom, models.PatternBullFlag:
			bonus := momPatternMax * s.Pattern.Confidence / 100
			score += bonus
			reasoning = append(reasoning, fmt.Sprintf("bullish %s pattern (+%.1f)", s.Pattern.Kind, bonus))
		case models.PatternLowerHigh:
			score += momBearishPattern
			reasoning = append(reasoning, fmt.Sprintf("bearish %s pattern (%.0f)", s.Pattern.Kind, momBearishPattern))
		}
	}

	if s.Indicators.EMAFast > s.Indicators.EMASlow {
		score += momEMAOrder
		reasoning = append(reasoning, fmt.Sprintf("fast EMA above slow EMA (+%.0f)", momEMAOrder))
	} else if s.Indicators.EMAFast < s.Indicators.EMASlow {
		score -= momEMAOrder
		reasoning = append(reasoning, fmt.Sprintf("fast EMA below slow EMA (-%.0f)", momEMAOrder))
	}

	switch rsi := s.Indicators.RSI; {
	case rsi >= 45 && rsi <= 65:
		score += momRSIHealthy
		reasoning = append(reasoning, fmt.Sprintf("RSI %.1f in healthy momentum zone (+%.0f)", rsi, momRSIHealthy))
	case rsi > 70:
		score += momRSIOverbought
		reasoning = append(reasoning, fmt.Sprintf("RSI %.1f overbought (%.0f)", rsi, momRSIOverbought))
	case rsi < 40:
		score += momRSIWeak
		reasoning = append(reasoning, fmt.Sprintf("RSI %.1f lacks momentum (%.0f)", rsi, momRSIWeak))
	}

	if s.Volume != nil && s.Volume.Trend == models.VolumeIncreasing &&
		s.Volume.Ratio > cfg.VolumeIncreasingRatio {
		score += momVolumeConfirm
		reasoning = append(reasoning, fmt.Sprintf("rising volume at %.2fx average (+%.0f)", s.Volume.Ratio, momVolumeConfirm))
	}

	return clampScore(score), reasoning
}
