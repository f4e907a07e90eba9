package models

import (
	"time"
)

// Candle represents a single price candle. Series are ordered oldest-first
// and consumers index by position; no calendar alignment is assumed.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Indicators holds the standard indicator snapshot computed from a trailing
// window of closes.
type Indicators struct {
	EMAFast  float64 `json:"ema_fast"`
	EMASlow  float64 `json:"ema_slow"`
	RSI      float64 `json:"rsi"`
	BBUpper  float64 `json:"bb_upper"`
	BBMiddle float64 `json:"bb_middle"`
	BBLower  float64 `json:"bb_lower"`
}

// Trend direction buckets.
type Trend string

const (
	TrendUp       Trend = "up"
	TrendDown     Trend = "down"
	TrendSideways Trend = "sideways"
)

// VolatilityLevel buckets.
type VolatilityLevel string

const (
	VolatilityLow    VolatilityLevel = "low"
	VolatilityMedium VolatilityLevel = "medium"
	VolatilityHigh   VolatilityLevel = "high"
)

// VolumeTrend buckets.
type VolumeTrend string

const (
	VolumeIncreasing VolumeTrend = "increasing"
	VolumeDecreasing VolumeTrend = "decreasing"
	VolumeStable     VolumeTrend = "stable"
)

// Momentum buckets.
type Momentum string

const (
	MomentumBullish Momentum = "bullish"
	MomentumBearish Momentum = "bearish"
	MomentumNeutral Momentum = "neutral"
)

// MarketConditions is a coarse categorical summary of recent price action.
type MarketConditions struct {
	Trend       Trend           `json:"trend"`
	Volatility  VolatilityLevel `json:"volatility"`
	VolumeTrend VolumeTrend     `json:"volume_trend"`
	Momentum    Momentum        `json:"momentum"`
}

// SweepDirection of a liquidity sweep.
type SweepDirection string

const (
	SweepBullish SweepDirection = "bullish"
	SweepBearish SweepDirection = "bearish"
	SweepNone    SweepDirection = "none"
)

// LiquiditySweep describes a single-candle stop-hunt event relative to a
// trailing lookback window.
type LiquiditySweep struct {
	Detected    bool           `json:"detected"`
	Direction   SweepDirection `json:"direction"`
	Confidence  float64        `json:"confidence"` // 0-100
	Description string         `json:"description,omitempty"`
}

// PatternKind identifies a detected chart pattern.
type PatternKind string

const (
	PatternHigherLow    PatternKind = "higher_low"
	PatternLowerHigh    PatternKind = "lower_high"
	PatternDoubleBottom PatternKind = "double_bottom"
	PatternBullFlag     PatternKind = "bull_flag"
	PatternNone         PatternKind = "none"
)

// ChartPattern is the single pattern reported per evaluation. Detection runs
// in fixed priority order, so at most one kind is ever set.
type ChartPattern struct {
	Detected   bool        `json:"detected"`
	Kind       PatternKind `json:"kind"`
	Confidence float64     `json:"confidence"` // 0-100
}

// RegimeKind is the discrete market regime bucket.
type RegimeKind string

const (
	RegimeStrongUptrend   RegimeKind = "strong_uptrend"
	RegimeWeakUptrend     RegimeKind = "weak_uptrend"
	RegimeRanging         RegimeKind = "ranging"
	RegimeWeakDowntrend   RegimeKind = "weak_downtrend"
	RegimeStrongDowntrend RegimeKind = "strong_downtrend"
)

// MarketRegime combines trend strength and a volatility bucket.
type MarketRegime struct {
	Regime     RegimeKind      `json:"regime"`
	Volatility VolatilityLevel `json:"volatility"`
	Confidence float64         `json:"confidence"` // 0-100
	// TrendStrength is the raw (ema_fast-ema_slow)/ema_slow ratio the
	// bucket was derived from; scorers reuse it for graded penalties.
	TrendStrength float64 `json:"trend_strength"`
}

// VolumeMetrics summarizes recent volume behaviour.
type VolumeMetrics struct {
	Current float64     `json:"current"`
	Average float64     `json:"average"`
	Ratio   float64     `json:"ratio"`
	Trend   VolumeTrend `json:"trend"`
}

// Strategy names a scoring/trading strategy.
type Strategy string

const (
	StrategyMomentum      Strategy = "momentum"
	StrategyMeanReversion Strategy = "mean_reversion"
)

// TradeSetup is a candidate trade derived at one point in the series.
// Immutable once created.
type TradeSetup struct {
	Timestamp      time.Time `json:"timestamp"`
	Strategy       Strategy  `json:"strategy"`
	Entry          float64   `json:"entry"`
	StopLoss       float64   `json:"stop_loss"`
	TakeProfit1    float64   `json:"take_profit_1"`
	TakeProfit2    float64   `json:"take_profit_2"`
	TakeProfit3    float64   `json:"take_profit_3"`
	SignalStrength float64   `json:"signal_strength"` // 0-100
	Reasoning      []string  `json:"reasoning"`
}

// Outcome of a simulated trade.
type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
	OutcomePartial Outcome = "partial"
)

// ExitReason identifies which level or condition closed a simulated trade.
type ExitReason string

const (
	ExitTP1      ExitReason = "TP1"
	ExitTP2      ExitReason = "TP2"
	ExitTP3      ExitReason = "TP3"
	ExitStopLoss ExitReason = "STOP_LOSS"
	ExitTimeout  ExitReason = "TIMEOUT"
)

// TradeResult is the outcome of walking a TradeSetup forward through
// subsequent candles. Immutable once computed.
type TradeResult struct {
	Setup           TradeSetup `json:"setup"`
	Outcome         Outcome    `json:"outcome"`
	ExitPrice       float64    `json:"exit_price"`
	ExitReason      ExitReason `json:"exit_reason"`
	PnL             float64    `json:"pnl"`
	PnLPercent      float64    `json:"pnl_percent"`
	DurationCandles int        `json:"duration_candles"`
}

// BacktestStats aggregates trade outcomes over one backtest run. Owned by
// the backtest runner and recomputed fresh each run.
type BacktestStats struct {
	TotalTrades  int                `json:"total_trades"`
	Wins         int                `json:"wins"`
	Losses       int                `json:"losses"`
	Partials     int                `json:"partials"`
	WinRate      float64            `json:"win_rate"` // percent
	TotalPnL     float64            `json:"total_pnl"`
	AveragePnL   float64            `json:"average_pnl"`
	AverageWin   float64            `json:"average_win"`
	AverageLoss  float64            `json:"average_loss"` // absolute value
	ProfitFactor float64            `json:"profit_factor"`
	ExitReasons  map[ExitReason]int `json:"exit_reasons"`
	Results      []TradeResult      `json:"results,omitempty"`
}
