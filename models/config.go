package models

// Config carries every numeric threshold the classifier, scorer and
// simulator use. Callers pass it explicitly; there is no package-level
// state anywhere in the engine, so two runs with the same candles and the
// same Config always produce identical output.
type Config struct {
	// Indicator periods.
	EMAFastPeriod int
	EMASlowPeriod int
	RSIPeriod     int
	BBPeriod      int
	BBStdDev      float64

	// Volume trend thresholds on the 5-vs-5 sample averages. The
	// increasing ratio also gates the momentum scorer's volume
	// confirmation.
	VolumeIncreasingRatio float64
	VolumeDecreasingRatio float64

	// Liquidity sweep.
	SweepLookback      int
	SweepMinWickToBody float64
	SweepBaseConf      float64
	SweepWickConfScale float64

	// Chart patterns.
	PatternLookback    int
	DoubleBottomMaxGap float64 // max relative price gap between the two lows
	DoubleBottomMinSep int     // min candles between the two lows
	FlagPoleWindow     int
	FlagPoleMinMove    float64
	FlagMaxRange       float64

	// Market regime.
	StrongTrendThreshold float64
	WeakTrendThreshold   float64
	TrueRangePeriod      int
	LowVolThreshold      float64
	MediumVolThreshold   float64

	// Trade setups and execution.
	MinHistory        int
	MaxHoldCandles    int
	RetraceFactor     float64 // TP retrace exit at TPn * RetraceFactor
	MomentumStopPct   float64
	MomentumTP1Pct    float64
	MomentumTP2Pct    float64
	MomentumTP3Pct    float64
	MomentumMinSignal float64
	MeanRevStopPct    float64
	MeanRevTP1Pct     float64
	MeanRevTP2Pct     float64
	MeanRevTP3Pct     float64
	MeanRevMinSignal  float64
}

// DefaultConfig returns the stock thresholds the engine is tuned for.
func DefaultConfig() *Config {
	return &Config{
		EMAFastPeriod: 9,
		EMASlowPeriod: 21,
		RSIPeriod:     14,
		BBPeriod:      20,
		BBStdDev:      2.0,

		VolumeIncreasingRatio: 1.2,
		VolumeDecreasingRatio: 0.8,

		SweepLookback:      10,
		SweepMinWickToBody: 0.5,
		SweepBaseConf:      60,
		SweepWickConfScale: 20,

		PatternLookback:    20,
		DoubleBottomMaxGap: 0.02,
		DoubleBottomMinSep: 3,
		FlagPoleWindow:     8,
		FlagPoleMinMove:    0.05,
		FlagMaxRange:       0.03,

		StrongTrendThreshold: 0.03,
		WeakTrendThreshold:   0.01,
		TrueRangePeriod:      20,
		LowVolThreshold:      0.01,
		MediumVolThreshold:   0.025,

		MinHistory:        30,
		MaxHoldCandles:    24,
		RetraceFactor:     0.995,
		MomentumStopPct:   0.03,
		MomentumTP1Pct:    0.01,
		MomentumTP2Pct:    0.02,
		MomentumTP3Pct:    0.035,
		MomentumMinSignal: 75,
		MeanRevStopPct:    0.04,
		MeanRevTP1Pct:     0.015,
		MeanRevTP2Pct:     0.03,
		MeanRevTP3Pct:     0.045,
		MeanRevMinSignal:  65,
	}
}
