// Package signal turns indicator and structure output into bounded 0-100
// strategy scores. Both scorers start from a neutral baseline and apply
// additive adjustments before clamping, so independent signals combine
// without a learned model and every adjustment is explainable through the
// accumulated reasoning list.
package signal

import (
	"github.com/altf4-dev/strategist/internal/indicator"
	"github.com/altf4-dev/strategist/internal/structure"
	"github.com/altf4-dev/strategist/models"
)

// Snapshot bundles everything the scorers evaluate at one point in the
// series.
type Snapshot struct {
	Candles    []models.Candle
	Indicators *models.Indicators
	Volume     *models.VolumeMetrics // nil when the series has no volume data
	Regime     models.MarketRegime
	Sweep      models.LiquiditySweep
	Pattern    models.ChartPattern
	Conditions models.MarketConditions
}

// Analyze runs the indicator engine and the structure classifier over the
// window and collects their output. The indicator engine's error is the
// only failure mode; the classifiers degrade gracefully on their own.
func Analyze(candles []models.Candle, cfg *models.Config) (*Snapshot, error) {
	ind, err := indicator.AllIndicators(structure.Closes(candles), cfg)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Candles:    candles,
		Indicators: ind,
		Regime:     structure.ClassifyRegime(candles, cfg),
		Sweep:      structure.DetectLiquiditySweep(candles, cfg),
		Pattern:    structure.DetectChartPattern(candles, cfg),
		Conditions: structure.AssessConditions(candles, cfg),
	}

	if vol, err := indicator.VolumeMetrics(structure.Volumes(candles), cfg); err == nil {
		snapshot.Volume = vol
	}

	return snapshot, nil
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
