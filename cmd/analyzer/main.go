package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/altf4-dev/strategist/internal/config"
	"github.com/altf4-dev/strategist/internal/marketdata"
	"github.com/altf4-dev/strategist/internal/signal"
	"github.com/altf4-dev/strategist/internal/trade"
	"github.com/altf4-dev/strategist/models"
)

// analyzer prints the full analysis of the latest candle window: the
// indicator snapshot, market structure, both strategy scores and any
// qualifying setups.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	ctx := context.Background()

	var candles []models.Candle
	if cfg.CandleFile != "" {
		candles, err = marketdata.LoadCSV(cfg.CandleFile)
	} else {
		client := marketdata.NewClient(marketdata.ClientOptions{
			BaseURL:        cfg.BaseURL,
			RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		})
		candles, err = client.GetCandles(ctx, cfg.Symbol, cfg.Interval, cfg.CandleCount)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("loading candles failed")
	}

	engineCfg := models.DefaultConfig()

	snapshot, err := signal.Analyze(candles, engineCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	last := candles[len(candles)-1]
	fmt.Printf("%s @ %.4f (%s)\n", cfg.Symbol, last.Close, last.Timestamp.Format(time.RFC3339))
	fmt.Printf("EMA fast/slow: %.4f / %.4f  RSI: %.1f\n",
		snapshot.Indicators.EMAFast, snapshot.Indicators.EMASlow, snapshot.Indicators.RSI)
	fmt.Printf("Bollinger: %.4f / %.4f / %.4f\n",
		snapshot.Indicators.BBUpper, snapshot.Indicators.BBMiddle, snapshot.Indicators.BBLower)
	fmt.Printf("Regime: %s (volatility %s, confidence %.0f)\n",
		snapshot.Regime.Regime, snapshot.Regime.Volatility, snapshot.Regime.Confidence)
	fmt.Printf("Conditions: trend=%s volume=%s momentum=%s\n",
		snapshot.Conditions.Trend, snapshot.Conditions.VolumeTrend, snapshot.Conditions.Momentum)

	if snapshot.Sweep.Detected {
		fmt.Printf("Liquidity sweep: %s (%.0f): %s\n",
			snapshot.Sweep.Direction, snapshot.Sweep.Confidence, snapshot.Sweep.Description)
	}
	if snapshot.Pattern.Detected {
		fmt.Printf("Chart pattern: %s (%.0f)\n", snapshot.Pattern.Kind, snapshot.Pattern.Confidence)
	}

	momentumScore, momentumReasons := signal.ScoreMomentum(snapshot, engineCfg)
	reversionScore, reversionReasons := signal.ScoreMeanReversion(snapshot, engineCfg)
	fmt.Printf("\nMomentum score: %.0f\n", momentumScore)
	for _, r := range momentumReasons {
		fmt.Printf("  - %s\n", r)
	}
	fmt.Printf("Mean-reversion score: %.0f\n", reversionScore)
	for _, r := range reversionReasons {
		fmt.Printf("  - %s\n", r)
	}

	for _, strategy := range []models.Strategy{models.StrategyMomentum, models.StrategyMeanReversion} {
		if setup := trade.BuildSetup(candles, strategy, engineCfg); setup != nil {
			fmt.Printf("\n%s setup: entry %.4f stop %.4f TP %.4f/%.4f/%.4f (signal %.0f)\n",
				setup.Strategy, setup.Entry, setup.StopLoss,
				setup.TakeProfit1, setup.TakeProfit2, setup.TakeProfit3, setup.SignalStrength)
		}
	}
}
