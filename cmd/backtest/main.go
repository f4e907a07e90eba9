package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/altf4-dev/strategist/internal/backtest"
	"github.com/altf4-dev/strategist/internal/config"
	"github.com/altf4-dev/strategist/internal/marketdata"
	"github.com/altf4-dev/strategist/internal/storage"
	"github.com/altf4-dev/strategist/models"
)

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

	strategy := models.Strategy(cfg.Strategy)
	if strategy != models.StrategyMomentum && strategy != models.StrategyMeanReversion {
		log.Fatal().Str("strategy", cfg.Strategy).Msg("unknown strategy")
	}

	ctx := context.Background()

	candles, err := loadCandles(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading candles failed")
	}
	log.Info().
		Int("candles", len(candles)).
		Str("symbol", cfg.Symbol).
		Str("strategy", cfg.Strategy).
		Float64("min_score", cfg.MinScore).
		Msg("Running backtest")

	engineCfg := models.DefaultConfig()
	stats := backtest.Run(candles, strategy, cfg.MinScore, engineCfg)

	fmt.Println(backtest.FormatStats(stats))

	if cfg.DatabaseURL != "" {
		db, err := storage.New(cfg.DatabaseURL)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed, skipping persistence")
			return
		}
		defer db.Close()

		runID, err := db.SaveRun(ctx, cfg.Symbol, strategy, cfg.MinScore, stats)
		if err != nil {
			log.Error().Err(err).Msg("persisting run failed")
			return
		}
		log.Info().Int64("run_id", runID).Msg("Backtest run persisted")
	}
}

func loadCandles(ctx context.Context, cfg *config.Config) ([]models.Candle, error) {
	if cfg.CandleFile != "" {
		log.Info().Str("file", cfg.CandleFile).Msg("Loading candles from file")
		return marketdata.LoadCSV(cfg.CandleFile)
	}

	client := marketdata.NewClient(marketdata.ClientOptions{
		BaseURL:        cfg.BaseURL,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})
	return client.GetCandles(ctx, cfg.Symbol, cfg.Interval, cfg.CandleCount)
}
