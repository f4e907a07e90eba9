// Package storage persists backtest runs and their trades in PostgreSQL.
// The engine never requires persistence; this is caller-side plumbing for
// keeping run history across invocations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/altf4-dev/strategist/models"
)

// DB represents a database connection
type DB struct {
	*sql.DB
}

// New opens a PostgreSQL connection from a connection string and ensures
// the schema exists.
func New(connStr string) (*DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS backtest_runs (
			id BIGSERIAL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			symbol TEXT NOT NULL,
			strategy TEXT NOT NULL,
			min_score DOUBLE PRECISION NOT NULL,
			total_trades INT NOT NULL,
			wins INT NOT NULL,
			losses INT NOT NULL,
			partials INT NOT NULL,
			win_rate DOUBLE PRECISION NOT NULL,
			total_pnl DOUBLE PRECISION NOT NULL,
			profit_factor DOUBLE PRECISION NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS backtest_trades (
			id BIGSERIAL PRIMARY KEY,
			run_id BIGINT NOT NULL REFERENCES backtest_runs(id),
			entered_at TIMESTAMPTZ NOT NULL,
			strategy TEXT NOT NULL,
			entry DOUBLE PRECISION NOT NULL,
			stop_loss DOUBLE PRECISION NOT NULL,
			take_profit_1 DOUBLE PRECISION NOT NULL,
			take_profit_2 DOUBLE PRECISION NOT NULL,
			take_profit_3 DOUBLE PRECISION NOT NULL,
			signal_strength DOUBLE PRECISION NOT NULL,
			outcome TEXT NOT NULL,
			exit_price DOUBLE PRECISION NOT NULL,
			exit_reason TEXT NOT NULL,
			pnl DOUBLE PRECISION NOT NULL,
			pnl_percent DOUBLE PRECISION NOT NULL,
			duration_candles INT NOT NULL
		)
	`)

	return err
}

// SaveRun stores a backtest summary and every trade it produced, returning
// the run id.
func (db *DB) SaveRun(ctx context.Context, symbol string, strategy models.Strategy, minScore float64, stats *models.BacktestStats) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO backtest_runs (
			symbol, strategy, min_score, total_trades, wins, losses,
			partials, win_rate, total_pnl, profit_factor
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		symbol, strategy, minScore, stats.TotalTrades, stats.Wins, stats.Losses,
		stats.Partials, stats.WinRate, stats.TotalPnL, stats.ProfitFactor,
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	for _, r := range stats.Results {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO backtest_trades (
				run_id, entered_at, strategy, entry, stop_loss,
				take_profit_1, take_profit_2, take_profit_3,
				signal_strength, outcome, exit_price, exit_reason,
				pnl, pnl_percent, duration_candles
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`,
			runID, r.Setup.Timestamp, r.Setup.Strategy, r.Setup.Entry, r.Setup.StopLoss,
			r.Setup.TakeProfit1, r.Setup.TakeProfit2, r.Setup.TakeProfit3,
			r.Setup.SignalStrength, r.Outcome, r.ExitPrice, r.ExitReason,
			r.PnL, r.PnLPercent, r.DurationCandles,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting trade: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}
