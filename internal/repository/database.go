// Package repository is a read-only pgx store for market data: chart
// points bucketed by interval and live quote snapshots. It serves as an
// alternative chart/quote source when a database URL is configured; the
// analysis itself never writes here.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Global error declarations.
var (
	ErrIntervalNotSupported = errors.New("interval not supported")
	ErrNoChartPoints        = errors.New("no chart points found in datasource")
	ErrQuoteNotFound        = errors.New("quote not found in datasource")
)

type chartRow struct {
	Bucket     time.Time
	ClosePrice decimal.Decimal
}

type quoteRow struct {
	Symbol             string
	RegularMarketPrice decimal.Decimal
	PreviousClose      decimal.Decimal
	DayHigh            decimal.Decimal
	DayLow             decimal.Decimal
	Currency           string
}

type chartQuerier interface {
	GetChartRows(ctx context.Context, bucket, symbol string, start, end time.Time) ([]chartRow, error)
}

type quoteQuerier interface {
	GetQuoteRow(ctx context.Context, symbol string) (quoteRow, error)
}

// Database struct that holds the database connection and queries.
type Database struct {
	charts chartQuerier
	quotes quoteQuerier
	conn   *pgxpool.Pool
}

// NewDatabase creates a new Database instance and verifies connectivity.
func NewDatabase(dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return Database{}, fmt.Errorf("parse config: %w", err)
	}
	// Register shopspring decimal
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return Database{}, err
	}
	// Ensure the connection is established.
	if err := conn.Ping(context.Background()); err != nil {
		return Database{}, err
	}

	queries := &pgxQueries{conn: conn}
	return Database{
		charts: queries,
		quotes: queries,
		conn:   conn,
	}, nil
}

func (db *Database) Close() {
	if db.conn != nil {
		db.conn.Close()
	}
}

type pgxQueries struct {
	conn *pgxpool.Pool
}

const chartRowsSQL = `
SELECT time_bucket($1::interval, ts) AS bucket,
       last(close_price, ts) AS close_price
FROM chart_points
WHERE symbol = $2 AND ts >= $3 AND ts < $4
GROUP BY bucket
ORDER BY bucket`

func (q *pgxQueries) GetChartRows(ctx context.Context, bucket, symbol string, start, end time.Time) ([]chartRow, error) {
	rows, err := q.conn.Query(ctx, chartRowsSQL, bucket, symbol, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []chartRow
	for rows.Next() {
		var row chartRow
		if err := rows.Scan(&row.Bucket, &row.ClosePrice); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const quoteRowSQL = `
SELECT symbol, regular_market_price, previous_close, day_high, day_low, currency
FROM quotes
WHERE symbol = $1`

func (q *pgxQueries) GetQuoteRow(ctx context.Context, symbol string) (quoteRow, error) {
	var row quoteRow
	err := q.conn.QueryRow(ctx, quoteRowSQL, symbol).Scan(
		&row.Symbol,
		&row.RegularMarketPrice,
		&row.PreviousClose,
		&row.DayHigh,
		&row.DayLow,
		&row.Currency,
	)
	return row, err
}
