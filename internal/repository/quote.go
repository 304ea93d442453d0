package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"portfoliodash/types"
)

// GetQuoteBySymbol retrieves the live quote snapshot for a symbol.
func (db *Database) GetQuoteBySymbol(ctx context.Context, symbol string) (*types.PriceQuote, error) {
	row, err := db.quotes.GetQuoteRow(ctx, symbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("symbol %s %w", symbol, ErrQuoteNotFound)
		}
		return nil, err
	}
	return &types.PriceQuote{
		Symbol:             row.Symbol,
		RegularMarketPrice: row.RegularMarketPrice,
		PreviousClose:      row.PreviousClose,
		DayHigh:            row.DayHigh,
		DayLow:             row.DayLow,
		Currency:           row.Currency,
	}, nil
}
