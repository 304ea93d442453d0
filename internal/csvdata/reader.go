// Package csvdata parses the four tabular record streams and exports
// transactions back to the execution format. Reads are fail-fast: any
// malformed row aborts the whole read, no partial-row skipping.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"portfoliodash/types"
)

const chartTimestampLayout = "2006-01-02 15:04:05"

// Reader parses record streams into the analysis value types.
type Reader struct {
	log zerolog.Logger
}

func NewReader(log zerolog.Logger) *Reader {
	return &Reader{log: log.With().Str("component", "csvdata").Logger()}
}

// ReadTransactions parses the 7-column execution stream
// (ExecId,Date,StockSymbol,Side,Quantity,PricePerShare,TotalAmount).
// The Side column carries whatever the broker exported, so IB's BOT/SLD
// codes are mapped alongside plain BUY/SELL; unknown codes abort the
// read. TotalAmount is stored as given; a mismatch against
// Quantity*PricePerShare is logged as a data-quality warning, never
// recomputed.
func (r *Reader) ReadTransactions(in io.Reader) ([]types.Transaction, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 7

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("read executions header: %w", err)
	}

	var transactions []types.Transaction
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read execution row: %w", err)
		}

		side, err := types.SideFromBrokerCode(record[3])
		if err != nil {
			return nil, fmt.Errorf("execution %s: %w", record[0], err)
		}
		quantity, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("execution %s: parse quantity: %w", record[0], err)
		}
		pricePerShare, err := decimal.NewFromString(record[5])
		if err != nil {
			return nil, fmt.Errorf("execution %s: parse price per share: %w", record[0], err)
		}
		totalAmount, err := decimal.NewFromString(record[6])
		if err != nil {
			return nil, fmt.Errorf("execution %s: parse total amount: %w", record[0], err)
		}
		if !quantity.IsPositive() {
			return nil, fmt.Errorf("execution %s: quantity %s is not positive", record[0], quantity)
		}
		if !pricePerShare.IsPositive() {
			return nil, fmt.Errorf("execution %s: price per share %s is not positive", record[0], pricePerShare)
		}

		if !totalAmount.Equal(quantity.Mul(pricePerShare)) {
			r.log.Warn().
				Str("execId", record[0]).
				Str("totalAmount", totalAmount.String()).
				Str("derived", quantity.Mul(pricePerShare).String()).
				Msg("total amount does not match quantity*price, keeping supplied value")
		}

		transactions = append(transactions, types.NewTransaction(
			record[0],
			record[1],
			record[2],
			side,
			quantity,
			pricePerShare,
			totalAmount,
		))
	}
	return transactions, nil
}

// ReadChartPoints parses the Timestamp,ClosePrice stream for a single
// instrument's intraday series.
func (r *Reader) ReadChartPoints(in io.Reader) ([]types.ChartPoint, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 2

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("read chart header: %w", err)
	}

	var points []types.ChartPoint
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read chart row: %w", err)
		}

		ts, err := time.Parse(chartTimestampLayout, record[0])
		if err != nil {
			return nil, fmt.Errorf("parse chart timestamp %q: %w", record[0], err)
		}
		closePrice, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("parse close price %q: %w", record[1], err)
		}

		points = append(points, types.ChartPoint{Timestamp: ts, ClosePrice: closePrice})
	}
	return points, nil
}

// ReadIndexEntries parses the Symbol,RegularMarketPrice benchmark
// stream.
func (r *Reader) ReadIndexEntries(in io.Reader) ([]types.IndexEntry, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 2

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("read index header: %w", err)
	}

	var entries []types.IndexEntry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read index row: %w", err)
		}

		price, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("index %s: parse reference price: %w", record[0], err)
		}

		entries = append(entries, types.IndexEntry{Symbol: record[0], RegularMarketPrice: price})
	}
	return entries, nil
}

// ReadQuotes parses the 6-column live quote stream
// (Symbol,RegularMarketPrice,PreviousClose,DayHigh,DayLow,Currency).
func (r *Reader) ReadQuotes(in io.Reader) ([]types.PriceQuote, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = 6

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("read quotes header: %w", err)
	}

	var quotes []types.PriceQuote
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read quote row: %w", err)
		}

		fields := make([]decimal.Decimal, 4)
		for i, name := range []string{"regular market price", "previous close", "day high", "day low"} {
			fields[i], err = decimal.NewFromString(record[i+1])
			if err != nil {
				return nil, fmt.Errorf("quote %s: parse %s: %w", record[0], name, err)
			}
		}

		quotes = append(quotes, types.PriceQuote{
			Symbol:             record[0],
			RegularMarketPrice: fields[0],
			PreviousClose:      fields[1],
			DayHigh:            fields[2],
			DayLow:             fields[3],
			Currency:           record[5],
		})
	}
	return quotes, nil
}
