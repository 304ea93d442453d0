// Package analyzer joins transaction records with market data and
// assembles the dashboard payload. It is a single-pass, stateless
// transformation over fully loaded, immutable inputs.
package analyzer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"portfoliodash/internal/metrics"
	"portfoliodash/types"
)

// ResolveCurrentPrice returns the live market price for the
// transaction's symbol. When no quote matches, it returns zero rather
// than an error; downstream ROI then reports the loss against a zero
// price, and presenters must read price=0 as "no quote found".
func ResolveCurrentPrice(transaction types.Transaction, quotes []types.PriceQuote) decimal.Decimal {
	for _, q := range quotes {
		if q.Symbol == transaction.Symbol {
			return q.RegularMarketPrice
		}
	}
	return decimal.Zero
}

// ComputeBuyROI resolves the current market price for a BUY transaction
// and computes its unrealized ROI.
func ComputeBuyROI(transaction types.Transaction, quotes []types.PriceQuote) (decimal.Decimal, error) {
	currentPrice := ResolveCurrentPrice(transaction, quotes)
	return metrics.CalculateROI(currentPrice, transaction.PricePerShare, transaction.TotalAmount, transaction.Quantity)
}

// ComputeSellROI computes the realized ROI of an already-closed round
// trip.
func ComputeSellROI(sellPrice, buyPrice, quantity, totalAmount decimal.Decimal) (decimal.Decimal, error) {
	return metrics.CalculateROI(sellPrice, buyPrice, totalAmount, quantity)
}

// BuildDashboardPayload assembles the presenter-ready result from the
// four record collections.
//
// Empty transaction, index or quote collections degrade to empty series.
// Volatility (needs at least two chart points) and the Sharpe ratio
// (needs nonzero volatility) do not degrade: their failures propagate,
// and the caller decides whether that is fatal or a placeholder.
func BuildDashboardPayload(
	transactions []types.Transaction,
	chartPoints []types.ChartPoint,
	indexEntries []types.IndexEntry,
	quotes []types.PriceQuote,
) (types.DashboardPayload, error) {
	dates := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		dates = append(dates, tx.Date)
	}

	roiSeries := make([]decimal.Decimal, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Side != types.SideTypeBuy {
			continue
		}
		roi, err := ComputeBuyROI(tx, quotes)
		if err != nil {
			return types.DashboardPayload{}, fmt.Errorf("buy roi for execution %s: %w", tx.ExecID, err)
		}
		roiSeries = append(roiSeries, roi)
	}

	cumulativeROI := make([]decimal.Decimal, 0, len(roiSeries))
	cumulativeSum := decimal.Zero
	for _, roi := range roiSeries {
		cumulativeSum = cumulativeSum.Add(roi)
		cumulativeROI = append(cumulativeROI, cumulativeSum)
	}

	benchmark := make([]decimal.Decimal, 0, len(indexEntries))
	for _, entry := range indexEntries {
		benchmark = append(benchmark, entry.RegularMarketPrice)
	}

	closes := make([]decimal.Decimal, 0, len(chartPoints))
	for _, point := range chartPoints {
		closes = append(closes, point.ClosePrice)
	}
	volatility, err := metrics.CalculateVolatility(closes)
	if err != nil {
		return types.DashboardPayload{}, fmt.Errorf("volatility over %d chart points: %w", len(chartPoints), err)
	}

	sharpe, err := metrics.CalculateSharpeRatio(averageROI(roiSeries), volatility)
	if err != nil {
		return types.DashboardPayload{}, fmt.Errorf("sharpe ratio: %w", err)
	}

	return types.DashboardPayload{
		Dates:               dates,
		ROISeries:           roiSeries,
		CumulativeROISeries: cumulativeROI,
		BenchmarkSeries:     benchmark,
		SharpeRatio:         sharpe,
	}, nil
}

func averageROI(roiSeries []decimal.Decimal) decimal.Decimal {
	if len(roiSeries) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, roi := range roiSeries {
		sum = sum.Add(roi)
	}
	return sum.Div(decimal.NewFromInt(int64(len(roiSeries))))
}
