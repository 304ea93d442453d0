package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"portfoliodash/types"
)

var executionHeader = []string{
	"ExecId",
	"Date",
	"StockSymbol",
	"Side",
	"Quantity",
	"PricePerShare",
	"TotalAmount",
}

// WriteTransactionsFile writes transactions to a CSV file at the given
// path in the execution format.
func WriteTransactionsFile(path string, transactions []types.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create executions file: %w", err)
	}
	defer f.Close()

	return WriteTransactions(f, transactions)
}

// WriteTransactions writes transactions to any io.Writer as CSV.
// Decimal fields are written with Decimal.String so that re-reading the
// output yields the same records, digit for digit.
func WriteTransactions(w io.Writer, transactions []types.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(executionHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, tx := range transactions {
		record := []string{
			tx.ExecID,
			tx.Date,
			tx.Symbol,
			string(tx.Side),
			tx.Quantity.String(),
			tx.PricePerShare.String(),
			tx.TotalAmount.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write execution %s: %w", tx.ExecID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
