package types

import (
	"github.com/shopspring/decimal"
)

// Transaction is a single broker fill. Values are stored exactly as
// supplied by the execution source; TotalAmount in particular is never
// re-derived from Quantity and PricePerShare.
type Transaction struct {
	ExecID        string
	Date          string
	Symbol        string
	Side          Side
	Quantity      decimal.Decimal
	PricePerShare decimal.Decimal
	TotalAmount   decimal.Decimal
}

func NewTransaction(
	execID string,
	date string,
	symbol string,
	side Side,
	quantity decimal.Decimal,
	pricePerShare decimal.Decimal,
	totalAmount decimal.Decimal,
) Transaction {
	return Transaction{
		ExecID:        execID,
		Date:          date,
		Symbol:        symbol,
		Side:          side,
		Quantity:      quantity,
		PricePerShare: pricePerShare,
		TotalAmount:   totalAmount,
	}
}
