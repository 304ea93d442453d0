package types

import (
	"github.com/shopspring/decimal"
)

// PriceQuote is the live quote for one symbol. At most one quote per
// symbol is expected per analysis run.
type PriceQuote struct {
	Symbol             string          `json:"symbol"`
	RegularMarketPrice decimal.Decimal `json:"regularMarketPrice"`
	PreviousClose      decimal.Decimal `json:"previousClose"`
	DayHigh            decimal.Decimal `json:"dayHigh"`
	DayLow             decimal.Decimal `json:"dayLow"`
	Currency           string          `json:"currency"`
}

// IndexEntry is one benchmark index constituent with its reference price.
type IndexEntry struct {
	Symbol             string          `json:"symbol"`
	RegularMarketPrice decimal.Decimal `json:"regularMarketPrice"`
}
