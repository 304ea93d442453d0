package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartPoint is one close-price observation in an instrument's intraday
// series. Points are kept in the order the chart source delivered them.
type ChartPoint struct {
	Timestamp  time.Time       `json:"timestamp"`
	ClosePrice decimal.Decimal `json:"closePrice"`
}
