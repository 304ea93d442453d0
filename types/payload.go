package types

import (
	"github.com/shopspring/decimal"
)

// DashboardPayload is the analysis result handed to a presenter.
//
// Dates covers every transaction in file order, while ROISeries and
// CumulativeROISeries cover BUY transactions only, also in file order.
// BenchmarkSeries shares nothing with the other series beyond index
// position; presenters must not render it as date-aligned.
type DashboardPayload struct {
	Dates               []string          `json:"dates"`
	ROISeries           []decimal.Decimal `json:"roiSeries"`
	CumulativeROISeries []decimal.Decimal `json:"cumulativeRoiSeries"`
	BenchmarkSeries     []decimal.Decimal `json:"benchmarkSeries"`
	SharpeRatio         decimal.Decimal   `json:"sharpeRatio"`
}
