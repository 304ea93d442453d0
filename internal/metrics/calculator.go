// Package metrics holds the pure financial formulas: ROI, volatility and
// Sharpe ratio. Inputs and outputs are decimals; float64 is used only
// inside the formulas themselves.
package metrics

import (
	"errors"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

var ErrDivisionByZero = errors.New("division by zero")
var ErrInvalidInput = errors.New("invalid input")

// riskFreeRate is the fixed annual risk-free rate used by the Sharpe
// ratio (2%).
var riskFreeRate = decimal.RequireFromString("0.02")

var hundred = decimal.NewFromInt(100)

// CalculateROI returns the return on investment as a percentage:
//
//	((currentPrice - purchasePrice) * quantity / totalAmount) * 100
//
// totalAmount is trusted as supplied, even when it does not equal
// quantity*purchasePrice; consistency is the caller's problem.
func CalculateROI(currentPrice, purchasePrice, totalAmount, quantity decimal.Decimal) (decimal.Decimal, error) {
	if totalAmount.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return currentPrice.Sub(purchasePrice).Mul(quantity).Div(totalAmount).Mul(hundred), nil
}

// CalculateVolatility returns the sample standard deviation (n-1
// denominator) of the price series. At least two prices are required.
func CalculateVolatility(prices []decimal.Decimal) (decimal.Decimal, error) {
	if len(prices) < 2 {
		return decimal.Decimal{}, ErrInvalidInput
	}
	xs := make([]float64, len(prices))
	for i, p := range prices {
		xs[i] = p.InexactFloat64()
	}
	return decimal.NewFromFloat(stat.StdDev(xs, nil)), nil
}

// CalculateSharpeRatio converts the percentage ROI to fractional form,
// subtracts the annual risk-free rate and divides by the volatility.
//
// The units are knowingly mixed: a per-transaction ROI against an annual
// risk-free rate over whatever price series produced the volatility. The
// ratio is directionally useful but not an annualized Sharpe ratio, and
// the formula is kept as-is for compatibility.
func CalculateSharpeRatio(roiPercent, volatility decimal.Decimal) (decimal.Decimal, error) {
	if volatility.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return roiPercent.Div(hundred).Sub(riskFreeRate).Div(volatility), nil
}
