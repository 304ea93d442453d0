package csvdata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"portfoliodash/types"
)

func TestWriteTransactions_RoundTrip(t *testing.T) {
	original := []types.Transaction{
		types.NewTransaction(
			"00012ec5.676a4251.01.01",
			"20241224 11:46:53 EET",
			"AAPL",
			types.SideTypeBuy,
			decimal.RequireFromString("100.0000000000000000"),
			decimal.RequireFromString("255.45"),
			decimal.RequireFromString("25545.00"),
		),
		types.NewTransaction(
			"00012ec5.676a4300.01.01",
			"20241224 14:02:11 EET",
			"TSLA",
			types.SideTypeSell,
			decimal.RequireFromString("8"),
			decimal.RequireFromString("410.10"),
			decimal.RequireFromString("3280.80"),
		),
	}

	var buf bytes.Buffer
	if err := WriteTransactions(&buf, original); err != nil {
		t.Fatalf("WriteTransactions() unexpected error: %v", err)
	}

	got, err := newTestReader().ReadTransactions(&buf)
	if err != nil {
		t.Fatalf("ReadTransactions() unexpected error: %v", err)
	}
	if len(got) != len(original) {
		t.Fatalf("len = %d, want %d", len(got), len(original))
	}
	for i, want := range original {
		tx := got[i]
		if tx.ExecID != want.ExecID || tx.Date != want.Date || tx.Symbol != want.Symbol || tx.Side != want.Side {
			t.Errorf("record %d = %+v, want %+v", i, tx, want)
		}
		// Digit-for-digit, not just numerically equal.
		if tx.Quantity.String() != want.Quantity.String() {
			t.Errorf("record %d quantity = %s, want %s", i, tx.Quantity, want.Quantity)
		}
		if tx.PricePerShare.String() != want.PricePerShare.String() {
			t.Errorf("record %d price = %s, want %s", i, tx.PricePerShare, want.PricePerShare)
		}
		if tx.TotalAmount.String() != want.TotalAmount.String() {
			t.Errorf("record %d total = %s, want %s", i, tx.TotalAmount, want.TotalAmount)
		}
	}
}

func TestWriteTransactions_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTransactions(&buf, nil); err != nil {
		t.Fatalf("WriteTransactions() unexpected error: %v", err)
	}
	want := "ExecId,Date,StockSymbol,Side,Quantity,PricePerShare,TotalAmount"
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}
