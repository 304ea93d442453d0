package csvdata

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"portfoliodash/types"
)

func newTestReader() *Reader {
	return NewReader(zerolog.Nop())
}

func TestReadTransactions(t *testing.T) {
	in := strings.Join([]string{
		"ExecId,Date,StockSymbol,Side,Quantity,PricePerShare,TotalAmount",
		"00012ec5.676a4251.01.01,20241224 11:46:53 EET,AAPL,BUY,100.0000000000000000,255.45,25545.00",
		"00012ec5.676a4255.01.01,20241224 11:47:37 EET,AAPL,BUY,40.0000000000000000,255.45,10218.00",
		"00012ec5.676a4300.01.01,20241224 14:02:11 EET,TSLA,SELL,8,410.10,3280.80",
	}, "\n")

	got, err := newTestReader().ReadTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTransactions() unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	first := got[0]
	if first.ExecID != "00012ec5.676a4251.01.01" {
		t.Errorf("ExecID = %q", first.ExecID)
	}
	if first.Date != "20241224 11:46:53 EET" {
		t.Errorf("Date = %q", first.Date)
	}
	if first.Symbol != "AAPL" || first.Side != types.SideTypeBuy {
		t.Errorf("Symbol/Side = %q/%q", first.Symbol, first.Side)
	}
	if !first.Quantity.Equal(decimal.RequireFromString("100")) {
		t.Errorf("Quantity = %s", first.Quantity)
	}
	if !first.TotalAmount.Equal(decimal.RequireFromString("25545.00")) {
		t.Errorf("TotalAmount = %s", first.TotalAmount)
	}
	if got[2].Side != types.SideTypeSell {
		t.Errorf("Side = %q, want SELL", got[2].Side)
	}
}

func TestReadTransactions_FailFast(t *testing.T) {
	header := "ExecId,Date,StockSymbol,Side,Quantity,PricePerShare,TotalAmount"
	tests := []struct {
		name string
		rows []string
	}{
		{
			name: "wrong field count",
			rows: []string{"e1,20241224,AAPL,BUY,100,255.45"},
		},
		{
			name: "bad quantity",
			rows: []string{"e1,20241224,AAPL,BUY,abc,255.45,25545.00"},
		},
		{
			name: "bad price",
			rows: []string{"e1,20241224,AAPL,BUY,100,,25545.00"},
		},
		{
			name: "zero quantity",
			rows: []string{"e1,20241224,AAPL,BUY,0,255.45,25545.00"},
		},
		{
			name: "negative price",
			rows: []string{"e1,20241224,AAPL,BUY,100,-255.45,25545.00"},
		},
		{
			name: "unknown side",
			rows: []string{"e1,20241224,AAPL,SHORT,100,255.45,25545.00"},
		},
		{
			name: "good row after bad row still aborts",
			rows: []string{
				"e1,20241224,AAPL,BUY,bad,255.45,25545.00",
				"e2,20241224,AAPL,BUY,100,255.45,25545.00",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.Join(append([]string{header}, tt.rows...), "\n")
			if _, err := newTestReader().ReadTransactions(strings.NewReader(in)); err == nil {
				t.Fatal("ReadTransactions() expected error, got nil")
			}
		})
	}
}

// The execution export carries the broker's own side codes verbatim, so
// BOT/SLD rows must land on the same sides the session produces instead
// of surviving as opaque strings the analyzer would skip.
func TestReadTransactions_BrokerSideCodes(t *testing.T) {
	in := strings.Join([]string{
		"ExecId,Date,StockSymbol,Side,Quantity,PricePerShare,TotalAmount",
		"00012ec5.676a4251.01.01,20241224 11:46:53 EET,AAPL,BOT,100,255.45,25545.00",
		"00012ec5.676a4300.01.01,20241224 14:02:11 EET,TSLA,SLD,8,410.10,3280.80",
	}, "\n")

	got, err := newTestReader().ReadTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTransactions() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Side != types.SideTypeBuy {
		t.Errorf("Side = %q, want BUY", got[0].Side)
	}
	if got[1].Side != types.SideTypeSell {
		t.Errorf("Side = %q, want SELL", got[1].Side)
	}
}

func TestReadTransactions_KeepsSuppliedTotalAmount(t *testing.T) {
	in := strings.Join([]string{
		"ExecId,Date,StockSymbol,Side,Quantity,PricePerShare,TotalAmount",
		"e1,20241224,AAPL,BUY,100,255.45,999.99",
	}, "\n")

	got, err := newTestReader().ReadTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTransactions() unexpected error: %v", err)
	}
	if !got[0].TotalAmount.Equal(decimal.RequireFromString("999.99")) {
		t.Errorf("TotalAmount = %s, want supplied 999.99", got[0].TotalAmount)
	}
}

func TestReadChartPoints(t *testing.T) {
	in := strings.Join([]string{
		"Timestamp,ClosePrice",
		"2024-12-24 09:30:00,255.10",
		"2024-12-24 09:35:00,255.45",
	}, "\n")

	got, err := newTestReader().ReadChartPoints(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadChartPoints() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	want := time.Date(2024, 12, 24, 9, 30, 0, 0, time.UTC)
	if !got[0].Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", got[0].Timestamp, want)
	}
	if !got[1].ClosePrice.Equal(decimal.RequireFromString("255.45")) {
		t.Errorf("ClosePrice = %s", got[1].ClosePrice)
	}
}

func TestReadChartPoints_BadTimestamp(t *testing.T) {
	in := "Timestamp,ClosePrice\n24/12/2024 09:30,255.10"
	if _, err := newTestReader().ReadChartPoints(strings.NewReader(in)); err == nil {
		t.Fatal("ReadChartPoints() expected error, got nil")
	}
}

func TestReadIndexEntries(t *testing.T) {
	in := strings.Join([]string{
		"Symbol,RegularMarketPrice",
		"SPY,590.10",
		"IVV,592.33",
	}, "\n")

	got, err := newTestReader().ReadIndexEntries(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadIndexEntries() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Symbol != "SPY" || !got[0].RegularMarketPrice.Equal(decimal.RequireFromString("590.10")) {
		t.Errorf("entry = %+v", got[0])
	}
}

func TestReadQuotes(t *testing.T) {
	in := strings.Join([]string{
		"Symbol,RegularMarketPrice,PreviousClose,DayHigh,DayLow,Currency",
		"AAPL,260.00,255.45,261.20,254.80,USD",
	}, "\n")

	got, err := newTestReader().ReadQuotes(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadQuotes() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	q := got[0]
	if q.Symbol != "AAPL" || q.Currency != "USD" {
		t.Errorf("quote = %+v", q)
	}
	if !q.RegularMarketPrice.Equal(decimal.RequireFromString("260.00")) {
		t.Errorf("RegularMarketPrice = %s", q.RegularMarketPrice)
	}
	if !q.DayLow.Equal(decimal.RequireFromString("254.80")) {
		t.Errorf("DayLow = %s", q.DayLow)
	}
}

func TestReadQuotes_BadField(t *testing.T) {
	in := "Symbol,RegularMarketPrice,PreviousClose,DayHigh,DayLow,Currency\nAAPL,260.00,x,261.20,254.80,USD"
	if _, err := newTestReader().ReadQuotes(strings.NewReader(in)); err == nil {
		t.Fatal("ReadQuotes() expected error, got nil")
	}
}
