package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"portfoliodash/internal/metrics"
	"portfoliodash/types"
)

func newTestServer(payload PayloadFunc) *Server {
	return New(Config{
		Port:    0,
		Log:     zerolog.Nop(),
		Payload: payload,
		Transactions: []types.Transaction{
			types.NewTransaction(
				"00012ec5.676a4251.01.01",
				"20241224 11:46:53 EET",
				"AAPL",
				types.SideTypeBuy,
				decimal.RequireFromString("100"),
				decimal.RequireFromString("255.45"),
				decimal.RequireFromString("25545.00"),
			),
		},
	})
}

func TestHandleDashboard(t *testing.T) {
	want := types.DashboardPayload{
		Dates:               []string{"20241224 11:46:53 EET"},
		ROISeries:           []decimal.Decimal{decimal.RequireFromString("10")},
		CumulativeROISeries: []decimal.Decimal{decimal.RequireFromString("10")},
		BenchmarkSeries:     []decimal.Decimal{decimal.RequireFromString("590.10")},
		SharpeRatio:         decimal.RequireFromString("1.6"),
	}
	srv := newTestServer(func(ctx context.Context) (types.DashboardPayload, error) {
		return want, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		Dates               []string `json:"dates"`
		ROISeries           []string `json:"roiSeries"`
		CumulativeROISeries []string `json:"cumulativeRoiSeries"`
		BenchmarkSeries     []string `json:"benchmarkSeries"`
		SharpeRatio         string   `json:"sharpeRatio"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"20241224 11:46:53 EET"}, got.Dates)
	require.Equal(t, []string{"10"}, got.ROISeries)
	require.Equal(t, []string{"590.10"}, got.BenchmarkSeries)
	require.Equal(t, "1.6", got.SharpeRatio)
}

func TestHandleDashboard_MetricsFailureIsObservable(t *testing.T) {
	srv := newTestServer(func(ctx context.Context) (types.DashboardPayload, error) {
		return types.DashboardPayload{}, metrics.ErrInvalidInput
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Contains(t, got["error"], "invalid input")
}

func TestHandleExportTransactions(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/export", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "ExecId,Date,StockSymbol,Side,Quantity,PricePerShare,TotalAmount", lines[0])
	require.Equal(t, "00012ec5.676a4251.01.01,20241224 11:46:53 EET,AAPL,BUY,100,255.45,25545.00", lines[1])
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
