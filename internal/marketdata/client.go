// Package marketdata fetches chart, benchmark index and live quote data
// from a Yahoo-Finance-style RapidAPI provider.
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"portfoliodash/config"
	"portfoliodash/types"
)

var ErrEmptyResult = errors.New("empty result from market data api")

type Client struct {
	client   *resty.Client
	log      zerolog.Logger
	chartLoc *time.Location
}

func New(cfg *config.Config, log zerolog.Logger) (*Client, error) {
	loc, err := time.LoadLocation(cfg.API.ChartTimezone)
	if err != nil {
		return nil, fmt.Errorf("load chart timezone %q: %w", cfg.API.ChartTimezone, err)
	}

	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.URL).
		SetHeader("x-rapidapi-key", cfg.API.Key).
		SetHeader("x-rapidapi-host", cfg.API.Host)

	return &Client{
		client:   client,
		log:      log.With().Str("component", "marketdata").Logger(),
		chartLoc: loc,
	}, nil
}

// GetStockChart fetches the intraday close-price series for one symbol.
// Bars with a null close are skipped.
func (c *Client) GetStockChart(ctx context.Context, symbol string, interval types.Interval) ([]types.ChartPoint, error) {
	c.log.Debug().Str("symbol", symbol).Msg("fetching stock chart")

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"region":   "US",
			"range":    "1d",
			"symbol":   symbol,
			"interval": string(interval),
		}).
		Get("/api/stock/get-chart")
	if err != nil {
		return nil, fmt.Errorf("get chart for %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get chart for %s: api status %s", symbol, resp.Status())
	}

	var raw rawChart
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal chart for %s: %w", symbol, err)
	}
	if len(raw.Chart.Result) == 0 || len(raw.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart for %s: %w", symbol, ErrEmptyResult)
	}

	timestamps := raw.Chart.Result[0].Timestamp
	closes := raw.Chart.Result[0].Indicators.Quote[0].Close
	if len(timestamps) != len(closes) {
		return nil, fmt.Errorf("chart for %s: %d timestamps vs %d closes", symbol, len(timestamps), len(closes))
	}

	points := make([]types.ChartPoint, 0, len(timestamps))
	for i, ts := range timestamps {
		if closes[i] == nil {
			continue
		}
		closePrice, err := decimal.NewFromString(closes[i].String())
		if err != nil {
			return nil, fmt.Errorf("chart for %s: parse close %q: %w", symbol, closes[i].String(), err)
		}
		points = append(points, types.ChartPoint{
			Timestamp:  time.Unix(ts, 0).In(c.chartLoc),
			ClosePrice: closePrice,
		})
	}

	c.log.Debug().Str("symbol", symbol).Int("points", len(points)).Msg("stock chart fetched")
	return points, nil
}

// GetIndexConstituents fetches the benchmark index constituents with
// their reference prices, in the order the provider lists them.
func (c *Client) GetIndexConstituents(ctx context.Context) ([]types.IndexEntry, error) {
	c.log.Debug().Msg("fetching index constituents")

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"quote_type": "ETFS",
			"region":     "US",
			"count":      "30",
			"offset":     "0",
			"language":   "en-US",
		}).
		Get("/api/market/get-sp-500")
	if err != nil {
		return nil, fmt.Errorf("get index constituents: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get index constituents: api status %s", resp.Status())
	}

	var raw rawIndex
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal index constituents: %w", err)
	}
	if len(raw.Finance.Result) == 0 {
		return nil, fmt.Errorf("index constituents: %w", ErrEmptyResult)
	}

	quotes := raw.Finance.Result[0].Quotes
	entries := make([]types.IndexEntry, 0, len(quotes))
	for _, q := range quotes {
		price, err := decimal.NewFromString(q.RegularMarketPrice.String())
		if err != nil {
			return nil, fmt.Errorf("index %s: parse reference price: %w", q.Symbol, err)
		}
		entries = append(entries, types.IndexEntry{Symbol: q.Symbol, RegularMarketPrice: price})
	}

	c.log.Debug().Int("entries", len(entries)).Msg("index constituents fetched")
	return entries, nil
}

// GetStockPrice fetches the live quote for one symbol.
func (c *Client) GetStockPrice(ctx context.Context, symbol string) (types.PriceQuote, error) {
	c.log.Debug().Str("symbol", symbol).Msg("fetching stock price")

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"region": "US",
			"symbol": symbol,
		}).
		Get("/api/stock/get-price")
	if err != nil {
		return types.PriceQuote{}, fmt.Errorf("get price for %s: %w", symbol, err)
	}
	if resp.IsError() {
		return types.PriceQuote{}, fmt.Errorf("get price for %s: api status %s", symbol, resp.Status())
	}

	var raw rawQuote
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return types.PriceQuote{}, fmt.Errorf("unmarshal price for %s: %w", symbol, err)
	}
	if len(raw.QuoteSummary.Result) == 0 {
		return types.PriceQuote{}, fmt.Errorf("price for %s: %w", symbol, ErrEmptyResult)
	}

	price := raw.QuoteSummary.Result[0].Price
	fields := make([]decimal.Decimal, 4)
	for i, f := range []rawField{
		price.RegularMarketPrice,
		price.RegularMarketPreviousClose,
		price.RegularMarketDayHigh,
		price.RegularMarketDayLow,
	} {
		fields[i], err = decimal.NewFromString(f.Raw.String())
		if err != nil {
			return types.PriceQuote{}, fmt.Errorf("price for %s: parse field %q: %w", symbol, f.Raw.String(), err)
		}
	}

	quote := types.PriceQuote{
		Symbol:             price.Symbol,
		RegularMarketPrice: fields[0],
		PreviousClose:      fields[1],
		DayHigh:            fields[2],
		DayLow:             fields[3],
		Currency:           price.Currency,
	}

	c.log.Debug().Str("symbol", symbol).Str("price", quote.RegularMarketPrice.String()).Msg("stock price fetched")
	return quote, nil
}
