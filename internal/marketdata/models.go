package marketdata

import "encoding/json"

// Raw response shapes for the provider's chart, index and price
// endpoints. Numeric fields come in as json.Number and are converted to
// decimals during parsing; chart closes may be null for missing bars.

type rawChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*json.Number `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

type rawIndex struct {
	Finance struct {
		Result []struct {
			Quotes []struct {
				Symbol             string      `json:"symbol"`
				RegularMarketPrice json.Number `json:"regularMarketPrice"`
			} `json:"quotes"`
		} `json:"result"`
	} `json:"finance"`
}

type rawField struct {
	Raw json.Number `json:"raw"`
}

type rawQuote struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				Symbol                     string   `json:"symbol"`
				Currency                   string   `json:"currency"`
				RegularMarketPrice         rawField `json:"regularMarketPrice"`
				RegularMarketPreviousClose rawField `json:"regularMarketPreviousClose"`
				RegularMarketDayHigh       rawField `json:"regularMarketDayHigh"`
				RegularMarketDayLow        rawField `json:"regularMarketDayLow"`
			} `json:"price"`
		} `json:"result"`
	} `json:"quoteSummary"`
}
