package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"portfoliodash/config"
	"portfoliodash/internal/analyzer"
	"portfoliodash/internal/broker"
	"portfoliodash/internal/csvdata"
	"portfoliodash/internal/marketdata"
	"portfoliodash/internal/report"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/server"
	"portfoliodash/types"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg)

	transactions, chartPoints, indexEntries, quotes, err := loadData(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading analysis inputs")
	}
	log.Info().
		Int("transactions", len(transactions)).
		Int("chartPoints", len(chartPoints)).
		Int("indexEntries", len(indexEntries)).
		Int("quotes", len(quotes)).
		Msg("analysis inputs loaded")

	// One payload up front for the console and the xlsx report. Metric
	// failures are reported, not fatal: the HTTP presenter still serves
	// them as observable errors.
	payload, err := analyzer.BuildDashboardPayload(transactions, chartPoints, indexEntries, quotes)
	if err != nil {
		log.Warn().Err(err).Msg("dashboard metrics unavailable")
	} else {
		report.WriteText(os.Stdout, payload)

		if cfg.Files.XLSXReport != "" {
			generator := report.NewXLSXGenerator(log)
			fileBytes, err := generator.Generate(payload)
			if err != nil {
				log.Error().Err(err).Msg("generating xlsx report")
			} else if err := os.WriteFile(cfg.Files.XLSXReport, fileBytes, 0o644); err != nil {
				log.Error().Err(err).Msg("writing xlsx report")
			} else {
				log.Info().Str("path", cfg.Files.XLSXReport).Msg("xlsx report written")
			}
		}
	}

	srv := server.New(server.Config{
		Port: cfg.HTTPPort,
		Log:  log,
		Payload: func(ctx context.Context) (types.DashboardPayload, error) {
			return analyzer.BuildDashboardPayload(transactions, chartPoints, indexEntries, quotes)
		},
		Transactions: transactions,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-interrupt

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
}

// loadData gathers the four record collections. Executions come from a
// raw broker event dump replayed through the session when
// BROKER_EVENTS_FILE is set, from the broker-exported CSV otherwise;
// chart, index and quote data come from the market-data store when
// DATABASE_URL is set, from the HTTP API when an API key is configured,
// and from CSV snapshots otherwise.
func loadData(cfg *config.Config, log zerolog.Logger) (
	[]types.Transaction,
	[]types.ChartPoint,
	[]types.IndexEntry,
	[]types.PriceQuote,
	error,
) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	reader := csvdata.NewReader(log)

	var transactions []types.Transaction
	var err error
	if cfg.Files.BrokerEvents != "" {
		transactions, err = replayBrokerEventsFile(ctx, cfg.Files.BrokerEvents, log)
	} else {
		transactions, err = readTransactionsFile(reader, cfg.Files.Executions)
	}
	if err != nil {
		return nil, nil, nil, nil, err
	}

	switch {
	case cfg.DatabaseURL != "":
		db, err := repository.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		defer db.Close()

		end := time.Now()
		chartPoints, err := db.GetChartPoints(ctx, cfg.Files.ChartSymbol, types.FiveMinutes, end.Add(-24*time.Hour), end)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		var quotes []types.PriceQuote
		for _, symbol := range distinctSymbols(transactions) {
			quote, err := db.GetQuoteBySymbol(ctx, symbol)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			quotes = append(quotes, *quote)
		}

		// The store carries no benchmark constituents; fall back to the
		// index snapshot file.
		indexEntries, err := readIndexFile(reader, cfg.Files.Index)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return transactions, chartPoints, indexEntries, quotes, nil

	case cfg.API.Key != "":
		client, err := marketdata.New(cfg, log)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		chartPoints, err := client.GetStockChart(ctx, cfg.Files.ChartSymbol, types.FiveMinutes)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		indexEntries, err := client.GetIndexConstituents(ctx)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		var quotes []types.PriceQuote
		for _, symbol := range distinctSymbols(transactions) {
			quote, err := client.GetStockPrice(ctx, symbol)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			quotes = append(quotes, quote)
		}
		return transactions, chartPoints, indexEntries, quotes, nil

	default:
		chartPoints, err := readChartFile(reader, cfg.Files.Chart)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		indexEntries, err := readIndexFile(reader, cfg.Files.Index)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		quotes, err := readQuotesFile(reader, cfg.Files.Quotes)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return transactions, chartPoints, indexEntries, quotes, nil
	}
}

func distinctSymbols(transactions []types.Transaction) []string {
	seen := make(map[string]struct{}, len(transactions))
	var symbols []string
	for _, tx := range transactions {
		if _, ok := seen[tx.Symbol]; ok {
			continue
		}
		seen[tx.Symbol] = struct{}{}
		symbols = append(symbols, tx.Symbol)
	}
	return symbols
}

func replayBrokerEventsFile(ctx context.Context, path string, log zerolog.Logger) ([]types.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	events, err := broker.ReadEventDump(f)
	if err != nil {
		return nil, err
	}
	return broker.Replay(events, log).FetchExecutions(ctx)
}

func readTransactionsFile(reader *csvdata.Reader, path string) ([]types.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reader.ReadTransactions(f)
}

func readChartFile(reader *csvdata.Reader, path string) ([]types.ChartPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reader.ReadChartPoints(f)
}

func readIndexFile(reader *csvdata.Reader, path string) ([]types.IndexEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reader.ReadIndexEntries(f)
}

func readQuotesFile(reader *csvdata.Reader, path string) ([]types.PriceQuote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reader.ReadQuotes(f)
}

func setupLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
