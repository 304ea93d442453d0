package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`
	API      API
	Files    Files
	// DatabaseURL selects the pgx market-data store as the chart/quote
	// source when set; files or the HTTP API are used otherwise.
	DatabaseURL string `env:"DATABASE_URL"`
}

type API struct {
	URL           string        `env:"MARKETDATA_API_URL" envDefault:"https://yh-finance.p.rapidapi.com"`
	Host          string        `env:"MARKETDATA_API_HOST" envDefault:"yh-finance.p.rapidapi.com"`
	Key           string        `env:"MARKETDATA_API_KEY"`
	Timeout       time.Duration `env:"MARKETDATA_API_TIMEOUT" envDefault:"10s"`
	Debug         bool          `env:"MARKETDATA_API_DEBUG" envDefault:"false"`
	ChartTimezone string        `env:"MARKETDATA_CHART_TIMEZONE" envDefault:"America/New_York"`
}

type Files struct {
	Executions string `env:"EXECUTIONS_FILE" envDefault:"executions.csv"`
	// BrokerEvents selects a raw broker event dump, replayed through the
	// broker session, as the execution source when set; the exported
	// executions CSV is read otherwise.
	BrokerEvents string `env:"BROKER_EVENTS_FILE"`
	Chart       string `env:"CHART_FILE" envDefault:"stock_chart_AAPL.csv"`
	Index       string `env:"INDEX_FILE" envDefault:"sp500.csv"`
	Quotes      string `env:"QUOTES_FILE" envDefault:"stock_price_AAPL.csv"`
	XLSXReport  string `env:"XLSX_REPORT_FILE"`
	ChartSymbol string `env:"CHART_SYMBOL" envDefault:"AAPL"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
