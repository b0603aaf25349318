// Package stocks provides company overviews and price history. Live
// mode scrapes a quote page and reads the public chart API; a simulated
// generator stands in whenever live data cannot be fetched, so every
// call returns data.
package stocks

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/user/sentimentstream/pkg/logger"
)

// DailyPrice is one trading day of OHLCV data.
type DailyPrice struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// IntradayPrice is one intraday interval of OHLCV data.
type IntradayPrice struct {
	Datetime string  `json:"datetime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   int64   `json:"volume"`
}

// Overview describes a company.
type Overview struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Exchange      string  `json:"exchange"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	PERatio       float64 `json:"pe_ratio"`
	MarketCap     int64   `json:"market_cap"`
	DividendYield float64 `json:"dividend_yield"`
	High52Week    float64 `json:"52_week_high"`
	Low52Week     float64 `json:"52_week_low"`
	EPS           float64 `json:"eps"`
}

// intradayLimit caps intraday series at one trading day of hourly bars.
const intradayLimit = 24

// Config controls a Fetcher. Zero values select the public Yahoo chart
// API, the finviz quote page, a three second request delay and a
// time-based simulator seed.
type Config struct {
	ChartBaseURL string
	QuoteBaseURL string
	UseLive      bool
	RequestDelay time.Duration
	Seed         int64
}

const (
	defaultChartBaseURL = "https://query1.finance.yahoo.com"
	defaultQuoteBaseURL = "https://finviz.com/quote.ashx"
	defaultRequestDelay = 3 * time.Second
)

// Fetcher retrieves stock data. It is safe for concurrent use.
type Fetcher struct {
	chartBaseURL string
	quoteBaseURL string
	client       *http.Client
	useLive      bool

	delay       time.Duration
	lastRequest time.Time
	mu          sync.Mutex

	sim *priceSimulator
}

// NewFetcher creates a Fetcher from cfg, filling in defaults for unset
// fields.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.ChartBaseURL == "" {
		cfg.ChartBaseURL = defaultChartBaseURL
	}
	if cfg.QuoteBaseURL == "" {
		cfg.QuoteBaseURL = defaultQuoteBaseURL
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = defaultRequestDelay
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Fetcher{
		chartBaseURL: strings.TrimRight(cfg.ChartBaseURL, "/"),
		quoteBaseURL: strings.TrimRight(cfg.QuoteBaseURL, "/"),
		client:       &http.Client{Timeout: 30 * time.Second},
		useLive:      cfg.UseLive,
		delay:        cfg.RequestDelay,
		sim:          newPriceSimulator(cfg.Seed),
	}
}

// wait enforces the minimum delay between live requests.
func (f *Fetcher) wait(ctx context.Context) error {
	f.mu.Lock()
	elapsed := time.Since(f.lastRequest)
	if elapsed < f.delay && !f.lastRequest.IsZero() {
		sleep := f.delay - elapsed
		f.mu.Unlock()
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return ctx.Err()
		}
		f.mu.Lock()
	}
	f.lastRequest = time.Now()
	f.mu.Unlock()
	return nil
}

// DailyPrices returns up to days daily bars for the symbol, most recent
// first. Every calendar day appears in simulated series; live series
// carry trading days only.
func (f *Fetcher) DailyPrices(ctx context.Context, symbol string, days int) []DailyPrice {
	symbol = normalizeSymbol(symbol)
	if f.useLive {
		prices, err := f.liveDailyPrices(ctx, symbol, days)
		if err == nil && len(prices) > 0 {
			return prices
		}
		logger.Warnf("live daily prices for %s failed: %v, serving simulated data", symbol, err)
	}
	return f.sim.dailyPrices(symbol, days)
}

// IntradayPrices returns up to 24 intraday bars for the symbol, most
// recent first. interval accepts both 1min/5min/15min/30min/60min and
// 1m/5m/15m/30m/60m spellings.
func (f *Fetcher) IntradayPrices(ctx context.Context, symbol, interval string) []IntradayPrice {
	symbol = normalizeSymbol(symbol)
	if f.useLive {
		prices, err := f.liveIntradayPrices(ctx, symbol, interval)
		if err == nil && len(prices) > 0 {
			return prices
		}
		logger.Warnf("live intraday prices for %s failed: %v, serving simulated data", symbol, err)
	}
	return f.sim.intradayPrices(symbol, intradayLimit)
}

// Overview returns company details for the symbol.
func (f *Fetcher) Overview(ctx context.Context, symbol string) *Overview {
	symbol = normalizeSymbol(symbol)
	if f.useLive {
		overview, err := f.scrapeOverview(ctx, symbol)
		if err == nil {
			return overview
		}
		logger.Warnf("overview scrape for %s failed: %v, serving catalog data", symbol, err)
	}
	return f.sim.overview(symbol)
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
