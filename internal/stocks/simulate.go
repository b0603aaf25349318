package stocks

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// priceSimulator generates plausible OHLC series from a seeded source.
// All public methods take the mutex; rand.Rand is not safe for
// concurrent use.
type priceSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newPriceSimulator(seed int64) *priceSimulator {
	return &priceSimulator{rng: rand.New(rand.NewSource(seed))}
}

// intBetween returns a random int in [lo, hi].
func (s *priceSimulator) intBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// int64Between returns a random int64 in [lo, hi].
func (s *priceSimulator) int64Between(lo, hi int64) int64 {
	return lo + s.rng.Int63n(hi-lo+1)
}

// floatBetween returns a random float in [lo, hi).
func (s *priceSimulator) floatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// basePrices holds rough price levels for widely traded symbols.
var basePrices = map[string]float64{
	"AAPL": 175.0,
	"MSFT": 350.0,
	"GOOG": 140.0,
	"AMZN": 125.0,
	"TSLA": 210.0,
	"META": 425.0,
	"NVDA": 800.0,
	"SPY":  470.0,
	"QQQ":  400.0,
	"GME":  40.0,
	"AMC":  15.0,
	"PLTR": 22.0,
	"INTC": 35.0,
	"AMD":  170.0,
	"BA":   190.0,
	"DIS":  110.0,
	"NFLX": 600.0,
}

// volatilities holds approximate daily volatility per symbol.
var volatilities = map[string]float64{
	"AAPL": 0.015,
	"MSFT": 0.015,
	"GOOG": 0.018,
	"AMZN": 0.02,
	"TSLA": 0.04,
	"META": 0.025,
	"NVDA": 0.035,
	"SPY":  0.01,
	"QQQ":  0.015,
	"GME":  0.08,
	"AMC":  0.07,
	"PLTR": 0.04,
	"INTC": 0.02,
	"AMD":  0.03,
	"BA":   0.025,
	"DIS":  0.02,
	"NFLX": 0.025,
}

func basePriceFor(symbol string) float64 {
	if p, ok := basePrices[strings.ToUpper(symbol)]; ok {
		return p
	}
	return 100.0
}

func volatilityFor(symbol string) float64 {
	if v, ok := volatilities[strings.ToUpper(symbol)]; ok {
		return v
	}
	return 0.02
}

// dailyPrices generates days of OHLC bars ending today, newest first.
// Each day jitters independently around the symbol's base level.
func (s *priceSimulator) dailyPrices(symbol string, days int) []DailyPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := basePriceFor(symbol)
	vol := volatilityFor(symbol)
	now := time.Now()

	prices := make([]DailyPrice, 0, days)
	for day := 0; day < days; day++ {
		date := now.AddDate(0, 0, -day)

		change := (0.5 - s.rng.Float64()) * vol
		dayBase := base * (1 + change)

		openPrice := round2(dayBase * (1 + (s.rng.Float64()-0.5)*0.01))
		closePrice := round2(dayBase * (1 + (s.rng.Float64()-0.5)*0.01))
		highPrice := round2(math.Max(openPrice, closePrice) * (1 + s.rng.Float64()*0.01))
		lowPrice := round2(math.Min(openPrice, closePrice) * (1 - s.rng.Float64()*0.01))

		prices = append(prices, DailyPrice{
			Date:   date.Format("2006-01-02"),
			Open:   openPrice,
			High:   highPrice,
			Low:    lowPrice,
			Close:  closePrice,
			Volume: int64(s.intBetween(100000, 10000000)),
		})
	}
	return prices
}

// intradayPrices generates hourly OHLC bars walking back from the
// current hour, newest first. Intraday moves are dampened relative to
// the daily series.
func (s *priceSimulator) intradayPrices(symbol string, intervals int) []IntradayPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := basePriceFor(symbol)
	vol := volatilityFor(symbol) * 0.3

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())

	prices := make([]IntradayPrice, 0, intervals)
	for hour := 0; hour < intervals; hour++ {
		ts := start.Add(-time.Duration(hour) * time.Hour)

		change := (0.5 - s.rng.Float64()) * vol
		hourBase := base * (1 + change)

		openPrice := round2(hourBase * (1 + (s.rng.Float64()-0.5)*0.005))
		closePrice := round2(hourBase * (1 + (s.rng.Float64()-0.5)*0.005))
		highPrice := round2(math.Max(openPrice, closePrice) * (1 + s.rng.Float64()*0.003))
		lowPrice := round2(math.Min(openPrice, closePrice) * (1 - s.rng.Float64()*0.003))

		prices = append(prices, IntradayPrice{
			Datetime: ts.Format("2006-01-02 15:04:05"),
			Open:     openPrice,
			High:     highPrice,
			Low:      lowPrice,
			Close:    closePrice,
			Volume:   int64(s.intBetween(10000, 1000000)),
		})
	}
	return prices
}

// companyProfile is a catalog entry for a known symbol.
type companyProfile struct {
	name     string
	sector   string
	industry string
}

var companyProfiles = map[string]companyProfile{
	"AAPL": {"Apple Inc.", "Technology", "Consumer Electronics"},
	"MSFT": {"Microsoft Corporation", "Technology", "Software—Infrastructure"},
	"GOOG": {"Alphabet Inc.", "Technology", "Internet Content & Information"},
	"AMZN": {"Amazon.com, Inc.", "Consumer Cyclical", "Internet Retail"},
	"TSLA": {"Tesla, Inc.", "Consumer Cyclical", "Auto Manufacturers"},
	"META": {"Meta Platforms, Inc.", "Technology", "Internet Content & Information"},
	"NVDA": {"NVIDIA Corporation", "Technology", "Semiconductors"},
}

// overview generates a company profile. Unknown symbols get generic
// placeholder details.
func (s *priceSimulator) overview(symbol string) *Overview {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticker := strings.ToUpper(symbol)
	profile, ok := companyProfiles[ticker]
	if !ok {
		profile = companyProfile{name: ticker + " Corporation", sector: "Unknown", industry: "Unknown"}
	}

	base := basePriceFor(ticker)
	return &Overview{
		Symbol:        ticker,
		Name:          profile.name,
		Description:   fmt.Sprintf("%s is a leading company in the %s industry.", profile.name, profile.industry),
		Exchange:      "NASDAQ",
		Sector:        profile.sector,
		Industry:      profile.industry,
		PERatio:       round2(s.floatBetween(10, 30)),
		MarketCap:     s.int64Between(1e9, 2e12),
		DividendYield: round2(s.floatBetween(0, 2.5)),
		High52Week:    base * 1.2,
		Low52Week:     base * 0.8,
		EPS:           round2(s.floatBetween(0.5, 10)),
	}
}
