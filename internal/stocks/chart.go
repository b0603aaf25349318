package stocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// chartResponse mirrors the chart API envelope.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// chartBar is one decoded bar.
type chartBar struct {
	ts                     time.Time
	open, high, low, close float64
	volume                 int64
}

// decodeChart parses a chart API response into bars, dropping padding
// entries that carry no close price.
func decodeChart(r io.Reader) ([]chartBar, error) {
	var resp chartResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode chart response: %w", err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error: %s (%s)", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart response carries no series")
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	var bars []chartBar
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == 0 {
			continue
		}
		bar := chartBar{ts: time.Unix(ts, 0), close: quote.Close[i]}
		if i < len(quote.Open) {
			bar.open = quote.Open[i]
		}
		if i < len(quote.High) {
			bar.high = quote.High[i]
		}
		if i < len(quote.Low) {
			bar.low = quote.Low[i]
		}
		if i < len(quote.Volume) {
			bar.volume = quote.Volume[i]
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func (f *Fetcher) fetchChart(ctx context.Context, symbol string, lookback time.Duration, interval string) ([]chartBar, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.Add(-lookback)
	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s",
		f.chartBaseURL, url.PathEscape(symbol), start.Unix(), end.Unix(), url.QueryEscape(interval))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chartURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create chart request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch chart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart API returned status %d for %s", resp.StatusCode, symbol)
	}
	return decodeChart(resp.Body)
}

// liveDailyPrices fetches days of daily bars, newest first. The lookback
// carries a few extra days of buffer for weekends and holidays.
func (f *Fetcher) liveDailyPrices(ctx context.Context, symbol string, days int) ([]DailyPrice, error) {
	bars, err := f.fetchChart(ctx, symbol, time.Duration(days+5)*24*time.Hour, "1d")
	if err != nil {
		return nil, err
	}

	prices := make([]DailyPrice, 0, len(bars))
	for _, b := range bars {
		prices = append(prices, DailyPrice{
			Date:   b.ts.Format("2006-01-02"),
			Open:   b.open,
			High:   b.high,
			Low:    b.low,
			Close:  b.close,
			Volume: b.volume,
		})
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i].Date > prices[j].Date })
	if len(prices) > days {
		prices = prices[:days]
	}
	return prices, nil
}

// intervalNames maps minute-suffixed interval spellings to the chart
// API's short form.
var intervalNames = map[string]string{
	"1min": "1m", "5min": "5m", "15min": "15m", "30min": "30m", "60min": "60m",
}

// liveIntradayPrices fetches up to a week of intraday bars and keeps the
// 24 most recent, newest first.
func (f *Fetcher) liveIntradayPrices(ctx context.Context, symbol, interval string) ([]IntradayPrice, error) {
	if interval == "" {
		interval = "60m"
	}
	if mapped, ok := intervalNames[interval]; ok {
		interval = mapped
	}

	bars, err := f.fetchChart(ctx, symbol, 7*24*time.Hour, interval)
	if err != nil {
		return nil, err
	}

	prices := make([]IntradayPrice, 0, len(bars))
	for _, b := range bars {
		prices = append(prices, IntradayPrice{
			Datetime: b.ts.Format("2006-01-02 15:04:05"),
			Open:     b.open,
			High:     b.high,
			Low:      b.low,
			Close:    b.close,
			Volume:   b.volume,
		})
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i].Datetime > prices[j].Datetime })
	if len(prices) > intradayLimit {
		prices = prices[:intradayLimit]
	}
	return prices, nil
}
