package stocks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// scrapeOverview pulls company fundamentals from the quote page.
func (f *Fetcher) scrapeOverview(ctx context.Context, symbol string) (*Overview, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	quoteURL := fmt.Sprintf("%s?t=%s", f.quoteBaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, quoteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote page returned status %d for %s", resp.StatusCode, symbol)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse quote page: %w", err)
	}
	return overviewFromDoc(doc, symbol)
}

// overviewFromDoc extracts the company header and the snapshot table.
// The snapshot table lays metrics out as alternating label and value
// cells.
func overviewFromDoc(doc *goquery.Document, symbol string) (*Overview, error) {
	cells := doc.Find("table.snapshot-table2 td")
	if cells.Length() == 0 {
		return nil, fmt.Errorf("quote page for %s carries no snapshot table", symbol)
	}

	ov := &Overview{Symbol: symbol, Exchange: "NASDAQ"}

	title := doc.Find("table.fullview-title")
	ov.Name = strings.TrimSpace(title.Find("a.tab-link b").First().Text())
	if exch := strings.Trim(strings.TrimSpace(title.Find("td.fullview-ticker span").First().Text()), "[]"); exch != "" {
		ov.Exchange = exch
	}
	links := title.Find("td.fullview-links a.tab-link")
	if links.Length() >= 2 {
		ov.Sector = strings.TrimSpace(links.Eq(0).Text())
		ov.Industry = strings.TrimSpace(links.Eq(1).Text())
	}
	ov.Description = strings.TrimSpace(doc.Find("td.fullview-profile").First().Text())

	for i := 0; i+1 < cells.Length(); i += 2 {
		label := strings.TrimSpace(cells.Eq(i).Text())
		value := strings.TrimSpace(cells.Eq(i + 1).Text())

		switch label {
		case "P/E":
			ov.PERatio = parseMetric(value)
		case "Market Cap":
			ov.MarketCap = int64(parseMetric(value))
		case "Dividend %":
			ov.DividendYield = parseMetric(value)
		case "EPS (ttm)":
			ov.EPS = parseMetric(value)
		case "52W Range":
			if low, high, ok := parseRange(value); ok {
				ov.Low52Week = low
				ov.High52Week = high
			}
		}
	}

	if ov.Name == "" {
		ov.Name = symbol
	}
	return ov, nil
}

// parseMetric converts a snapshot cell like "$2.95T", "28.50" or "0.55%"
// to a number. Dashes and unparseable cells come back as zero.
func parseMetric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "T"):
		multiplier = 1e12
		s = strings.TrimSuffix(s, "T")
	case strings.HasSuffix(s, "B"):
		multiplier = 1e9
		s = strings.TrimSuffix(s, "B")
	case strings.HasSuffix(s, "M"):
		multiplier = 1e6
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		multiplier = 1e3
		s = strings.TrimSuffix(s, "K")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v * multiplier
}

// parseRange splits a "142.10 - 199.62" cell into its two bounds.
func parseRange(s string) (low, high float64, ok bool) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return 0, 0, false
	}
	low = parseMetric(parts[0])
	high = parseMetric(parts[1])
	if low == 0 && high == 0 {
		return 0, 0, false
	}
	return low, high, true
}
