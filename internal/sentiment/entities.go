package sentiment

import (
	"regexp"
	"sort"
)

// tickerExpr matches ticker-shaped tokens: one to five capitals with an
// optional $ prefix and optional one-letter class suffix, or caret index
// notation like ^GSPC. Bare capitalized words of five letters or fewer
// also match; callers treat the ticker list as candidates.
const tickerExpr = `\$?([A-Z]{1,5})(?:\.[A-Z])?|\^([A-Z]{1,5})`

// keyPhraseExprs capture trading statements as two groups joined into
// "group1 group2" strings, e.g. "buy AAPL" or "TSLA bullish".
var keyPhraseExprs = []string{
	`\b(buy|sell|hold|long|short)\s+(?:on|the)?\s*([A-Z]{1,5})\b`,
	`\b([A-Z]{1,5})\s+(?:is|looks?|seems?|appears?)\s+(bullish|bearish)\b`,
	`\b(earnings|revenue|guidance|forecast|dividend|split)\s+(?:for|from)?\s*([A-Z]{1,5})\b`,
	`\bI\s+(?:am|'m)\s+(bullish|bearish)\s+on\s+([A-Z]{1,5})\b`,
	`\b(calls|puts|options|leaps)\s+(?:on|for)?\s*([A-Z]{1,5})\b`,
}

func compileKeyPhrasePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keyPhraseExprs))
	for i, expr := range keyPhraseExprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}

// Entities holds the financial entities recognized in one text.
type Entities struct {
	Tickers          []string `json:"tickers"`
	Companies        []string `json:"companies"`
	Indices          []string `json:"indices"`
	Crypto           []string `json:"crypto"`
	ETFs             []string `json:"etfs"`
	InvestmentStyles []string `json:"investment_styles"`
	Terms            []string `json:"terms"`
	MarketMakers     []string `json:"market_makers"`
	OptionsTerms     []string `json:"options_terms"`
	KeyPhrases       []string `json:"key_phrases"`
}

func (e *Entities) bucket(category string) *[]string {
	switch category {
	case "companies":
		return &e.Companies
	case "indices":
		return &e.Indices
	case "crypto":
		return &e.Crypto
	case "etfs":
		return &e.ETFs
	case "investment_styles":
		return &e.InvestmentStyles
	case "terms":
		return &e.Terms
	case "market_makers":
		return &e.MarketMakers
	case "options_terms":
		return &e.OptionsTerms
	}
	return nil
}

// ExtractEntities recognizes tickers, key trading phrases and gazetteer
// entities in the text. Ticker candidates are deduplicated and sorted;
// gazetteer categories are scanned independently, so one mention may
// surface in several categories.
func (a *Analyzer) ExtractEntities(text string) *Entities {
	result := &Entities{}
	if text == "" {
		return result
	}

	seen := make(map[string]bool)
	for _, m := range a.tickerPattern.FindAllStringSubmatch(text, -1) {
		ticker := m[1]
		if ticker == "" {
			ticker = m[2]
		}
		if ticker != "" && !seen[ticker] {
			seen[ticker] = true
			result.Tickers = append(result.Tickers, ticker)
		}
	}
	sort.Strings(result.Tickers)

	for _, pattern := range a.phrasePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if len(m) >= 3 {
				result.KeyPhrases = append(result.KeyPhrases, m[1]+" "+m[2])
			}
		}
	}

	// Canonical (cased) terms are reported even though matching is
	// case-insensitive.
	for _, cat := range a.gazetteer {
		found := result.bucket(cat.name)
		for i, pattern := range cat.patterns {
			if pattern.MatchString(text) {
				*found = append(*found, cat.terms[i])
			}
		}
	}

	return result
}
