package sentiment

import "regexp"

// entityCategory is one gazetteer bucket: a named, ordered term list with
// a compiled case-insensitive whole-word pattern per term.
type entityCategory struct {
	name     string
	terms    []string
	patterns []*regexp.Regexp
}

// compileGazetteer builds the ordered category table. Scan order and term
// order inside each category are fixed, which keeps extraction output
// deterministic.
func compileGazetteer() []entityCategory {
	cats := []entityCategory{
		{name: "companies", terms: companyNames()},
		{name: "indices", terms: []string{
			"S&P", "S&P 500", "Dow", "Dow Jones", "DJIA", "Nasdaq", "Russell", "Russell 2000",
			"FTSE", "Nikkei", "SSE", "Hang Seng", "VIX", "Fear Index", "QQQ", "SPY", "DIA", "IWM",
			"SMH", "XLF", "XLE", "XLV", "XLK", "XLI", "XLU", "XLP", "XLY", "XLRE", "XLC", "XBI",
		}},
		{name: "crypto", terms: []string{
			"BTC", "Bitcoin", "ETH", "Ethereum", "XRP", "Ripple", "DOGE", "Dogecoin", "crypto",
			"Binance", "Tether", "USDT", "stablecoin", "blockchain", "NFT", "mining", "SOL", "Solana",
			"ADA", "Cardano", "DOT", "Polkadot", "SHIB", "Shiba Inu", "AVAX", "Avalanche", "MATIC", "Polygon",
			"LTC", "Litecoin", "LINK", "Chainlink", "UNI", "Uniswap", "CRO", "Crypto.com", "wallet",
			"exchange", "DeFi", "decentralized", "DEX", "CEX", "yield farming", "staking", "APY",
		}},
		{name: "etfs", terms: []string{
			"VTI", "VOO", "VIG", "VYM", "SCHD", "JEPI", "JEPQ", "SPYD", "VEA", "VWO", "VXUS", "BND",
			"VCIT", "VCSH", "VTIP", "VGSH", "TLT", "GOVT", "VGLT", "VNQ", "VNQI", "GLD", "IAU", "SLV",
			"ARKK", "ARKG", "ARKW", "ARKF", "ARKX", "TQQQ", "SQQQ", "UPRO", "SPXU", "SOXL", "SOXS",
		}},
		{name: "investment_styles", terms: []string{
			"value", "growth", "income", "dividend", "momentum", "defensive", "cyclical",
			"contrarian", "bogleheads", "FIRE", "leanFIRE", "fatFIRE", "indexing", "passive",
			"active", "fundamental", "technical", "swing", "day trading", "long term",
			"buy and hold", "dollar cost averaging", "DCA", "lump sum", "tax loss harvesting",
		}},
		{name: "terms", terms: []string{
			"bull", "bear", "bullish", "bearish", "rally", "correction", "crash", "moon", "volatile",
			"volatility", "resistance", "support", "breakout", "trend", "uptrend", "downtrend", "pattern",
			"reversal", "momentum", "oversold", "overbought", "consolidation", "distribution", "accumulation",
			"liquidity", "sector", "rotation", "inflation", "yield", "interest rate", "fed", "margin",
			"dividend", "earnings", "revenue", "guidance", "forecast", "outlook", "estimate", "consensus",
			"recession", "depression", "hyperinflation", "stagflation", "soft landing", "hard landing",
			"tapering", "QE", "quantitative easing", "QT", "quantitative tightening", "FOMC", "CPI",
			"PCE", "GDP", "unemployment", "jobs", "housing", "debt ceiling", "default", "fiscal", "monetary",
			"treasury", "yield curve", "inversion", "steepening", "flattening", "spread", "basis points",
		}},
		{name: "market_makers", terms: []string{
			"Goldman", "MS", "Morgan Stanley", "JPM", "JPMorgan", "Citadel", "BlackRock", "Vanguard",
			"Fidelity", "Schwab", "institutions", "hedge funds", "pension", "mutual funds", "ETFs",
			"CBOE", "NYSE", "NASDAQ", "SEC", "FINRA", "FED", "Federal Reserve", "shorts", "smart money",
		}},
		{name: "options_terms", terms: []string{
			"upgrade", "downgrade", "target", "valuation", "P/E", "PE ratio", "market cap", "short interest",
			"options", "calls", "puts", "expiry", "IV", "implied volatility", "delta", "gamma",
			"theta", "vega", "hedging", "spread", "straddle", "strangle", "iron condor", "long",
			"short", "position",
		}},
	}

	for i := range cats {
		cats[i].patterns = make([]*regexp.Regexp, len(cats[i].terms))
		for j, term := range cats[i].terms {
			cats[i].patterns[j] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
	return cats
}

// companyNames returns popular tickers and company names.
func companyNames() []string {
	return []string{
		"AAPL", "Apple", "MSFT", "Microsoft", "GOOG", "Google", "Alphabet",
		"AMZN", "Amazon", "META", "Meta", "Facebook", "TSLA", "Tesla", "NVDA", "Nvidia",
		"JPM", "JP Morgan", "BAC", "Bank of America", "WMT", "Walmart", "DIS", "Disney",
		"NFLX", "Netflix", "INTC", "Intel", "AMD", "GME", "GameStop", "AMC",
		"PLTR", "Palantir", "NIO", "BABA", "Alibaba", "UBER", "LYFT", "SNAP", "Snapchat",
		"TWTR", "Twitter", "PFE", "Pfizer", "MRNA", "Moderna", "JNJ", "Johnson & Johnson",
		"COIN", "Coinbase", "GS", "Goldman Sachs", "MS", "Morgan Stanley", "BBBY", "Bed Bath & Beyond",
		"NOK", "Nokia", "VTI", "Vanguard", "VOO", "JEPI", "SCHD", "Schwab", "VYM", "VIG",
		"SPY", "QQQ", "Invesco", "PYPL", "PayPal", "SHOP", "Shopify", "SQ", "Block", "Square",
		"RBLX", "Roblox", "U", "Unity", "NET", "Cloudflare", "CRWD", "CrowdStrike", "DDOG", "Datadog",
		"SNOW", "Snowflake", "ROKU", "Roku", "ZM", "Zoom", "ADBE", "Adobe", "CRM", "Salesforce",
	}
}
