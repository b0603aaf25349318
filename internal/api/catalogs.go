package api

// popularSubreddits are the subreddit shortcuts offered on the feed.
var popularSubreddits = []string{
	"wallstreetbets", "investing", "stocks", "finance",
	"cryptocurrency", "personalfinance", "options", "stockmarket",
	"fintech", "econmonitor", "dividends", "ValueInvesting",
	"Bogleheads", "passiveincome", "EuropeFIRE", "UKPersonalFinance",
	"CreditCards",
}

// popularEntities are the quick links offered on the trends view.
var popularEntities = []string{
	"market", "SPY", "AAPL", "TSLA", "MSFT", "AMZN", "GME", "AMC",
	"BTC", "ETH", "NVDA", "GOOG", "META", "PLTR", "AMD", "COIN",
	"JPM", "BAC", "GS", "MS", "BBBY", "NOK", "inflation", "recession",
	"QQQ", "VIX",
}

// popularStocks is the symbol catalog behind the stock screener list.
var popularStocks = []string{
	"AAPL", "MSFT", "GOOG", "AMZN", "TSLA", "META", "NVDA",
	"SPY", "QQQ", "AMD", "GME", "AMC", "PLTR", "INTC", "COIN",
	"JPM", "BAC", "GS", "MS", "BBBY", "NOK",
	"VTI", "VOO", "JEPI", "SCHD", "VYM", "VIG",
}
