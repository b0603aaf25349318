package reddit

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"sync"
	"time"
)

// simulator generates plausible subreddit content from a seeded source.
// All public methods take the mutex; rand.Rand is not safe for
// concurrent use.
type simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSimulator(seed int64) *simulator {
	return &simulator{rng: rand.New(rand.NewSource(seed))}
}

// intBetween returns a random int in [lo, hi].
func (s *simulator) intBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// floatBetween returns a random float in [lo, hi).
func (s *simulator) floatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *simulator) pick(items []string) string {
	return items[s.rng.Intn(len(items))]
}

func (s *simulator) username() string {
	return fmt.Sprintf("user%d", s.intBetween(100, 9999))
}

var feedTickers = []string{
	"SPY", "AAPL", "TSLA", "GME", "AMC", "NVDA", "MSFT", "AMZN", "PLTR", "BB", "NOK",
	"META", "AMD", "COIN", "JPM", "BAC", "GS", "MS", "BBBY", "QQQ", "VTI", "VOO", "JEPI",
	"SCHD", "VYM", "VIG", "INTC", "GOOG",
}

var feedTerms = []string{
	"bullish", "bearish", "calls", "puts", "tendies", "squeeze", "moon", "crash", "dump", "rally",
}

// posts generates limit feed-style posts for a subreddit, dated within
// the last week.
func (s *simulator) posts(subreddit string, limit int) []Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	posts := make([]Post, 0, limit)

	for i := 0; i < limit; i++ {
		ticker := s.pick(feedTickers)
		term1 := s.pick(feedTerms)
		term2 := s.pick(feedTerms)

		title := s.pick([]string{
			fmt.Sprintf("What's happening with %s? Looking %s", ticker, term1),
			fmt.Sprintf("%s is about to %s - DD inside", ticker, term1),
			fmt.Sprintf("Why I'm %s on %s for the next quarter", term1, ticker),
			fmt.Sprintf("Just YOLOed my life savings into %s %s", ticker, term1),
			fmt.Sprintf("The %s %s %s might be starting", ticker, term1, term2),
			fmt.Sprintf("Technical Analysis of %s: %s indicators", ticker, term1),
			fmt.Sprintf("Breaking: %s %s due to market conditions", ticker, term1),
			fmt.Sprintf("Thoughts on %s going %s?", ticker, term1),
			fmt.Sprintf("%s Earnings Thread - Will it %s?", ticker, term1),
			fmt.Sprintf("I've been researching %s and found it's %s - here's why", ticker, term1),
		})

		selftext := s.pick([]string{
			fmt.Sprintf("I've been watching %s for months and think it's heading %s. The technicals look %s.", ticker, term1, term2),
			fmt.Sprintf("Based on my research, %s is positioned to go %s in the next few weeks due to market trends.", ticker, term1),
			fmt.Sprintf("After analyzing %s's financials, I believe it's %s. Their revenue growth is impressive.", ticker, term1),
			fmt.Sprintf("The market doesn't understand %s's potential. It's clearly %s and undervalued.", ticker, term1),
			fmt.Sprintf("I'm seeing a %s pattern for %s. Who else is in on this?", term1, ticker),
			"", // link-only post
		})

		age := time.Duration(s.intBetween(0, 6))*24*time.Hour +
			time.Duration(s.intBetween(0, 23))*time.Hour +
			time.Duration(s.intBetween(0, 59))*time.Minute

		id := fmt.Sprintf("sim%d", i)
		posts = append(posts, Post{
			ID:          id,
			Title:       title,
			Selftext:    selftext,
			URL:         fmt.Sprintf("https://reddit.com/r/%s/comments/%s/", subreddit, id),
			Subreddit:   subreddit,
			Author:      s.username(),
			CreatedUTC:  now.Add(-age),
			Score:       s.intBetween(5, 5000),
			UpvoteRatio: s.floatBetween(0.5, 1.0),
			NumComments: s.intBetween(0, 500),
			Permalink:   fmt.Sprintf("/r/%s/comments/%s/", subreddit, id),
		})
	}
	return posts
}

var simPostTickers = []string{
	"SPY", "AAPL", "TSLA", "GME", "AMC", "NVDA", "MSFT", "AMZN", "PLTR", "META", "AMD",
	"COIN", "JPM", "BAC", "GS", "MS", "BBBY", "NOK", "QQQ", "VTI", "VOO", "GOOG",
}

const simPostBodyThesis = `# %[1]s Analysis and Investment Thesis

## Introduction
I've been researching %[1]s for the past few months and wanted to share my findings. The company is positioned for growth in the current market environment.

## Financials
- Revenue: Growing at 22%% YoY
- Earnings: Beat expectations last 3 quarters
- Cash position: Strong with $4.5B
- Debt: Manageable at $1.2B

## Technical Analysis
The stock is forming a classic cup and handle pattern which is typically bullish. MACD shows a crossover indicating potential upward movement.

## Catalysts
1. New product launch in Q3
2. Expansion into emerging markets
3. Potential acquisition targets
4. Industry tailwinds

## Risks
- Competition from larger players
- Regulatory concerns
- Market volatility

## Conclusion
I'm bullish on %[1]s with a price target of $XXX by year end. This represents a 30%% upside from current levels.

*Disclaimer: This is not financial advice. Do your own research.*`

const simPostBodyTechnical = `# %[1]s Technical Analysis

Looking at the charts, %[1]s is showing several bullish indicators:

1. **Moving Averages**: The 50-day MA just crossed above the 200-day MA (golden cross)
2. **RSI**: Currently at 58, showing momentum but not overbought
3. **Volume**: Increasing on up days, decreasing on down days
4. **Support Levels**: Strong support at $XXX levels

The stock has been consolidating for weeks and appears ready for a breakout.

Charts and further analysis: [link]

What do you think? I'm considering loading up on calls.`

const simPostBodyValue = `# Why %[1]s is undervalued right now

After the recent market pullback, %[1]s is trading at a significant discount to its intrinsic value. Here's why:

## Industry Analysis
The sector is growing at 15%% annually while %[1]s is growing at 23%%

## Competitive Advantages
- Proprietary technology
- Strong brand recognition
- Economies of scale
- High switching costs for customers

## Valuation Metrics
- P/E ratio below industry average (18 vs 24)
- PEG ratio of 0.8 indicates undervaluation
- Price to FCF of 15 is attractive

I've built a DCF model that suggests a fair value 40%% higher than current price.

Position: Long shares and Jan 20XX calls`

// post generates one deep-dive style post for a known ID.
func (s *simulator) post(postID string) *Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postLocked(postID)
}

func (s *simulator) postLocked(postID string) *Post {
	ticker := s.pick(simPostTickers)

	title := s.pick([]string{
		fmt.Sprintf("Deep Dive Analysis: Why %s is set for a major move", ticker),
		fmt.Sprintf("%s Technical Analysis and Price Targets", ticker),
		fmt.Sprintf("Breaking down %s's financials - Bullish case", ticker),
		fmt.Sprintf("The Bull and Bear case for %s in the current market", ticker),
		fmt.Sprintf("Why I'm investing 50%% of my portfolio in %s - DD Inside", ticker),
	})

	selftext := s.pick([]string{
		fmt.Sprintf(simPostBodyThesis, ticker),
		fmt.Sprintf(simPostBodyTechnical, ticker),
		fmt.Sprintf(simPostBodyValue, ticker),
	})

	created := time.Now().AddDate(0, 0, -s.intBetween(1, 5))

	return &Post{
		ID:          postID,
		Title:       title,
		Selftext:    selftext,
		URL:         fmt.Sprintf("https://reddit.com/r/wallstreetbets/comments/%s/", postID),
		Subreddit:   "wallstreetbets",
		Author:      s.username(),
		CreatedUTC:  created,
		Score:       s.intBetween(100, 5000),
		UpvoteRatio: s.floatBetween(0.7, 0.98),
		NumComments: s.intBetween(50, 500),
		Permalink:   fmt.Sprintf("/r/wallstreetbets/comments/%s/", postID),
	}
}

var simTickerInTitle = regexp.MustCompile(`\b([A-Z]{2,5})\b`)

// comments generates limit comments for a post, leaning bullish, best
// scored first.
func (s *simulator) comments(postID string, limit int) []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.postLocked(postID)

	ticker := "SPY"
	if m := simTickerInTitle.FindStringSubmatch(post.Title); m != nil {
		ticker = m[1]
	}

	bullish := []string{
		fmt.Sprintf("Great analysis on %s. I've been holding since $XX and plan to add more.", ticker),
		fmt.Sprintf("Thanks for the DD! %s has been on my watchlist, might jump in tomorrow.", ticker),
		fmt.Sprintf("I'm bullish on %s too, the technicals look solid right now.", ticker),
		fmt.Sprintf("Loaded up on %s calls yesterday, hoping this pays off!", ticker),
		fmt.Sprintf("%s to the moon! 🚀🚀🚀", ticker),
		fmt.Sprintf("Solid fundamentals for %s, and the market doesn't seem to realize it yet.", ticker),
		fmt.Sprintf("I work in the industry and %s is definitely positioned well for growth.", ticker),
		fmt.Sprintf("Been holding %s for months. The patience is finally paying off.", ticker),
		fmt.Sprintf("Just bought more %s on this dip. Thanks for confirming my bias!", ticker),
		fmt.Sprintf("The institutional ownership of %s has been increasing. Smart money knows what's up.", ticker),
	}

	bearish := []string{
		fmt.Sprintf("I don't know about %s, the valuation seems stretched to me.", ticker),
		fmt.Sprintf("Have you looked at %s's debt levels? I'm staying away for now.", ticker),
		fmt.Sprintf("I'm actually bearish on %s. The competition is heating up in this space.", ticker),
		fmt.Sprintf("Bought puts on %s yesterday. The technical breakdown is clear.", ticker),
		fmt.Sprintf("%s is overvalued by every metric. This won't end well.", ticker),
		fmt.Sprintf("The whole sector %s is in looks weak. I'd be careful here.", ticker),
		fmt.Sprintf("I'm short %s and sleeping well at night. The earnings will disappoint.", ticker),
		fmt.Sprintf("Not convinced on %s. What about the regulatory risks?", ticker),
		fmt.Sprintf("The chart for %s shows a clear head and shoulders pattern. Bearish.", ticker),
		fmt.Sprintf("I see %s dropping at least 15%% from here. The growth story is over.", ticker),
	}

	neutral := []string{
		fmt.Sprintf("Interesting take on %s. What's your price target?", ticker),
		fmt.Sprintf("What do you think about %s's upcoming earnings? That could be a catalyst.", ticker),
		fmt.Sprintf("How does %s compare to its competitors in the space?", ticker),
		fmt.Sprintf("I'm on the fence about %s. Need to do more research.", ticker),
		fmt.Sprintf("What's the best entry point for %s in your opinion?", ticker),
		fmt.Sprintf("Has anyone looked at the option chain for %s? IV seems high.", ticker),
		fmt.Sprintf("Not sure if now is the time for %s, but I'm watching closely.", ticker),
		fmt.Sprintf("What's your time horizon for %s? Short-term or long-term play?", ticker),
		fmt.Sprintf("Any concerns about the overall market affecting %s?", ticker),
		fmt.Sprintf("I've been following %s for a while. It tends to be volatile around news.", ticker),
	}

	commentTime := post.CreatedUTC.Add(time.Duration(s.intBetween(5, 120)) * time.Minute)
	comments := make([]Comment, 0, limit)

	for i := 0; i < limit; i++ {
		var body string
		switch roll := s.rng.Float64(); {
		case roll < 0.5:
			body = s.pick(bullish)
		case roll < 0.75:
			body = s.pick(bearish)
		default:
			body = s.pick(neutral)
		}

		commentTime = commentTime.Add(time.Duration(s.intBetween(1, 30)) * time.Minute)

		id := fmt.Sprintf("c%d%s", i, postID)
		comments = append(comments, Comment{
			ID:         id,
			Body:       body,
			Author:     s.username(),
			CreatedUTC: commentTime,
			Score:      s.intBetween(-5, 200),
			Permalink:  fmt.Sprintf("/r/wallstreetbets/comments/%s/comment/%s", postID, id),
		})
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Score > comments[j].Score
	})
	return comments
}

// looksLikeTicker reports whether a search query is shaped like a stock
// symbol: at most five characters, all uppercase letters.
func looksLikeTicker(query string) bool {
	if query == "" || len(query) > 5 {
		return false
	}
	for _, r := range query {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// searchResults generates limit posts themed around the query, spread
// across the financial subreddits and the last month.
func (s *simulator) searchResults(query string, limit int) []Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	var titles []string
	if looksLikeTicker(query) {
		ticker := query
		titles = []string{
			fmt.Sprintf("%s DD: Why it's poised for growth", ticker),
			fmt.Sprintf("Technical Analysis of %s - Bullish patterns forming", ticker),
			fmt.Sprintf("Just YOLO'd into %s - Here's why", ticker),
			fmt.Sprintf("Breaking: %s announces earnings beat", ticker),
			fmt.Sprintf("Is %s undervalued? Deep dive analysis", ticker),
			fmt.Sprintf("The Bull Case for %s in this market", ticker),
			fmt.Sprintf("%s - A value investor's perspective", ticker),
			fmt.Sprintf("Why I'm shorting %s - Bear case", ticker),
			fmt.Sprintf("Thoughts on %s after today's price action?", ticker),
			fmt.Sprintf("%s Earnings Thread - Q2 2023", ticker),
		}
	} else {
		titles = []string{
			fmt.Sprintf("Analysis of %s impact on markets", query),
			fmt.Sprintf("How does %s affect your investment strategy?", query),
			fmt.Sprintf("Discussion: %s and its implications for investors", query),
			fmt.Sprintf("%s trends and market opportunities", query),
			fmt.Sprintf("Is %s priced into the market already?", query),
			fmt.Sprintf("The relationship between %s and stock performance", query),
			fmt.Sprintf("How I'm positioning my portfolio for %s", query),
			fmt.Sprintf("%s explained - What investors should know", query),
			fmt.Sprintf("Breaking down the %s situation for traders", query),
			fmt.Sprintf("Weekly %s discussion thread", query),
		}
	}

	selftext := fmt.Sprintf(
		"This is a detailed analysis of %s and its impact on the financial markets. "+
			"Based on current trends, I believe we'll see significant movement related to %s.",
		query, query)

	now := time.Now()
	results := make([]Post, 0, limit)

	for i := 0; i < limit; i++ {
		subreddit := s.pick(FinancialSubreddits)
		id := fmt.Sprintf("search%d", i)

		results = append(results, Post{
			ID:          id,
			Title:       s.pick(titles),
			Selftext:    selftext,
			URL:         fmt.Sprintf("https://reddit.com/r/%s/comments/%s/", subreddit, id),
			Subreddit:   subreddit,
			Author:      s.username(),
			CreatedUTC:  now.AddDate(0, 0, -s.intBetween(0, 30)),
			Score:       s.intBetween(5, 3000),
			UpvoteRatio: s.floatBetween(0.6, 0.98),
			NumComments: s.intBetween(0, 300),
			Permalink:   fmt.Sprintf("/r/%s/comments/%s/", subreddit, id),
		})
	}
	return results
}
