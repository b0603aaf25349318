// Package reddit fetches posts and comments from financial subreddits.
// It reads Reddit's public Atom feeds and falls back to a simulated
// generator whenever a feed cannot be fetched, so every call returns
// data.
package reddit

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/user/sentimentstream/pkg/logger"
)

// FinancialSubreddits lists the subreddits treated as financial when
// filtering site-wide search results.
var FinancialSubreddits = []string{
	"wallstreetbets", "investing", "stocks", "finance",
	"cryptocurrency", "personalfinance", "options", "stockmarket",
}

// Post is one subreddit submission. Feed mode cannot see votes or
// comment counts, so Score, UpvoteRatio and NumComments stay zero
// there; simulated posts carry plausible values.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Selftext    string    `json:"selftext"`
	URL         string    `json:"url"`
	Subreddit   string    `json:"subreddit"`
	Author      string    `json:"author"`
	CreatedUTC  time.Time `json:"created_utc"`
	Score       int       `json:"score"`
	UpvoteRatio float64   `json:"upvote_ratio"`
	NumComments int       `json:"num_comments"`
	Permalink   string    `json:"permalink"`
}

// Comment is one top-level comment on a post.
type Comment struct {
	ID         string    `json:"id"`
	Body       string    `json:"body"`
	Author     string    `json:"author"`
	CreatedUTC time.Time `json:"created_utc"`
	Score      int       `json:"score"`
	Permalink  string    `json:"permalink"`
}

// Config controls a Fetcher. Zero values select the public reddit.com
// feeds, a two second request interval and a time-based simulator seed.
type Config struct {
	BaseURL         string
	UserAgent       string
	UseFeeds        bool
	RequestInterval time.Duration
	Seed            int64
}

const (
	defaultBaseURL   = "https://www.reddit.com"
	defaultUserAgent = "sentimentstream/1.0 (feed reader)"
	defaultInterval  = 2 * time.Second
)

// Fetcher retrieves subreddit content. It is safe for concurrent use.
type Fetcher struct {
	parser   *gofeed.Parser
	limiter  *rate.Limiter
	baseURL  string
	useFeeds bool
	sim      *simulator
}

// NewFetcher creates a Fetcher from cfg, filling in defaults for unset
// fields.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.RequestInterval <= 0 {
		cfg.RequestInterval = defaultInterval
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	parser := gofeed.NewParser()
	parser.UserAgent = cfg.UserAgent

	return &Fetcher{
		parser:   parser,
		limiter:  rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		baseURL:  cfg.BaseURL,
		useFeeds: cfg.UseFeeds,
		sim:      newSimulator(cfg.Seed),
	}
}

// Posts returns up to limit posts from the subreddit. sortBy is one of
// "hot", "new", "top" or "controversial"; timeFilter narrows "top" and
// "controversial" listings ("hour", "day", "week", "month", "year",
// "all").
func (f *Fetcher) Posts(ctx context.Context, subreddit, sortBy, timeFilter string, limit int) []Post {
	if f.useFeeds {
		posts, err := f.feedPosts(ctx, subreddit, sortBy, timeFilter, limit)
		if err == nil {
			return posts
		}
		logger.Warnf("reddit feed for r/%s failed: %v, serving simulated posts", subreddit, err)
	}
	return f.sim.posts(subreddit, limit)
}

// Post returns a single post by its Reddit ID.
func (f *Fetcher) Post(ctx context.Context, postID string) *Post {
	if f.useFeeds {
		post, err := f.feedPost(ctx, postID)
		if err == nil {
			return post
		}
		logger.Warnf("reddit feed for post %s failed: %v, serving simulated post", postID, err)
	}
	return f.sim.post(postID)
}

// Comments returns up to limit top-level comments for the post, best
// scored first.
func (f *Fetcher) Comments(ctx context.Context, postID string, limit int) []Comment {
	if f.useFeeds {
		comments, err := f.feedComments(ctx, postID, limit)
		if err == nil {
			return comments
		}
		logger.Warnf("reddit comment feed for post %s failed: %v, serving simulated comments", postID, err)
	}
	return f.sim.comments(postID, limit)
}

// Search returns posts matching the query. With an empty subreddit the
// search runs site-wide and keeps only financial subreddits.
func (f *Fetcher) Search(ctx context.Context, query, subreddit string, limit int) []Post {
	if f.useFeeds {
		posts, err := f.feedSearch(ctx, query, subreddit, limit)
		if err == nil {
			return posts
		}
		logger.Warnf("reddit search feed for %q failed: %v, serving simulated results", query, err)
	}
	return f.sim.searchResults(query, limit)
}

// HistoricalSentiment returns a synthetic daily sentiment series for an
// entity, one point per day from days ago through today. Reddit exposes
// no vote history, so the series is always generated.
func (f *Fetcher) HistoricalSentiment(entity string, days int) []SentimentPoint {
	return f.sim.historicalSentiment(entity, days)
}
