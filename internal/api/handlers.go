package api

import (
	"context"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/user/sentimentstream/internal/llm"
	"github.com/user/sentimentstream/internal/reddit"
	"github.com/user/sentimentstream/internal/sentiment"
	"github.com/user/sentimentstream/internal/storage"
	"github.com/user/sentimentstream/internal/trends"
	"github.com/user/sentimentstream/internal/wordcloud"
	"github.com/user/sentimentstream/pkg/logger"
)

const (
	defaultSubreddit = "wallstreetbets"
	defaultFeedLimit = 25
	maxListLimit     = 100

	// commentFetchLimit bounds per-post comment fetches during refresh;
	// commentDetailLimit bounds them on the post detail endpoint.
	commentFetchLimit  = 25
	commentDetailLimit = 100

	topCommentCount     = 5
	stockPulseDays      = 7
	trendingEntityCount = 10
)

// trendWindows maps the trends time_range parameter to a day count.
var trendWindows = map[string]int{
	"1day":   1,
	"7days":  7,
	"30days": 30,
	"90days": 90,
}

// priceWindows maps the stock detail time_range parameter to a day count.
var priceWindows = map[string]int{
	"7days":  7,
	"30days": 30,
	"90days": 90,
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// AnalyzeTextRequest represents an ad-hoc text analysis request.
type AnalyzeTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// handleAnalyzeSentiment scores a piece of text.
func (s *Server) handleAnalyzeSentiment(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	result := s.analyzer.Score(req.Text)

	c.JSON(http.StatusOK, gin.H{
		"result":      result,
		"color":       sentiment.Color(result.Compound),
		"explanation": sentiment.Explain(result),
	})
}

// handleExtractEntities extracts financial entities from a piece of text.
func (s *Server) handleExtractEntities(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entities": s.analyzer.ExtractEntities(req.Text),
	})
}

// analyzedPost is a post with its scored sentiment attached.
type analyzedPost struct {
	reddit.Post
	Sentiment *sentiment.Result `json:"sentiment"`
	Color     string            `json:"color"`
}

// analyzedComment is a comment with its scored sentiment attached.
type analyzedComment struct {
	reddit.Comment
	Sentiment *sentiment.Result `json:"sentiment"`
	Color     string            `json:"color"`
}

// handleFeed returns analyzed posts for a subreddit, the dashboard payload.
func (s *Server) handleFeed(c *gin.Context) {
	subreddit := c.DefaultQuery("subreddit", defaultSubreddit)
	timeFilter := c.DefaultQuery("time_period", "day")
	sortBy := c.DefaultQuery("sort_by", "hot")
	limit := parseLimit(c, defaultFeedLimit)

	posts := s.reddit.Posts(c.Request.Context(), subreddit, sortBy, timeFilter, limit)
	analyzed, compounds := s.analyzePosts(posts)

	c.JSON(http.StatusOK, gin.H{
		"subreddit":          subreddit,
		"time_period":        timeFilter,
		"sort_by":            sortBy,
		"posts":              analyzed,
		"summary":            trends.NewStats(compounds),
		"popular_subreddits": popularSubreddits,
	})
}

// handleRefreshFeed fetches a subreddit, scores everything and persists
// posts, comments and per-entity daily rollups.
func (s *Server) handleRefreshFeed(c *gin.Context) {
	subreddit := c.DefaultQuery("subreddit", defaultSubreddit)
	timeFilter := c.DefaultQuery("time_period", "day")
	sortBy := c.DefaultQuery("sort_by", "hot")
	limit := parseLimit(c, defaultFeedLimit)

	ctx := c.Request.Context()
	posts := s.reddit.Posts(ctx, subreddit, sortBy, timeFilter, limit)

	collector := trends.NewCollector()
	storedPosts := 0
	storedComments := 0
	totalComments := 0

	for _, post := range posts {
		text := postText(post)
		result := s.analyzer.Score(text)
		entities := s.analyzer.ExtractEntities(text)
		for _, key := range rollupKeys(entities) {
			collector.AddPost(key, post.CreatedUTC, result.Compound)
		}

		var postRowID uint
		if s.repo != nil {
			if err := s.repo.UpsertPost(ctx, newStoredPost(post, result)); err != nil {
				logger.Warnf("failed to persist post %s: %v", post.ID, err)
			} else {
				storedPosts++
			}
			if stored, err := s.repo.GetPostByRedditID(ctx, post.ID); err == nil && stored != nil {
				postRowID = stored.ID
			}
		}

		comments := s.reddit.Comments(ctx, post.ID, commentFetchLimit)
		totalComments += len(comments)
		for _, comment := range comments {
			commentResult := s.analyzer.Score(comment.Body)
			commentEntities := s.analyzer.ExtractEntities(comment.Body)
			for _, key := range rollupKeys(commentEntities) {
				collector.AddComment(key, comment.CreatedUTC, commentResult.Compound)
			}

			if s.repo != nil && postRowID != 0 {
				if err := s.repo.UpsertComment(ctx, newStoredComment(comment, postRowID, commentResult)); err != nil {
					logger.Warnf("failed to persist comment %s: %v", comment.ID, err)
				} else {
					storedComments++
				}
			}
		}
	}

	rollups := collector.Rollups()
	storedRollups := 0
	if s.repo != nil {
		for _, rollup := range rollups {
			row := storage.NewSentimentData(rollup)
			if err := s.repo.UpsertSentimentData(ctx, &row); err != nil {
				logger.Warnf("failed to persist rollup for %s: %v", rollup.Entity, err)
			} else {
				storedRollups++
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Feed refreshed successfully",
		"subreddit":       subreddit,
		"posts":           len(posts),
		"comments":        totalComments,
		"stored_posts":    storedPosts,
		"stored_comments": storedComments,
		"stored_rollups":  storedRollups,
	})
}

// handleFeedArchive returns previously persisted posts for a subreddit,
// newest first, with the sentiment they were scored with at fetch time.
func (s *Server) handleFeedArchive(c *gin.Context) {
	if s.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
		return
	}

	subreddit := c.DefaultQuery("subreddit", defaultSubreddit)
	limit := parseLimit(c, defaultFeedLimit)

	posts, err := s.repo.ListPostsBySubreddit(c.Request.Context(), subreddit, limit)
	if err != nil {
		logger.Errorf("failed to list archived posts for r/%s: %v", subreddit, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load archive"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subreddit": subreddit,
		"posts":     posts,
		"count":     len(posts),
	})
}

// handleGetPostArchive returns the stored copy of a post with the
// comments captured by past refreshes, highest score first.
func (s *Server) handleGetPostArchive(c *gin.Context) {
	if s.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
		return
	}

	ctx := c.Request.Context()
	post, err := s.repo.GetPostByRedditID(ctx, c.Param("id"))
	if err != nil {
		logger.Errorf("failed to load archived post %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load archive"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not archived"})
		return
	}

	comments, err := s.repo.ListCommentsByPostID(ctx, post.ID, commentDetailLimit)
	if err != nil {
		logger.Errorf("failed to load archived comments for post %s: %v", post.RedditID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load archive"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":          post,
		"comments":      comments,
		"comment_count": len(comments),
	})
}

// handleGetPost returns one post with its top comments, comment-level
// sentiment stats, entities and comment word frequencies.
func (s *Server) handleGetPost(c *gin.Context) {
	postID := c.Param("id")
	ctx := c.Request.Context()

	post := s.reddit.Post(ctx, postID)
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	text := postText(*post)
	postResult := s.analyzer.Score(text)
	entities := s.analyzer.ExtractEntities(text)

	comments := s.reddit.Comments(ctx, postID, commentDetailLimit)
	analyzed := make([]analyzedComment, 0, len(comments))
	compounds := make([]float64, 0, len(comments))
	var bodies strings.Builder
	var sentimentSum float64
	for _, comment := range comments {
		result := s.analyzer.Score(comment.Body)
		analyzed = append(analyzed, analyzedComment{
			Comment:   comment,
			Sentiment: result,
			Color:     sentiment.Color(result.Compound),
		})
		compounds = append(compounds, result.Compound)
		sentimentSum += result.Compound
		bodies.WriteString(comment.Body)
		bodies.WriteString(" ")
	}

	// Highest-scored comments first
	sort.SliceStable(analyzed, func(i, j int) bool {
		return analyzed[i].Score > analyzed[j].Score
	})
	top := analyzed
	if len(top) > topCommentCount {
		top = top[:topCommentCount]
	}

	c.JSON(http.StatusOK, gin.H{
		"post": analyzedPost{
			Post:      *post,
			Sentiment: postResult,
			Color:     sentiment.Color(postResult.Compound),
		},
		"comments":                 top,
		"comment_count":            len(comments),
		"comment_stats":            trends.NewStats(compounds),
		"comments_sentiment_score": sentimentSum,
		"entities":                 entities,
		"word_frequencies":         wordcloud.Frequencies(bodies.String()),
	})
}

// handleSearch returns analyzed posts matching a query. Without a
// subreddit parameter the search spans the financial subreddits.
func (s *Server) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	subreddit := c.Query("subreddit")
	limit := parseLimit(c, defaultFeedLimit)

	posts := s.reddit.Search(c.Request.Context(), query, subreddit, limit)
	analyzed, compounds := s.analyzePosts(posts)

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"posts":   analyzed,
		"count":   len(analyzed),
		"summary": trends.NewStats(compounds),
	})
}

// handleTrends returns the historical sentiment chart for an entity.
func (s *Server) handleTrends(c *gin.Context) {
	entity := c.DefaultQuery("entity", "market")
	timeRange := c.DefaultQuery("time_range", "7days")
	days, ok := trendWindows[timeRange]
	if !ok {
		timeRange = "7days"
		days = trendWindows[timeRange]
	}

	points := s.reddit.HistoricalSentiment(entity, days)
	series := trends.ChartSeries(points)

	var avgPositive, avgNegative, avgNeutral float64
	totalVolume := 0
	for _, point := range points {
		avgPositive += point.Positive
		avgNegative += point.Negative
		avgNeutral += point.Neutral
		totalVolume += point.Volume
	}
	if n := float64(len(points)); n > 0 {
		avgPositive /= n
		avgNegative /= n
		avgNeutral /= n
	}
	net := avgPositive - avgNegative

	c.JSON(http.StatusOK, gin.H{
		"entity":     entity,
		"time_range": timeRange,
		"series":     series,
		"summary": gin.H{
			"avg_positive":  avgPositive,
			"avg_negative":  avgNegative,
			"avg_neutral":   avgNeutral,
			"net_sentiment": net,
			"total_volume":  totalVolume,
		},
		"color":             sentiment.Color(net),
		"popular_entities":  popularEntities,
		"trending_entities": s.storedTopEntities(c.Request.Context(), days, trendingEntityCount),
	})
}

// stockSummary is one row of the stock screener list.
type stockSummary struct {
	Symbol       string  `json:"symbol"`
	Price        float64 `json:"price"`
	ChangePct    float64 `json:"change_pct"`
	SentimentAvg float64 `json:"sentiment_avg"`
	Mentions     int     `json:"mentions"`
}

// handleListStocks returns the popular-stock catalog with the latest
// price and the past week's stored sentiment pulse for each symbol.
func (s *Server) handleListStocks(c *gin.Context) {
	ctx := c.Request.Context()

	summaries := make([]stockSummary, 0, len(popularStocks))
	for _, symbol := range popularStocks {
		summary := stockSummary{Symbol: symbol}

		prices := s.stocks.DailyPrices(ctx, symbol, 2)
		if len(prices) > 0 {
			summary.Price = prices[0].Close
		}
		if len(prices) > 1 && prices[1].Close != 0 {
			summary.ChangePct = round2((prices[0].Close - prices[1].Close) / prices[1].Close * 100)
		}

		summary.SentimentAvg, summary.Mentions = trends.Pulse(s.storedRollups(ctx, symbol, stockPulseDays))
		summaries = append(summaries, summary)
	}

	c.JSON(http.StatusOK, gin.H{
		"stocks": summaries,
		"count":  len(summaries),
	})
}

// handleGetStock returns one stock's overview, price history, the
// stored sentiment aligned to the price dates and related posts.
func (s *Server) handleGetStock(c *gin.Context) {
	symbol := c.Param("symbol")
	timeRange := c.DefaultQuery("time_range", "30days")
	days, ok := priceWindows[timeRange]
	if !ok {
		timeRange = "30days"
		days = priceWindows[timeRange]
	}

	ctx := c.Request.Context()
	overview := s.stocks.Overview(ctx, symbol)
	prices := s.stocks.DailyPrices(ctx, symbol, days)

	// Chart arrays run oldest to newest
	dates := make([]string, 0, len(prices))
	closes := make([]float64, 0, len(prices))
	for i := len(prices) - 1; i >= 0; i-- {
		dates = append(dates, prices[i].Date)
		closes = append(closes, prices[i].Close)
	}
	aligned := trends.AlignByDate(dates, s.storedRollups(ctx, overview.Symbol, days))

	related, _ := s.analyzePosts(s.reddit.Search(ctx, overview.Symbol, "", topCommentCount))

	c.JSON(http.StatusOK, gin.H{
		"symbol":     overview.Symbol,
		"time_range": timeRange,
		"overview":   overview,
		"prices":     prices,
		"chart": gin.H{
			"dates":     dates,
			"closes":    closes,
			"sentiment": aligned,
		},
		"related_posts": related,
	})
}

// handleBrief asks the configured LLM provider to narrate the current
// feed aggregates. All scores come from the analyzer; the model only
// writes prose.
func (s *Server) handleBrief(c *gin.Context) {
	if s.provider == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no LLM provider configured"})
		return
	}

	subreddit := c.DefaultQuery("subreddit", defaultSubreddit)
	timeFilter := c.DefaultQuery("time_period", "day")
	sortBy := c.DefaultQuery("sort_by", "hot")
	limit := parseLimit(c, defaultFeedLimit)

	ctx := c.Request.Context()
	posts := s.reddit.Posts(ctx, subreddit, sortBy, timeFilter, limit)

	compounds := make([]float64, 0, len(posts))
	tickerCounts := make(map[string]int)
	termCounts := make(map[string]int)
	headlines := make([]string, 0, topCommentCount)
	for _, post := range posts {
		text := postText(post)
		result := s.analyzer.Score(text)
		compounds = append(compounds, result.Compound)

		for _, ticker := range s.analyzer.ExtractEntities(text).Tickers {
			tickerCounts[ticker]++
		}
		for _, term := range result.MatchedTerms {
			termCounts[term]++
		}
		if len(headlines) < topCommentCount {
			headlines = append(headlines, post.Title)
		}
	}

	summary := trends.Summarize(compounds)
	req := llm.BriefRequest{
		Subreddit:     subreddit,
		PositiveCount: summary.Positive,
		NeutralCount:  summary.Neutral,
		NegativeCount: summary.Negative,
		TopEntities:   topKeys(tickerCounts, topCommentCount),
		TopTerms:      topKeys(termCounts, topCommentCount),
		Headlines:     headlines,
	}

	brief, err := s.provider.Summarize(ctx, req)
	if err != nil {
		logger.Errorf("brief generation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate brief"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": s.provider.Name(),
		"brief":    brief,
		"based_on": gin.H{
			"subreddit": subreddit,
			"posts":     len(posts),
			"positive":  summary.Positive,
			"neutral":   summary.Neutral,
			"negative":  summary.Negative,
		},
	})
}

// postText joins a post's title and body for scoring.
func postText(p reddit.Post) string {
	return strings.TrimSpace(p.Title + " " + p.Selftext)
}

// analyzePosts scores a batch of posts and returns them with their
// compound scores.
func (s *Server) analyzePosts(posts []reddit.Post) ([]analyzedPost, []float64) {
	analyzed := make([]analyzedPost, 0, len(posts))
	compounds := make([]float64, 0, len(posts))
	for _, post := range posts {
		result := s.analyzer.Score(postText(post))
		analyzed = append(analyzed, analyzedPost{
			Post:      post,
			Sentiment: result,
			Color:     sentiment.Color(result.Compound),
		})
		compounds = append(compounds, result.Compound)
	}
	return analyzed, compounds
}

// rollupKeys lists the entities a scored item counts toward. Every item
// counts toward the site-wide market bucket.
func rollupKeys(entities *sentiment.Entities) []string {
	keys := []string{"market"}
	return append(keys, entities.Tickers...)
}

// storedRollups loads an entity's recent rollups, or nothing when the
// repository is absent.
func (s *Server) storedRollups(ctx context.Context, entity string, days int) []trends.DailyRollup {
	if s.repo == nil {
		return nil
	}
	since := time.Now().AddDate(0, 0, -days)
	rows, err := s.repo.SentimentSeries(ctx, entity, since)
	if err != nil {
		logger.Warnf("failed to load sentiment series for %s: %v", entity, err)
		return nil
	}
	rollups := make([]trends.DailyRollup, 0, len(rows))
	for _, row := range rows {
		rollups = append(rollups, row.AsRollup())
	}
	return rollups
}

// storedTopEntities lists the most mentioned entities in the stored
// rollups, or an empty list when the repository is absent.
func (s *Server) storedTopEntities(ctx context.Context, days, limit int) []storage.EntityMentions {
	out := make([]storage.EntityMentions, 0, limit)
	if s.repo == nil {
		return out
	}
	since := time.Now().AddDate(0, 0, -days)
	rows, err := s.repo.TopEntities(ctx, since, limit)
	if err != nil {
		logger.Warnf("failed to load top entities: %v", err)
		return out
	}
	return append(out, rows...)
}

// newStoredPost converts a fetched post and its score to a database row.
func newStoredPost(p reddit.Post, r *sentiment.Result) *storage.Post {
	return &storage.Post{
		RedditID:          p.ID,
		Subreddit:         p.Subreddit,
		Title:             p.Title,
		Selftext:          p.Selftext,
		Author:            p.Author,
		URL:               p.URL,
		Permalink:         p.Permalink,
		Score:             p.Score,
		UpvoteRatio:       p.UpvoteRatio,
		NumComments:       p.NumComments,
		CreatedUTC:        p.CreatedUTC,
		FetchedAt:         time.Now(),
		SentimentPositive: r.Pos,
		SentimentNegative: r.Neg,
		SentimentNeutral:  r.Neu,
		SentimentCompound: r.Compound,
		SentimentLabel:    string(r.Sentiment),
	}
}

// newStoredComment converts a fetched comment and its score to a
// database row.
func newStoredComment(cm reddit.Comment, postID uint, r *sentiment.Result) *storage.Comment {
	return &storage.Comment{
		RedditID:          cm.ID,
		PostID:            postID,
		Author:            cm.Author,
		Body:              cm.Body,
		Score:             cm.Score,
		CreatedUTC:        cm.CreatedUTC,
		SentimentPositive: r.Pos,
		SentimentNegative: r.Neg,
		SentimentNeutral:  r.Neu,
		SentimentCompound: r.Compound,
		SentimentLabel:    string(r.Sentiment),
	}
}

// parseLimit reads the limit query parameter with a fallback and cap.
func parseLimit(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// topKeys returns the n highest-count keys, ties broken alphabetically.
func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
