package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/sentimentstream/internal/llm"
	"github.com/user/sentimentstream/internal/reddit"
	"github.com/user/sentimentstream/internal/sentiment"
	"github.com/user/sentimentstream/internal/stocks"
	"github.com/user/sentimentstream/pkg/config"
)

// stubProvider records the request it was handed and returns a canned
// brief.
type stubProvider struct {
	req   llm.BriefRequest
	brief *llm.Brief
	err   error
}

func (p *stubProvider) Name() string                         { return "stub" }
func (p *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func (p *stubProvider) Summarize(ctx context.Context, req llm.BriefRequest) (*llm.Brief, error) {
	p.req = req
	return p.brief, p.err
}

func newTestServer(t *testing.T, provider llm.Provider) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	analyzer := sentiment.NewAnalyzer()
	redditFetcher := reddit.NewFetcher(reddit.Config{Seed: 7})
	stocksFetcher := stocks.NewFetcher(stocks.Config{Seed: 7, RequestDelay: time.Millisecond})

	return NewServer(analyzer, redditFetcher, stocksFetcher, nil, provider, cfg)
}

func doRequest(t *testing.T, s *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_ReusesCallerID(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodOptions, "/api/v1/feed", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandleAnalyzeSentiment(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodPost, "/api/v1/sentiment",
		strings.NewReader(`{"text": "Tesla is going to the moon, very bullish on this rally"}`))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	result := body["result"].(map[string]interface{})
	assert.Greater(t, result["compound"].(float64), 0.0)
	assert.Equal(t, "positive", result["sentiment"])
	assert.NotEmpty(t, result["matched_terms"])

	assert.True(t, strings.HasPrefix(body["color"].(string), "#00"))
	assert.Contains(t, body["explanation"].(string), "positive")
}

func TestHandleAnalyzeSentiment_MissingText(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodPost, "/api/v1/sentiment", strings.NewReader(`{}`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "text is required", body["error"])
}

func TestHandleExtractEntities(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodPost, "/api/v1/entities",
		strings.NewReader(`{"text": "buy GME now, TSLA is bullish"}`))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	entities := body["entities"].(map[string]interface{})
	tickers := entities["tickers"].([]interface{})
	assert.Contains(t, tickers, "GME")
	assert.Contains(t, tickers, "TSLA")

	phrases := entities["key_phrases"].([]interface{})
	assert.Contains(t, phrases, "buy GME")
	assert.Contains(t, phrases, "TSLA bullish")
	assert.Contains(t, entities["terms"].([]interface{}), "bullish")
}

func TestHandleFeed_Defaults(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/feed", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "wallstreetbets", body["subreddit"])
	assert.Equal(t, "day", body["time_period"])
	assert.Equal(t, "hot", body["sort_by"])

	posts := body["posts"].([]interface{})
	require.Len(t, posts, defaultFeedLimit)
	first := posts[0].(map[string]interface{})
	assert.NotEmpty(t, first["title"])
	assert.Contains(t, first, "sentiment")
	assert.True(t, strings.HasPrefix(first["color"].(string), "#"))

	summary := body["summary"].(map[string]interface{})
	assert.EqualValues(t, defaultFeedLimit, summary["total"])
	buckets := summary["positive"].(float64) + summary["neutral"].(float64) + summary["negative"].(float64)
	assert.EqualValues(t, defaultFeedLimit, buckets)

	assert.Len(t, body["popular_subreddits"].([]interface{}), len(popularSubreddits))
}

func TestHandleFeed_CapsLimit(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/feed?limit=500", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["posts"].([]interface{}), maxListLimit)
}

func TestHandleRefreshFeed_WithoutRepository(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodPost, "/api/v1/feed/refresh?limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "Feed refreshed successfully", body["message"])
	assert.EqualValues(t, 5, body["posts"])
	assert.EqualValues(t, 5*commentFetchLimit, body["comments"])
	// Nothing persists without a database
	assert.EqualValues(t, 0, body["stored_posts"])
	assert.EqualValues(t, 0, body["stored_comments"])
	assert.EqualValues(t, 0, body["stored_rollups"])
}

func TestHandleFeedArchive_WithoutRepository(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/feed/archive", nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "no database configured", body["error"])
}

func TestHandleGetPostArchive_WithoutRepository(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/posts/abc123/archive", nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "no database configured", body["error"])
}

func TestHandleGetPost(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/posts/abc123", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	post := body["post"].(map[string]interface{})
	assert.Equal(t, "abc123", post["id"])
	assert.Contains(t, post, "sentiment")

	comments := body["comments"].([]interface{})
	require.Len(t, comments, topCommentCount)
	assert.EqualValues(t, commentDetailLimit, body["comment_count"])

	// Best scored first
	prev := comments[0].(map[string]interface{})["score"].(float64)
	for _, raw := range comments[1:] {
		score := raw.(map[string]interface{})["score"].(float64)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}

	stats := body["comment_stats"].(map[string]interface{})
	assert.EqualValues(t, commentDetailLimit, stats["total"])

	assert.Contains(t, body, "comments_sentiment_score")
	assert.Contains(t, body, "entities")
	assert.Contains(t, body, "word_frequencies")
}

func TestHandleSearch_RequiresQuery(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/search", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "q is required", body["error"])
}

func TestHandleSearch(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/search?q=GME&limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "GME", body["query"])
	posts := body["posts"].([]interface{})
	assert.Len(t, posts, 10)
	assert.EqualValues(t, 10, body["count"])

	first := posts[0].(map[string]interface{})
	assert.Contains(t, first["title"], "GME")
}

func TestHandleTrends_Defaults(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/trends", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "market", body["entity"])
	assert.Equal(t, "7days", body["time_range"])

	series := body["series"].(map[string]interface{})
	dates := series["dates"].([]interface{})
	assert.Len(t, dates, 8) // seven days ago through today
	assert.Len(t, series["positive"].([]interface{}), len(dates))
	assert.Len(t, series["volume"].([]interface{}), len(dates))

	summary := body["summary"].(map[string]interface{})
	assert.Greater(t, summary["avg_positive"].(float64), 0.0)
	assert.Greater(t, summary["total_volume"].(float64), 0.0)

	assert.True(t, strings.HasPrefix(body["color"].(string), "#"))
	assert.Len(t, body["popular_entities"].([]interface{}), len(popularEntities))

	// No repository wired, so nothing is trending yet
	trending, ok := body["trending_entities"].([]interface{})
	assert.True(t, ok)
	assert.Empty(t, trending)
}

func TestHandleTrends_UnknownRangeFallsBack(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/trends?entity=TSLA&time_range=666days", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "TSLA", body["entity"])
	assert.Equal(t, "7days", body["time_range"])
}

func TestHandleListStocks(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/stocks", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.EqualValues(t, len(popularStocks), body["count"])
	list := body["stocks"].([]interface{})
	require.Len(t, list, len(popularStocks))

	first := list[0].(map[string]interface{})
	assert.Equal(t, "AAPL", first["symbol"])
	assert.Greater(t, first["price"].(float64), 0.0)
	// No repository wired, so the pulse is empty
	assert.EqualValues(t, 0, first["sentiment_avg"])
	assert.EqualValues(t, 0, first["mentions"])
}

func TestHandleGetStock(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/stocks/aapl?time_range=7days", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "AAPL", body["symbol"])
	assert.Equal(t, "7days", body["time_range"])

	overview := body["overview"].(map[string]interface{})
	assert.Equal(t, "Apple Inc.", overview["name"])

	prices := body["prices"].([]interface{})
	assert.Len(t, prices, 7)

	chart := body["chart"].(map[string]interface{})
	dates := chart["dates"].([]interface{})
	require.Len(t, dates, 7)
	// Chart arrays run oldest to newest
	assert.Less(t, dates[0].(string), dates[6].(string))
	require.Len(t, chart["sentiment"].([]interface{}), 7)

	related := body["related_posts"].([]interface{})
	assert.Len(t, related, topCommentCount)
}

func TestHandleGetStock_UnknownRangeFallsBack(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/stocks/TSLA?time_range=yesterday", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "30days", body["time_range"])
	assert.Len(t, body["prices"].([]interface{}), 30)
}

func TestHandleBrief_NoProvider(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/v1/brief", nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "no LLM provider configured", body["error"])
}

func TestHandleBrief(t *testing.T) {
	provider := &stubProvider{
		brief: &llm.Brief{
			Headline:  "Retail stays greedy",
			Summary:   "Most of the feed leans positive.",
			Mood:      "bullish",
			Watchlist: []string{"GME"},
		},
	}
	s := newTestServer(t, provider)

	w := doRequest(t, s, http.MethodGet, "/api/v1/brief", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "stub", body["provider"])
	brief := body["brief"].(map[string]interface{})
	assert.Equal(t, "Retail stays greedy", brief["headline"])
	assert.Equal(t, "bullish", brief["mood"])

	basedOn := body["based_on"].(map[string]interface{})
	assert.Equal(t, "wallstreetbets", basedOn["subreddit"])
	assert.EqualValues(t, defaultFeedLimit, basedOn["posts"])

	// The provider saw the analyzer's aggregates, never raw text
	assert.Equal(t, "wallstreetbets", provider.req.Subreddit)
	total := provider.req.PositiveCount + provider.req.NeutralCount + provider.req.NegativeCount
	assert.Equal(t, defaultFeedLimit, total)
	assert.LessOrEqual(t, len(provider.req.TopEntities), topCommentCount)
	assert.Len(t, provider.req.Headlines, topCommentCount)
}

func TestHandleBrief_ProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("model offline")}
	s := newTestServer(t, provider)

	w := doRequest(t, s, http.MethodGet, "/api/v1/brief", nil)

	require.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "failed to generate brief", body["error"])
}
