package reddit

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var usernamePattern = regexp.MustCompile(`^user\d{3,4}$`)

func TestSimulatorPosts_Shape(t *testing.T) {
	sim := newSimulator(42)

	posts := sim.posts("wallstreetbets", 25)
	require.Len(t, posts, 25)

	weekAgo := time.Now().AddDate(0, 0, -8)
	for i, p := range posts {
		assert.Equal(t, "wallstreetbets", p.Subreddit)
		assert.NotEmpty(t, p.Title)
		assert.NotContains(t, p.Title, "%!")
		assert.Regexp(t, usernamePattern, p.Author)
		assert.GreaterOrEqual(t, p.Score, 5)
		assert.LessOrEqual(t, p.Score, 5000)
		assert.GreaterOrEqual(t, p.UpvoteRatio, 0.5)
		assert.LessOrEqual(t, p.UpvoteRatio, 1.0)
		assert.GreaterOrEqual(t, p.NumComments, 0)
		assert.LessOrEqual(t, p.NumComments, 500)
		assert.True(t, p.CreatedUTC.After(weekAgo), "post %d too old: %v", i, p.CreatedUTC)
		assert.False(t, p.CreatedUTC.After(time.Now()), "post %d in the future", i)
		assert.Contains(t, p.URL, "/r/wallstreetbets/comments/")
		assert.True(t, strings.HasPrefix(p.Permalink, "/r/wallstreetbets/comments/"))
	}
}

func TestSimulatorPosts_DeterministicForSeed(t *testing.T) {
	first := newSimulator(7).posts("stocks", 10)
	second := newSimulator(7).posts("stocks", 10)

	require.Len(t, second, len(first))
	for i := range first {
		// Timestamps derive from the wall clock; everything fed by the
		// seed must match.
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].Selftext, second[i].Selftext)
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].NumComments, second[i].NumComments)
		assert.Equal(t, first[i].Author, second[i].Author)
	}
}

func TestSimulatorPosts_ZeroLimit(t *testing.T) {
	assert.Empty(t, newSimulator(1).posts("stocks", 0))
}

func TestSimulatorPost_Shape(t *testing.T) {
	sim := newSimulator(42)

	post := sim.post("abc123")
	require.NotNil(t, post)

	assert.Equal(t, "abc123", post.ID)
	assert.Equal(t, "wallstreetbets", post.Subreddit)
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.Selftext)
	assert.NotContains(t, post.Selftext, "%!")
	assert.NotContains(t, post.Selftext, "%[1]s")
	assert.GreaterOrEqual(t, post.Score, 100)
	assert.LessOrEqual(t, post.Score, 5000)
	assert.GreaterOrEqual(t, post.UpvoteRatio, 0.7)
	assert.LessOrEqual(t, post.UpvoteRatio, 0.98)
	assert.GreaterOrEqual(t, post.NumComments, 50)
	assert.LessOrEqual(t, post.NumComments, 500)
	assert.Equal(t, "https://reddit.com/r/wallstreetbets/comments/abc123/", post.URL)
	assert.Equal(t, "/r/wallstreetbets/comments/abc123/", post.Permalink)
	assert.True(t, post.CreatedUTC.Before(time.Now()))
}

func TestSimulatorComments_SortedByScore(t *testing.T) {
	sim := newSimulator(42)

	comments := sim.comments("abc123", 50)
	require.Len(t, comments, 50)

	for i, c := range comments {
		assert.NotEmpty(t, c.Body)
		assert.NotContains(t, c.Body, "%!")
		assert.Regexp(t, usernamePattern, c.Author)
		assert.GreaterOrEqual(t, c.Score, -5)
		assert.LessOrEqual(t, c.Score, 200)
		assert.Contains(t, c.Permalink, "/comments/abc123/comment/")
		if i > 0 {
			assert.GreaterOrEqual(t, comments[i-1].Score, c.Score, "comments not sorted at %d", i)
		}
	}
}

func TestSimulatorComments_LeanBullish(t *testing.T) {
	sim := newSimulator(42)

	comments := sim.comments("abc123", 400)

	var bullish int
	for _, c := range comments {
		if strings.Contains(c.Body, "bullish") || strings.Contains(c.Body, "moon") ||
			strings.Contains(c.Body, "calls") || strings.Contains(c.Body, "holding") ||
			strings.Contains(c.Body, "bought") || strings.Contains(c.Body, "watchlist") ||
			strings.Contains(c.Body, "Great analysis") || strings.Contains(c.Body, "fundamentals") ||
			strings.Contains(c.Body, "industry and") || strings.Contains(c.Body, "institutional") {
			bullish++
		}
	}

	// Half the draws are bullish in expectation; 400 samples keep the
	// threshold far from the noise.
	assert.Greater(t, bullish, 120)
}

func TestLooksLikeTicker(t *testing.T) {
	assert.True(t, looksLikeTicker("GME"))
	assert.True(t, looksLikeTicker("AAPL"))
	assert.True(t, looksLikeTicker("A"))
	assert.False(t, looksLikeTicker(""))
	assert.False(t, looksLikeTicker("gme"))
	assert.False(t, looksLikeTicker("TOOLONG"))
	assert.False(t, looksLikeTicker("A1"))
	assert.False(t, looksLikeTicker("inflation"))
}

func TestSimulatorSearch_TickerQuery(t *testing.T) {
	sim := newSimulator(42)

	results := sim.searchResults("GME", 20)
	require.Len(t, results, 20)

	financial := make(map[string]bool)
	for _, sub := range FinancialSubreddits {
		financial[sub] = true
	}

	monthAgo := time.Now().AddDate(0, 0, -31)
	for i, p := range results {
		assert.Contains(t, p.Title, "GME")
		assert.Contains(t, p.Selftext, "GME")
		assert.True(t, financial[p.Subreddit], "unexpected subreddit %q", p.Subreddit)
		assert.Equal(t, "search"+strconv.Itoa(i), p.ID)
		assert.GreaterOrEqual(t, p.Score, 5)
		assert.LessOrEqual(t, p.Score, 3000)
		assert.LessOrEqual(t, p.NumComments, 300)
		assert.True(t, p.CreatedUTC.After(monthAgo))
	}
}

func TestSimulatorSearch_TopicQuery(t *testing.T) {
	sim := newSimulator(42)

	results := sim.searchResults("inflation", 10)
	require.Len(t, results, 10)

	for _, p := range results {
		assert.Contains(t, p.Title, "inflation")
	}
}
