// Package api provides the REST API server.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/user/sentimentstream/internal/llm"
	"github.com/user/sentimentstream/internal/reddit"
	"github.com/user/sentimentstream/internal/sentiment"
	"github.com/user/sentimentstream/internal/stocks"
	"github.com/user/sentimentstream/internal/storage"
	"github.com/user/sentimentstream/pkg/config"
	"github.com/user/sentimentstream/pkg/logger"
)

// Server represents the API server. The repository and LLM provider are
// optional; without them the server runs with persistence and the
// market brief disabled.
type Server struct {
	router   *gin.Engine
	analyzer *sentiment.Analyzer
	reddit   *reddit.Fetcher
	stocks   *stocks.Fetcher
	repo     *storage.Repository
	provider llm.Provider
	config   *config.Config
}

// NewServer creates a new API server.
func NewServer(analyzer *sentiment.Analyzer, redditFetcher *reddit.Fetcher, stocksFetcher *stocks.Fetcher, repo *storage.Repository, provider llm.Provider, cfg *config.Config) *Server {
	s := &Server{
		analyzer: analyzer,
		reddit:   redditFetcher,
		stocks:   stocksFetcher,
		repo:     repo,
		provider: provider,
		config:   cfg,
	}

	s.setupRouter()
	return s
}

// setupRouter sets up the Gin router with all routes.
func (s *Server) setupRouter() {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(loggerMiddleware())
	r.Use(corsMiddleware())

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", s.handleHealth)

		// Ad-hoc analysis
		api.POST("/sentiment", s.handleAnalyzeSentiment)
		api.POST("/entities", s.handleExtractEntities)

		// Feed
		api.GET("/feed", s.handleFeed)
		api.POST("/feed/refresh", s.handleRefreshFeed)
		api.GET("/feed/archive", s.handleFeedArchive)
		api.GET("/posts/:id", s.handleGetPost)
		api.GET("/posts/:id/archive", s.handleGetPostArchive)
		api.GET("/search", s.handleSearch)

		// Trends
		api.GET("/trends", s.handleTrends)

		// Stocks
		api.GET("/stocks", s.handleListStocks)
		api.GET("/stocks/:symbol", s.handleGetStock)

		// Market brief
		api.GET("/brief", s.handleBrief)
	}

	s.router = r
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// corsMiddleware adds CORS headers.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags every request with an ID, reusing the
// caller's X-Request-ID when present.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// loggerMiddleware logs one line per request.
func loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Get().Infow("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
