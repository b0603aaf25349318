// Package main is the entry point for the sentimentstream service.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/user/sentimentstream/internal/api"
	"github.com/user/sentimentstream/internal/llm"
	"github.com/user/sentimentstream/internal/reddit"
	"github.com/user/sentimentstream/internal/sentiment"
	"github.com/user/sentimentstream/internal/stocks"
	"github.com/user/sentimentstream/internal/storage"
	"github.com/user/sentimentstream/pkg/config"
	"github.com/user/sentimentstream/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Infof("starting sentimentstream (env: %s)", cfg.App.Env)

	// The database is optional: without it the API still serves
	// analyzed feeds, it just cannot persist them.
	repo, err := storage.NewRepository(cfg.Database.DSN())
	if err != nil {
		logger.Warnf("database unavailable, persistence disabled: %v", err)
		repo = nil
	} else {
		defer repo.Close()
		logger.Info("database connected")
	}

	provider, err := llm.NewProvider(&cfg.LLM)
	switch {
	case err != nil:
		logger.Warnf("LLM provider unavailable, market brief disabled: %v", err)
		provider = nil
	case provider == nil:
		logger.Info("no LLM provider configured, market brief disabled")
	default:
		logger.Infof("LLM provider initialized (%s)", provider.Name())
	}

	analyzer := sentiment.NewAnalyzer()

	redditFetcher := reddit.NewFetcher(reddit.Config{
		BaseURL:         cfg.Reddit.BaseURL,
		UserAgent:       cfg.Reddit.UserAgent,
		UseFeeds:        cfg.Reddit.UseFeeds,
		RequestInterval: cfg.Reddit.RequestInterval,
		Seed:            cfg.Reddit.Seed,
	})

	stocksFetcher := stocks.NewFetcher(stocks.Config{
		ChartBaseURL: cfg.Stocks.ChartBaseURL,
		QuoteBaseURL: cfg.Stocks.QuoteBaseURL,
		UseLive:      cfg.Stocks.UseLive,
		RequestDelay: cfg.Stocks.RequestDelay,
		Seed:         cfg.Stocks.Seed,
	})

	server := api.NewServer(analyzer, redditFetcher, stocksFetcher, repo, provider, cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down")
		_ = logger.Sync()
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("server listening on %s", addr)

	if err := server.Run(addr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
