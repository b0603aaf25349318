// Package llm provides LLM provider interfaces and implementations.
package llm

import (
	"context"
	"fmt"

	"github.com/user/sentimentstream/pkg/config"
)

// BriefRequest carries one cycle of pre-computed aggregates for the
// model to narrate. Scoring happens upstream in the analyzer; the model
// never sees raw post text to score.
type BriefRequest struct {
	Subreddit     string   `json:"subreddit"`
	PositiveCount int      `json:"positive_count"`
	NeutralCount  int      `json:"neutral_count"`
	NegativeCount int      `json:"negative_count"`
	TopEntities   []string `json:"top_entities"`
	TopTerms      []string `json:"top_terms"`
	Headlines     []string `json:"headlines"`
}

// Brief is the model's narrated market brief.
type Brief struct {
	Headline  string   `json:"headline"`
	Summary   string   `json:"summary"`
	Mood      string   `json:"mood"` // bullish, bearish, mixed
	Watchlist []string `json:"watchlist"`
}

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize turns aggregate sentiment data into a market brief.
	Summarize(ctx context.Context, req BriefRequest) (*Brief, error)

	// IsAvailable checks if the provider is available.
	IsAvailable(ctx context.Context) bool
}

// briefSystemPrompt pins the model to valid JSON instead of narration.
const briefSystemPrompt = "You are a financial community analyst. Always respond with valid JSON only."

// NewProvider creates a new LLM provider based on configuration. An
// empty or "none" provider disables the brief and returns nil.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "ollama":
		return NewOllamaProvider(cfg.Ollama.URL, cfg.Ollama.Model), nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model), nil
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.Model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}

// buildBriefPrompt creates the prompt for the market brief.
func buildBriefPrompt(req BriefRequest) string {
	prompt := fmt.Sprintf(`Write a short market brief from the following pre-computed aggregates of r/%s discussion. The counts are authoritative; do not re-score sentiment.

Sentiment counts: %d positive, %d neutral, %d negative.
`, req.Subreddit, req.PositiveCount, req.NeutralCount, req.NegativeCount)

	if len(req.TopEntities) > 0 {
		prompt += "\nMost mentioned entities:\n"
		for _, entity := range req.TopEntities {
			prompt += fmt.Sprintf("- %s\n", entity)
		}
	}

	if len(req.TopTerms) > 0 {
		prompt += "\nDominant financial terms:\n"
		for _, term := range req.TopTerms {
			prompt += fmt.Sprintf("- %s\n", term)
		}
	}

	if len(req.Headlines) > 0 {
		prompt += "\nSample headlines:\n"
		for _, headline := range req.Headlines {
			prompt += fmt.Sprintf("- %s\n", headline)
		}
	}

	prompt += `
Provide the brief in the following JSON format:
{
  "headline": "<one line>",
  "summary": "<two to four sentences>",
  "mood": "bullish" or "bearish" or "mixed",
  "watchlist": ["ticker1", "ticker2", ...]
}

Respond ONLY with the JSON, no additional text.`

	return prompt
}
